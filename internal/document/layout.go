// Package document lays out and renders the single-page exam export.
package document

import (
	"time"

	"github.com/BruksfildServices01/controle-exames/internal/models"
)

// Page geometry in points, measured from the top-left corner of an A4 sheet.
const (
	PageWidth  = 595.28
	PageHeight = 841.89

	MarginX = 50.0

	TitleY       = 50.0
	FirstFieldY  = 100.0
	FieldSpacing = 20.0
	FooterY      = PageHeight - 40.0

	TitleSize  = 16.0
	FieldSize  = 11.0
	FooterSize = 9.0

	// Placeholder is printed for an empty empresa or planta.
	Placeholder = "-"

	FooterLayout = "02/01/2006 15:04"
)

type Field struct {
	Label string
	Value string
	Y     float64
}

func (f Field) Text() string {
	return f.Label + ": " + f.Value
}

type Page struct {
	Title  string
	Fields []Field
	Footer string
}

// Layout places the exam fields on the page. It has no side effects.
func Layout(ex models.Exam, title string, generatedAt time.Time) Page {
	values := []struct{ label, value string }{
		{"Nome", ex.Nome},
		{"CPF", ex.CPF},
		{"Empresa", orPlaceholder(ex.Empresa)},
		{"Exame", ex.Exame},
		{"Planta", orPlaceholder(ex.Planta)},
		{"Status", ex.Status},
		{"Data", ex.Data},
	}

	fields := make([]Field, 0, len(values))
	for i, v := range values {
		fields = append(fields, Field{
			Label: v.label,
			Value: v.value,
			Y:     FirstFieldY + float64(i)*FieldSpacing,
		})
	}

	return Page{
		Title:  title,
		Fields: fields,
		Footer: "Gerado em " + generatedAt.Format(FooterLayout),
	}
}

// Filename is the download name offered for the exam.
func Filename(ex models.Exam) string {
	return "exame_" + ex.Nome + ".pdf"
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
