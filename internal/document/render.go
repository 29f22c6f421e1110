package document

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Render produces the PDF bytes for p.
func Render(p Page) ([]byte, error) {
	return render(p, true)
}

func render(p Page, compress bool) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetTitle(p.Title, true)
	pdf.SetCreator("controle-exames", true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", TitleSize)
	pdf.Text(MarginX, TitleY, tr(p.Title))

	pdf.SetFont("Helvetica", "", FieldSize)
	for _, f := range p.Fields {
		pdf.Text(MarginX, f.Y, tr(f.Text()))
	}

	pdf.SetFont("Helvetica", "I", FooterSize)
	pdf.Text(MarginX, FooterY, tr(p.Footer))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("document: render: %w", err)
	}
	return buf.Bytes(), nil
}
