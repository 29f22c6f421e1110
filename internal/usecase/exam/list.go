package exam

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/controle-exames/internal/domain/exam"
	"github.com/BruksfildServices01/controle-exames/internal/dto"
	"github.com/BruksfildServices01/controle-exames/internal/models"
	"github.com/BruksfildServices01/controle-exames/internal/timezone"
)

// ======================================================
// TODAY
// ======================================================

type ListToday struct {
	gw    domain.Gateway
	clock timezone.Clock
}

func NewListToday(gw domain.Gateway, clock timezone.Clock) *ListToday {
	return &ListToday{gw: gw, clock: clock}
}

// Today is the date Execute filters on.
func (uc *ListToday) Today() string {
	return uc.clock.Today()
}

// Execute returns the user's exams dated today and the date used.
func (uc *ListToday) Execute(
	ctx context.Context,
	userID uuid.UUID,
) ([]dto.ExamListDTO, string, error) {

	today := uc.Today()
	exams, err := uc.gw.FetchExams(ctx, domain.OwnedBy(userID).
		Where(domain.ColData, today).
		NewestFirst())
	if err != nil {
		return nil, today, err
	}
	return toListDTO(exams), today, nil
}

// ======================================================
// ARCHIVED
// ======================================================

type ListArchived struct {
	gw domain.Gateway
}

func NewListArchived(gw domain.Gateway) *ListArchived {
	return &ListArchived{gw: gw}
}

// Execute lists every exam of the user, or only those of date when given.
func (uc *ListArchived) Execute(
	ctx context.Context,
	userID uuid.UUID,
	date string,
) ([]dto.ExamListDTO, error) {

	q := domain.OwnedBy(userID)
	if date != "" {
		q = q.Where(domain.ColData, date)
	}

	exams, err := uc.gw.FetchExams(ctx, q.NewestFirst())
	if err != nil {
		return nil, err
	}
	return toListDTO(exams), nil
}

// ======================================================
// SEARCH
// ======================================================

type Search struct {
	gw domain.Gateway
}

func NewSearch(gw domain.Gateway) *Search {
	return &Search{gw: gw}
}

// Execute matches term against nome and cpf, case-insensitively. A blank
// term returns all of the user's exams, not only today's.
func (uc *Search) Execute(
	ctx context.Context,
	userID uuid.UUID,
	term string,
) ([]dto.ExamListDTO, error) {

	q := domain.OwnedBy(userID)
	if term = strings.TrimSpace(term); term != "" {
		q = q.Matching(term, domain.ColNome, domain.ColCPF)
	}

	exams, err := uc.gw.FetchExams(ctx, q.NewestFirst())
	if err != nil {
		return nil, err
	}
	return toListDTO(exams), nil
}

func toListDTO(exams []models.Exam) []dto.ExamListDTO {
	out := make([]dto.ExamListDTO, 0, len(exams))
	for _, ex := range exams {
		out = append(out, dto.ExamListDTO{
			ID:          ex.ID.String(),
			Nome:        ex.Nome,
			CPF:         ex.CPF,
			Empresa:     ex.Empresa,
			Planta:      ex.Planta,
			Exame:       ex.Exame,
			Status:      ex.Status,
			KnownStatus: domain.IsKnown(domain.Status(ex.Status)),
			Data:        ex.Data,
			CriadoEm:    ex.CriadoEm,
		})
	}
	return out
}
