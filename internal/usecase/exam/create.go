package exam

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/controle-exames/internal/domain/exam"
	"github.com/BruksfildServices01/controle-exames/internal/httperr"
	"github.com/BruksfildServices01/controle-exames/internal/models"
	"github.com/BruksfildServices01/controle-exames/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateExamInput struct {
	UserID uuid.UUID

	Nome    string
	CPF     string
	Exame   string
	Empresa string
	Planta  string
	Data    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateExam struct {
	gw    domain.Gateway
	clock timezone.Clock
}

func NewCreateExam(gw domain.Gateway, clock timezone.Clock) *CreateExam {
	return &CreateExam{gw: gw, clock: clock}
}

func (uc *CreateExam) Execute(
	ctx context.Context,
	in CreateExamInput,
) (*models.Exam, error) {

	if strings.TrimSpace(in.Nome) == "" ||
		strings.TrimSpace(in.CPF) == "" ||
		strings.TrimSpace(in.Exame) == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingFields)
	}

	data := in.Data
	if strings.TrimSpace(data) == "" {
		data = uc.clock.Today()
	}

	ex := &models.Exam{
		Nome:      in.Nome,
		CPF:       in.CPF,
		Empresa:   in.Empresa,
		Planta:    in.Planta,
		Exame:     in.Exame,
		Status:    string(domain.InitialStatus()),
		Data:      data,
		CriadoPor: in.UserID,
	}

	if err := uc.gw.InsertExam(ctx, ex); err != nil {
		return nil, err
	}
	return ex, nil
}
