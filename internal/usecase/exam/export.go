package exam

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/controle-exames/internal/document"
	domain "github.com/BruksfildServices01/controle-exames/internal/domain/exam"
	"github.com/BruksfildServices01/controle-exames/internal/httperr"
	"github.com/BruksfildServices01/controle-exames/internal/timezone"
)

// Archiver keeps a copy of generated documents.
type Archiver interface {
	Store(ctx context.Context, key string, content []byte) error
}

type ExportResult struct {
	Filename string
	Content  []byte
}

type ExportExam struct {
	gw       domain.Gateway
	archiver Archiver
	clock    timezone.Clock
	title    string
	logger   *slog.Logger
}

func NewExportExam(
	gw domain.Gateway,
	archiver Archiver,
	clock timezone.Clock,
	title string,
	logger *slog.Logger,
) *ExportExam {
	return &ExportExam{
		gw:       gw,
		archiver: archiver,
		clock:    clock,
		title:    title,
		logger:   logger,
	}
}

func (uc *ExportExam) Execute(
	ctx context.Context,
	userID uuid.UUID,
	examID string,
) (*ExportResult, error) {

	id, err := uuid.Parse(examID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeExamNotFound)
	}

	ex, err := uc.gw.FetchExam(ctx, domain.OwnedBy(userID).Where(domain.ColID, id))
	if err != nil {
		return nil, err
	}
	if ex == nil {
		return nil, httperr.ErrBusiness(httperr.CodeExamNotFound)
	}

	now := uc.clock()
	content, err := document.Render(document.Layout(*ex, uc.title, now))
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exames/%s/%s.pdf", ex.ID, now.Format("20060102T150405"))
	if err := uc.archiver.Store(ctx, key, content); err != nil {
		uc.logger.Warn("pdf archive failed", "exam_id", ex.ID, "key", key, "error", err)
	}

	return &ExportResult{
		Filename: document.Filename(*ex),
		Content:  content,
	}, nil
}
