package exam

import (
	"context"

	"github.com/BruksfildServices01/controle-exames/internal/models"
)

// Gateway is the persistence service behind every exam operation.
type Gateway interface {
	// -------- usuarios --------
	FetchUsers(ctx context.Context, q Query) ([]models.User, error)

	// -------- exames --------
	FetchExams(ctx context.Context, q Query) ([]models.Exam, error)

	// FetchExam returns nil, nil when no row matches.
	FetchExam(ctx context.Context, q Query) (*models.Exam, error)

	InsertExam(ctx context.Context, ex *models.Exam) error

	// UpdateExams applies changes (column → value) to every row matching q
	// and returns the number of rows touched.
	UpdateExams(ctx context.Context, q Query, changes map[string]any) (int64, error)
}
