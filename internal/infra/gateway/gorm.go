package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/controle-exames/internal/domain/exam"
	"github.com/BruksfildServices01/controle-exames/internal/models"
)

type GormGateway struct {
	db *gorm.DB
}

func NewGormGateway(db *gorm.DB) *GormGateway {
	return &GormGateway{db: db}
}

var _ domain.Gateway = (*GormGateway)(nil)

// --------------------------------------------------
// usuarios
// --------------------------------------------------

func (g *GormGateway) FetchUsers(
	ctx context.Context,
	q domain.Query,
) ([]models.User, error) {

	var users []models.User
	if err := apply(g.db.WithContext(ctx), q).Find(&users).Error; err != nil {
		return nil, wrap("fetch usuarios", err)
	}
	return users, nil
}

// --------------------------------------------------
// exames
// --------------------------------------------------

func (g *GormGateway) FetchExams(
	ctx context.Context,
	q domain.Query,
) ([]models.Exam, error) {

	var exams []models.Exam
	if err := apply(g.db.WithContext(ctx), q).Find(&exams).Error; err != nil {
		return nil, wrap("fetch exames", err)
	}
	return exams, nil
}

func (g *GormGateway) FetchExam(
	ctx context.Context,
	q domain.Query,
) (*models.Exam, error) {

	q.Limit = 1
	exams, err := g.FetchExams(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(exams) == 0 {
		return nil, nil
	}
	return &exams[0], nil
}

func (g *GormGateway) InsertExam(
	ctx context.Context,
	ex *models.Exam,
) error {

	if err := g.db.WithContext(ctx).Create(ex).Error; err != nil {
		return wrap("insert exames", err)
	}
	return nil
}

func (g *GormGateway) UpdateExams(
	ctx context.Context,
	q domain.Query,
	changes map[string]any,
) (int64, error) {

	if len(q.Eq) == 0 {
		return 0, errors.New("gateway: update exames without filters")
	}

	tx := apply(g.db.WithContext(ctx).Model(&models.Exam{}), q).Updates(changes)
	if tx.Error != nil {
		return 0, wrap("update exames", tx.Error)
	}
	return tx.RowsAffected, nil
}

// --------------------------------------------------
// query translation
// --------------------------------------------------

func apply(tx *gorm.DB, q domain.Query) *gorm.DB {
	for _, f := range q.Eq {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: f.Field}, Value: f.Value})
	}

	if len(q.AnyOf) > 0 {
		exprs := make([]clause.Expression, 0, len(q.AnyOf))
		for _, p := range q.AnyOf {
			exprs = append(exprs, clause.Expr{
				SQL:  "? ILIKE ?",
				Vars: []any{clause.Column{Name: p.Field}, "%" + escapeLike(p.Contains) + "%"},
			})
		}
		tx = tx.Where(clause.Or(exprs...))
	}

	if q.OrderBy != "" {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: q.OrderBy}, Desc: q.Desc})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	return tx
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes the term match literally inside an ILIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func wrap(op string, err error) error {
	if code := SQLState(err); code != "" {
		return fmt.Errorf("gateway: %s (sqlstate %s): %w", op, code, err)
	}
	return fmt.Errorf("gateway: %s: %w", op, err)
}

// SQLState returns the PostgreSQL error code carried by err, if any.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
