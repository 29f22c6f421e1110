package gateway

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/controle-exames/internal/domain/exam"
	"github.com/BruksfildServices01/controle-exames/internal/models"
)

// MemoryGateway keeps usuarios and exames in process memory. It backs the
// "memory" driver and the test suites.
type MemoryGateway struct {
	mu    sync.RWMutex
	users []models.User
	exams []models.Exam
	last  time.Time
	now   func() time.Time
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{now: time.Now}
}

var _ domain.Gateway = (*MemoryGateway)(nil)

// AddUser stores u, assigning an id when it has none.
func (g *MemoryGateway) AddUser(u models.User) models.User {
	g.mu.Lock()
	defer g.mu.Unlock()

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	g.users = append(g.users, u)
	return u
}

func (g *MemoryGateway) FetchUsers(_ context.Context, q domain.Query) ([]models.User, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := []models.User{}
	for _, u := range g.users {
		ok, err := matches(q, func(col string) (string, bool) { return userColumn(u, col) })
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, u)
		}
	}
	return limit(out, q.Limit), nil
}

func (g *MemoryGateway) FetchExams(_ context.Context, q domain.Query) ([]models.Exam, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := []models.Exam{}
	for _, ex := range g.exams {
		ok, err := matches(q, func(col string) (string, bool) { return examColumn(ex, col) })
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, ex)
		}
	}

	if err := sortExams(out, q); err != nil {
		return nil, err
	}
	return limit(out, q.Limit), nil
}

func (g *MemoryGateway) FetchExam(ctx context.Context, q domain.Query) (*models.Exam, error) {
	q.Limit = 1
	exams, err := g.FetchExams(ctx, q)
	if err != nil || len(exams) == 0 {
		return nil, err
	}
	return &exams[0], nil
}

func (g *MemoryGateway) InsertExam(_ context.Context, ex *models.Exam) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if ex.ID == uuid.Nil {
		ex.ID = uuid.New()
	}
	if ex.Status == "" {
		ex.Status = string(domain.InitialStatus())
	}

	// criado_em is strictly increasing so insertion order is the sort order.
	created := g.now()
	if !created.After(g.last) {
		created = g.last.Add(time.Microsecond)
	}
	g.last = created
	ex.CriadoEm = created

	g.exams = append(g.exams, *ex)
	return nil
}

func (g *MemoryGateway) UpdateExams(_ context.Context, q domain.Query, changes map[string]any) (int64, error) {
	if len(q.Eq) == 0 {
		return 0, fmt.Errorf("gateway: update exames without filters")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	var touched int64
	for i := range g.exams {
		ex := &g.exams[i]
		ok, err := matches(q, func(col string) (string, bool) { return examColumn(*ex, col) })
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		for col, v := range changes {
			if err := setExamColumn(ex, col, fmt.Sprint(v)); err != nil {
				return 0, err
			}
		}
		touched++
	}
	return touched, nil
}

// --------------------------------------------------
// matching
// --------------------------------------------------

func matches(q domain.Query, column func(string) (string, bool)) (bool, error) {
	for _, f := range q.Eq {
		v, ok := column(f.Field)
		if !ok {
			return false, fmt.Errorf("gateway: unknown column %q", f.Field)
		}
		if v != fmt.Sprint(f.Value) {
			return false, nil
		}
	}

	if len(q.AnyOf) == 0 {
		return true, nil
	}
	for _, p := range q.AnyOf {
		v, ok := column(p.Field)
		if !ok {
			return false, fmt.Errorf("gateway: unknown column %q", p.Field)
		}
		if strings.Contains(strings.ToLower(v), strings.ToLower(p.Contains)) {
			return true, nil
		}
	}
	return false, nil
}

func sortExams(exams []models.Exam, q domain.Query) error {
	switch q.OrderBy {
	case "":
		return nil
	case domain.ColCriadoEm:
		sort.SliceStable(exams, func(i, j int) bool {
			if q.Desc {
				return exams[i].CriadoEm.After(exams[j].CriadoEm)
			}
			return exams[i].CriadoEm.Before(exams[j].CriadoEm)
		})
		return nil
	}

	for _, ex := range exams {
		if _, ok := examColumn(ex, q.OrderBy); !ok {
			return fmt.Errorf("gateway: unknown column %q", q.OrderBy)
		}
	}
	sort.SliceStable(exams, func(i, j int) bool {
		a, _ := examColumn(exams[i], q.OrderBy)
		b, _ := examColumn(exams[j], q.OrderBy)
		if q.Desc {
			return a > b
		}
		return a < b
	})
	return nil
}

func limit[T any](rows []T, n int) []T {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}

func userColumn(u models.User, col string) (string, bool) {
	switch col {
	case domain.ColID:
		return u.ID.String(), true
	case domain.ColNome:
		return u.Nome, true
	case domain.ColEmail:
		return u.Email, true
	case domain.ColSenha:
		return u.Senha, true
	}
	return "", false
}

func examColumn(ex models.Exam, col string) (string, bool) {
	switch col {
	case domain.ColID:
		return ex.ID.String(), true
	case domain.ColNome:
		return ex.Nome, true
	case domain.ColCPF:
		return ex.CPF, true
	case domain.ColEmpresa:
		return ex.Empresa, true
	case domain.ColPlanta:
		return ex.Planta, true
	case domain.ColExame:
		return ex.Exame, true
	case domain.ColStatus:
		return ex.Status, true
	case domain.ColData:
		return ex.Data, true
	case domain.ColCriadoPor:
		return ex.CriadoPor.String(), true
	case domain.ColCriadoEm:
		return ex.CriadoEm.Format(time.RFC3339Nano), true
	}
	return "", false
}

func setExamColumn(ex *models.Exam, col, v string) error {
	switch col {
	case domain.ColNome:
		ex.Nome = v
	case domain.ColCPF:
		ex.CPF = v
	case domain.ColEmpresa:
		ex.Empresa = v
	case domain.ColPlanta:
		ex.Planta = v
	case domain.ColExame:
		ex.Exame = v
	case domain.ColStatus:
		ex.Status = v
	case domain.ColData:
		ex.Data = v
	default:
		return fmt.Errorf("gateway: column %q is not updatable", col)
	}
	return nil
}
