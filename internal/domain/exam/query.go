package exam

import "github.com/google/uuid"

// Column names shared by the gateways.
const (
	ColID        = "id"
	ColNome      = "nome"
	ColCPF       = "cpf"
	ColEmpresa   = "empresa"
	ColPlanta    = "planta"
	ColExame     = "exame"
	ColStatus    = "status"
	ColData      = "data"
	ColCriadoPor = "criado_por"
	ColCriadoEm  = "criado_em"

	ColEmail = "email"
	ColSenha = "senha"
)

// Filter is an equality condition. Filters in a Query are AND-combined.
type Filter struct {
	Field string
	Value any
}

// Pattern is a case-insensitive substring match on Field.
// Patterns in a Query are OR-combined.
type Pattern struct {
	Field    string
	Contains string
}

// Query describes one read or update against a single table.
type Query struct {
	Eq      []Filter
	AnyOf   []Pattern
	OrderBy string
	Desc    bool
	Limit   int
}

func (q Query) Where(field string, value any) Query {
	q.Eq = append(append([]Filter(nil), q.Eq...), Filter{Field: field, Value: value})
	return q
}

func (q Query) Matching(term string, fields ...string) Query {
	patterns := append([]Pattern(nil), q.AnyOf...)
	for _, f := range fields {
		patterns = append(patterns, Pattern{Field: f, Contains: term})
	}
	q.AnyOf = patterns
	return q
}

func (q Query) NewestFirst() Query {
	q.OrderBy = ColCriadoEm
	q.Desc = true
	return q
}

// OwnedBy starts a query restricted to the records of one user.
func OwnedBy(userID uuid.UUID) Query {
	return Query{}.Where(ColCriadoPor, userID)
}
