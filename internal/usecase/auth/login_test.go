package auth

import (
	"context"
	"errors"
	"testing"

	domain "github.com/BruksfildServices01/controle-exames/internal/domain/exam"
	"github.com/BruksfildServices01/controle-exames/internal/httperr"
	"github.com/BruksfildServices01/controle-exames/internal/infra/gateway"
	"github.com/BruksfildServices01/controle-exames/internal/models"
)

type failingGateway struct {
	*gateway.MemoryGateway
}

func (failingGateway) FetchUsers(context.Context, domain.Query) ([]models.User, error) {
	return nil, errors.New("gateway down")
}

func TestLogin(t *testing.T) {
	gw := gateway.NewMemoryGateway()
	ana := gw.AddUser(models.User{Nome: "Ana", Email: "ana@example.com", Senha: "segredo"})
	uc := NewLogin(gw)
	ctx := context.Background()

	u, err := uc.Execute(ctx, "ana@example.com", "segredo")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.ID != ana.ID || u.Nome != "Ana" {
		t.Fatalf("unexpected user %+v", u)
	}

	for _, tc := range [][2]string{
		{"ana@example.com", "errada"},
		{"outra@example.com", "segredo"},
		{"", ""},
	} {
		if _, err := uc.Execute(ctx, tc[0], tc[1]); !httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
			t.Errorf("%v: expected invalid_credentials, got %v", tc, err)
		}
	}
}

func TestLoginPropagatesGatewayErrors(t *testing.T) {
	uc := NewLogin(failingGateway{gateway.NewMemoryGateway()})

	_, err := uc.Execute(context.Background(), "ana@example.com", "segredo")
	if err == nil || httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
}
