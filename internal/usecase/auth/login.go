package auth

import (
	"context"

	domain "github.com/BruksfildServices01/controle-exames/internal/domain/exam"
	"github.com/BruksfildServices01/controle-exames/internal/httperr"
	"github.com/BruksfildServices01/controle-exames/internal/models"
)

type Login struct {
	gw domain.Gateway
}

func NewLogin(gw domain.Gateway) *Login {
	return &Login{gw: gw}
}

// Execute looks the user up by exact email and senha and returns the first
// match.
func (uc *Login) Execute(
	ctx context.Context,
	email string,
	senha string,
) (*models.User, error) {

	if email == "" || senha == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	users, err := uc.gw.FetchUsers(ctx, domain.Query{}.
		Where(domain.ColEmail, email).
		Where(domain.ColSenha, senha))
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}
	return &users[0], nil
}
