package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/controle-exames/internal/httperr"
	"github.com/BruksfildServices01/controle-exames/internal/httpresp"
	"github.com/BruksfildServices01/controle-exames/internal/middleware"
	"github.com/BruksfildServices01/controle-exames/internal/session"
	ucAuth "github.com/BruksfildServices01/controle-exames/internal/usecase/auth"
)

const msgInvalidCredentials = "Email ou senha inválidos"

type AuthHandler struct {
	login    *ucAuth.Login
	sessions *session.Manager
	logger   *slog.Logger
}

func NewAuthHandler(
	login *ucAuth.Login,
	sessions *session.Manager,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		login:    login,
		sessions: sessions,
		logger:   logger,
	}
}

// ======================================================
// LOGIN
// ======================================================

func (h *AuthHandler) LoginPage(c *gin.Context) {
	httpresp.OK(c, "login.html", "Login", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	senha := c.PostForm("senha")

	user, err := h.login.Execute(c.Request.Context(), email, senha)
	if httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
		httpresp.OK(c, "login.html", "Login", gin.H{"Erro": msgInvalidCredentials})
		return
	}
	if err != nil {
		httperr.Internal(c, h.logger, err)
		return
	}

	if err := h.sessions.Login(c.Writer, c.Request, session.Identity{
		UserID: user.ID.String(),
		Name:   user.Nome,
	}); err != nil {
		httperr.Internal(c, h.logger, err)
		return
	}

	h.logger.Info("user logged in", "user_id", user.ID)
	httpresp.Redirect(c, "/")
}

// ======================================================
// LOGOUT
// ======================================================

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		h.logger.Warn("logout: clear session", "error", err)
	}
	c.Redirect(http.StatusFound, middleware.LoginPath)
}
