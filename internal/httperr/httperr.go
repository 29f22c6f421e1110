package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/controle-exames/internal/middleware"
)

const (
	MsgMissingFields = "Campos obrigatórios ausentes: nome, cpf e exame."
	MsgExamNotFound  = "Exame não encontrado"
	MsgInternal      = "Erro interno do servidor."
)

// Write sends a plain-text error body and stops the handler chain.
func Write(c *gin.Context, status int, message string) {
	c.Abort()
	c.String(status, message)
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

// Internal logs err with the request route and answers 500.
func Internal(c *gin.Context, logger *slog.Logger, err error) {
	logger.Error("request failed",
		"method", c.Request.Method,
		"route", c.FullPath(),
		"user_id", c.GetString(middleware.ContextUserID),
		"error", err,
	)
	_ = c.Error(err)
	Write(c, http.StatusInternalServerError, MsgInternal)
}
