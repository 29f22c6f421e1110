package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/controle-exames/internal/session"
)

const (
	ContextUserID   = "usuarioID"
	ContextUserName = "usuarioNome"
)

const LoginPath = "/login"

// AuthRequired redirects to the login page unless the session carries a
// user id. Nothing downstream runs for anonymous requests.
func AuthRequired(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessions.Load(c.Request)
		if !ok {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		if _, err := uuid.Parse(id.UserID); err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set(ContextUserID, id.UserID)
		c.Set(ContextUserName, id.Name)

		c.Next()
	}
}

// UserID returns the authenticated user. It panics outside AuthRequired.
func UserID(c *gin.Context) uuid.UUID {
	return uuid.MustParse(c.MustGet(ContextUserID).(string))
}

func UserName(c *gin.Context) string {
	return c.GetString(ContextUserName)
}
