package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/controle-exames/internal/domain/exam"
	"github.com/BruksfildServices01/controle-exames/internal/middleware"
)

// Page renders an HTML template with the fields every layout expects.
func Page(c *gin.Context, status int, template, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Titulo"] = title
	data["UsuarioNome"] = middleware.UserName(c)
	data["Statuses"] = domain.KnownStatuses()

	c.HTML(status, template, data)
}

func OK(c *gin.Context, template, title string, data gin.H) {
	Page(c, http.StatusOK, template, title, data)
}

// Redirect answers 302, the code browsers follow with a GET after a form post.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
