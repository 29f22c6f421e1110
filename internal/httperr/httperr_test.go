package httperr

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIsBusinessUnwraps(t *testing.T) {
	err := fmt.Errorf("export: %w", ErrBusiness(CodeExamNotFound))
	if !IsBusiness(err, CodeExamNotFound) {
		t.Fatal("expected wrapped business error to match")
	}
	if IsBusiness(err, CodeInvalidCredentials) {
		t.Fatal("different code must not match")
	}
	if IsBusiness(errors.New("boom"), CodeExamNotFound) {
		t.Fatal("plain error must not match")
	}
}

func TestInternalWritesGenericBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r.GET("/x", func(c *gin.Context) {
		Internal(c, logger, errors.New("gateway down"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Body.String() != MsgInternal {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}
