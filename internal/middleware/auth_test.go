package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"

	"github.com/BruksfildServices01/controle-exames/internal/session"
)

const (
	testCookie = "test-session"
	testSecret = "secret-key-for-test"
)

func newRouter() (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	store := session.NewCookieStore(session.Options{Secret: testSecret, MaxAge: time.Hour})
	m := session.NewManager(store, testCookie)

	reached := false
	r := gin.New()
	r.GET("/", AuthRequired(m), func(c *gin.Context) {
		reached = true
		c.String(http.StatusOK, UserName(c)+":"+UserID(c).String())
	})
	return r, &reached
}

func forgedCookie(t *testing.T, values map[interface{}]interface{}) *http.Cookie {
	t.Helper()
	v, err := securecookie.EncodeMulti(testCookie, values, securecookie.CodecsFromPairs([]byte(testSecret))...)
	if err != nil {
		t.Fatalf("encode cookie: %v", err)
	}
	return &http.Cookie{Name: testCookie, Value: v}
}

func TestAuthRequiredRedirectsAnonymous(t *testing.T) {
	r, reached := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusFound || w.Header().Get("Location") != LoginPath {
		t.Fatalf("expected redirect to %s, got %d %q", LoginPath, w.Code, w.Header().Get("Location"))
	}
	if *reached {
		t.Fatal("handler must not run for anonymous requests")
	}
}

func TestAuthRequiredRejectsMalformedUserID(t *testing.T) {
	r, reached := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(forgedCookie(t, map[interface{}]interface{}{session.KeyUserID: "42"}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound || *reached {
		t.Fatalf("expected redirect, got %d reached=%v", w.Code, *reached)
	}
}

func TestAuthRequiredPassesIdentity(t *testing.T) {
	r, reached := newRouter()
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(forgedCookie(t, map[interface{}]interface{}{
		session.KeyUserID:   id.String(),
		session.KeyUserName: "Ana",
	}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || !*reached {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "Ana:"+id.String() {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}
