package session

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

// Keys stored in the session.
const (
	KeyUserID   = "usuario_id"
	KeyUserName = "usuario_nome"
)

type Options struct {
	Name   string
	Secret string
	MaxAge time.Duration
	Secure bool
}

// Identity is the authenticated user carried by a session.
type Identity struct {
	UserID string
	Name   string
}

// Manager reads and writes the login session on top of any sessions.Store.
type Manager struct {
	store sessions.Store
	name  string
}

func NewManager(store sessions.Store, name string) *Manager {
	return &Manager{store: store, name: name}
}

func NewCookieStore(opts Options) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(opts.Secret))
	store.Options = cookieOptions(opts)
	// also bounds the signed timestamp checked by the codecs
	store.MaxAge(store.Options.MaxAge)
	return store
}

func cookieOptions(opts Options) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   int(opts.MaxAge / time.Second),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) Name() string {
	return m.name
}

// Load returns the identity in the request's session. A missing, expired or
// tampered cookie yields ok == false.
func (m *Manager) Load(r *http.Request) (Identity, bool) {
	sess, err := m.store.Get(r, m.name)
	if err != nil || sess == nil {
		return Identity{}, false
	}

	id, _ := sess.Values[KeyUserID].(string)
	if id == "" {
		return Identity{}, false
	}
	name, _ := sess.Values[KeyUserName].(string)
	return Identity{UserID: id, Name: name}, true
}

// Login stores the identity, replacing whatever the session held.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, id Identity) error {
	sess, _ := m.store.Get(r, m.name)

	// new server-side id on every login
	sess.ID = ""
	sess.Values = map[interface{}]interface{}{
		KeyUserID:   id.UserID,
		KeyUserName: id.Name,
	}
	return sess.Save(r, w)
}

// Clear drops every value and expires the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)

	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
