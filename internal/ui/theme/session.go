package theme

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

// DefaultCookieName is the session cookie holding the theme preference.
const DefaultCookieName = "shellboard_theme"

const valueKey = "theme"

// SessionStore persists the preference in a gorilla/sessions session.
type SessionStore struct {
	store sessions.Store
	name  string
}

// NewSessionStore wraps store. An empty name uses DefaultCookieName.
func NewSessionStore(store sessions.Store, name string) *SessionStore {
	if name == "" {
		name = DefaultCookieName
	}
	return &SessionStore{store: store, name: name}
}

// Load returns the preference carried by the request, or Unset.
func (s *SessionStore) Load(r *http.Request) Value {
	sess, err := s.store.Get(r, s.name)
	if err != nil {
		return Unset
	}
	raw, _ := sess.Values[valueKey].(string)
	return Parse(raw)
}

// Save writes v to the response cookie. It must run before the response body
// is started.
func (s *SessionStore) Save(w http.ResponseWriter, r *http.Request, v Value) error {
	// Get returns a fresh session alongside a decode error, which is fine
	// to overwrite.
	sess, err := s.store.Get(r, s.name)
	if sess == nil {
		return fmt.Errorf("get session %s: %w", s.name, err)
	}
	sess.Values[valueKey] = v.String()
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session %s: %w", s.name, err)
	}
	return nil
}

// Context binds the store to one request.
func (s *SessionStore) Context(w http.ResponseWriter, r *http.Request) Context {
	return Context{
		Value: s.Load(r),
		Set: func(v Value) error {
			return s.Save(w, r, v)
		},
	}
}
