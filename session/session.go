package session

import (
	"net/http"

	"github.com/gorilla/sessions"

	"haircare-web/pkg/logging"
)

// Role is the UI-gating role derived from the credential. It is a display
// hint only; the backend re-checks authorization on every call.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
	RoleNone     Role = "none"
)

const (
	sessionName = "haircare_session"

	keyToken    = "token"
	keyLanguage = "language"

	// DefaultLanguage matches the site's primary locale.
	DefaultLanguage = "PT"
)

// Manager owns the browser-persistent session: the bearer credential and
// the selected display language. It is the single injected session service
// every consumer goes through.
type Manager struct {
	store  *sessions.CookieStore
	logger *logging.Logger
}

// NewManager creates a Manager with the given cookie-signing secret.
func NewManager(secret []byte, logger *logging.Logger) *Manager {
	if logger == nil {
		logger = logging.Default()
	}
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, logger: logger}
}

// Login stores the bearer credential.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, token string) error {
	s, _ := m.store.Get(r, sessionName)
	s.Values[keyToken] = token
	return s.Save(r, w)
}

// Logout clears the credential. The language preference survives logout.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, sessionName)
	delete(s.Values, keyToken)
	return s.Save(r, w)
}

// Token returns the stored credential, or "" when unauthenticated.
func (m *Manager) Token(r *http.Request) string {
	s, err := m.store.Get(r, sessionName)
	if err != nil {
		return ""
	}
	token, _ := s.Values[keyToken].(string)
	return token
}

// IsAuthenticated reports whether a credential is present.
func (m *Manager) IsAuthenticated(r *http.Request) bool {
	return m.Token(r) != ""
}

// Role derives the caller's role from the stored credential.
func (m *Manager) Role(r *http.Request) Role {
	return RoleFromToken(m.Token(r))
}

// Language returns the persisted display language.
func (m *Manager) Language(r *http.Request) string {
	s, err := m.store.Get(r, sessionName)
	if err != nil {
		return DefaultLanguage
	}
	lang, _ := s.Values[keyLanguage].(string)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage persists the display language.
func (m *Manager) SetLanguage(w http.ResponseWriter, r *http.Request, lang string) error {
	s, _ := m.store.Get(r, sessionName)
	s.Values[keyLanguage] = lang
	return s.Save(r, w)
}
