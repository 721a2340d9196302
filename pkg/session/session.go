// Package session owns the authenticated-user state and its persistence.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"todostate/pkg/notify"
	"todostate/pkg/recordapi"
	"todostate/pkg/storage"
)

const (
	// SessionKey is the storage key for the persisted session record.
	SessionKey = "user"

	// MsgLoginFailed is shown when no directory entry matches the credentials.
	MsgLoginFailed = "Login error: Username or phone number is incorrect"

	// MsgServerError is shown when the directory cannot be fetched.
	MsgServerError = "Login error: Failed to connect to server"
)

// Manager drives login, logout and session restore.
// The session record is persisted to a per-instance store so it
// survives reloads within the same client instance only.
type Manager struct {
	client  recordapi.Client
	store   storage.KV
	errs    *notify.Notifier
	log     *slog.Logger
	mu      sync.Mutex
	user    *recordapi.User
	loading bool
}

// New creates a session manager.
// store is the session-scoped (volatile) storage backend.
func New(client recordapi.Client, store storage.KV, errs *notify.Notifier) *Manager {
	return &Manager{
		client: client,
		store:  store,
		errs:   errs,
		log:    slog.Default(),
	}
}

// SetLogger replaces the manager's logger. A nil logger is ignored.
func (m *Manager) SetLogger(log *slog.Logger) {
	if log != nil {
		m.log = log
	}
}

// Login authenticates against the record service user directory.
// The username match is case-insensitive; the phone match is exact.
// Returns true on success. On failure an error message is raised via
// the notifier and the session stays logged out.
func (m *Manager) Login(ctx context.Context, username, phone string) bool {
	m.setLoading(true)
	defer m.setLoading(false)
	m.errs.Clear()

	users, err := m.client.ListUsers(ctx)
	if err != nil {
		m.log.Warn("user directory fetch failed", "error", err)
		m.errs.Set(MsgServerError)
		return false
	}

	for _, u := range users {
		if strings.EqualFold(u.Username, username) && u.Phone == phone {
			m.setUser(&u)
			m.persist(u)
			m.log.Debug("logged in", "userId", u.ID)
			return true
		}
	}

	m.errs.Set(MsgLoginFailed)
	return false
}

// Logout clears the session and removes the persisted record.
func (m *Manager) Logout() {
	m.setUser(nil)
	m.store.Delete(SessionKey)
}

// RestoreSession loads the persisted session record, if any.
// A corrupt record is discarded silently and the session stays logged out.
func (m *Manager) RestoreSession() {
	data, err := m.store.Get(SessionKey)
	if err != nil {
		return
	}

	var u recordapi.User
	if err := json.Unmarshal(data, &u); err != nil {
		m.log.Warn("discarding corrupt session record", "error", err)
		m.store.Delete(SessionKey)
		return
	}
	m.setUser(&u)
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

// User returns the logged-in user, or nil when logged out.
func (m *Manager) User() *recordapi.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Loading reports whether a login call is in flight.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Err returns the current login error message, or "" when none is set.
func (m *Manager) Err() string {
	return m.errs.Message()
}

func (m *Manager) setUser(u *recordapi.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = v
}

func (m *Manager) persist(u recordapi.User) {
	data, err := json.Marshal(u)
	if err != nil {
		return
	}
	if err := m.store.Set(SessionKey, data); err != nil {
		m.log.Warn("failed to persist session record", "error", err)
	}
}
