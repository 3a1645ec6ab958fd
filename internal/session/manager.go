package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"haus/internal/domain"
)

// ErrEmptyUsername is returned by Establish for a blank username.
var ErrEmptyUsername = errors.New("session: username is empty")

// Manager holds the current Session and keeps the SessionStore in step with it.
type Manager struct {
	mu      sync.RWMutex
	current domain.Session
	store   domain.SessionStore
	logger  *slog.Logger
}

// NewManager returns an unauthenticated Manager backed by store. Call Restore
// to pick up a session persisted by an earlier run.
func NewManager(store domain.SessionStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{store: store, logger: logger}
}

// Restore loads the persisted username, if any. Presence of a username is
// trusted without asking the backend. A slot that exists but cannot be read
// restores as logged out so the next Establish or Destroy overwrites it; other
// store errors are returned.
func (m *Manager) Restore(ctx context.Context) (domain.Session, error) {
	username, ok, err := m.store.Get(ctx)
	if errors.Is(err, domain.ErrUnreadableSession) {
		m.logger.Warn("ignoring unreadable session slot", "error", err)
		username, ok, err = "", false, nil
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("restore session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ok && username != "" {
		m.current = domain.Session{Username: username, Authenticated: true}
		m.logger.Debug("session restored", "user", username)
	} else {
		m.current = domain.Session{}
	}
	return m.current, nil
}

// Establish persists username and makes it the current session. The store is
// written first; if that fails the current session is left as it was.
func (m *Manager) Establish(ctx context.Context, username domain.Username) (domain.Session, error) {
	username = domain.Username(strings.TrimSpace(username.String()))
	if username == "" {
		return domain.Session{}, ErrEmptyUsername
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Set(ctx, username); err != nil {
		return m.current, fmt.Errorf("persist session: %w", err)
	}
	m.current = domain.Session{Username: username, Authenticated: true}
	m.logger.Info("session established", "user", username)
	return m.current, nil
}

// Destroy clears the persisted slot and ends the current session.
func (m *Manager) Destroy(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if m.current.Authenticated {
		m.logger.Info("session destroyed", "user", m.current.Username)
	}
	m.current = domain.Session{}
	return nil
}

// Current returns a snapshot of the session.
func (m *Manager) Current() domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Username returns the logged-in username, or false when unauthenticated.
func (m *Manager) Username() (domain.Username, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.Username, m.current.Authenticated
}
