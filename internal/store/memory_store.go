package store

import (
	"context"
	"sync"

	"haus/internal/domain"
)

// MemorySessionStore keeps the slot in process memory. It does not survive a
// restart and is meant for tests and throwaway runs.
type MemorySessionStore struct {
	mu       sync.Mutex
	username domain.Username
	set      bool
}

// NewMemorySessionStore creates an empty in-memory slot.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (m *MemorySessionStore) Set(_ context.Context, username domain.Username) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.username, m.set = username, username != ""
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context) (domain.Username, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.username, m.set, nil
}

func (m *MemorySessionStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.username, m.set = "", false
	return nil
}

var _ domain.SessionStore = (*MemorySessionStore)(nil)
