package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"haus/internal/domain"
)

const sessionFilename = "session.json"

// sessionSlot is the persisted form of the logged-in user.
type sessionSlot struct {
	Username domain.Username `json:"username"`
	SavedUTC int64           `json:"saved_utc"`
}

// SessionFileStore persists the logged-in username to a single file on disk.
// When a passphrase is set the slot is sealed with scrypt + ChaCha20-Poly1305.
type SessionFileStore struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir}
}

// NewSealedSessionFileStore returns a SessionFileStore whose slot is encrypted
// with a key derived from passphrase.
func NewSealedSessionFileStore(dir, passphrase string) *SessionFileStore {
	return &SessionFileStore{dir: dir, passphrase: passphrase}
}

// Path returns the location of the session slot.
func (s *SessionFileStore) Path() string {
	return filepath.Join(s.dir, sessionFilename)
}

// Set writes username into the slot, replacing any previous value.
func (s *SessionFileStore) Set(_ context.Context, username domain.Username) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(sessionSlot{Username: username, SavedUTC: time.Now().Unix()})
	if err != nil {
		return err
	}
	if s.passphrase != "" {
		if raw, err = seal(s.passphrase, raw); err != nil {
			return fmt.Errorf("seal session slot: %w", err)
		}
	}
	return writeFile(s.Path(), raw, 0o600)
}

// Get returns the stored username; ok is false when the slot is empty.
func (s *SessionFileStore) Get(_ context.Context) (domain.Username, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := readFile(s.Path())
	if err != nil {
		return "", false, err
	}
	if raw == nil { // no slot yet
		return "", false, nil
	}
	if s.passphrase != "" {
		if raw, err = unseal(s.passphrase, raw); err != nil {
			return "", false, fmt.Errorf("%w: %w", domain.ErrUnreadableSession, err)
		}
	}

	var slot sessionSlot
	if err := json.Unmarshal(raw, &slot); err != nil {
		return "", false, fmt.Errorf("%w: decode: %w", domain.ErrUnreadableSession, err)
	}
	if slot.Username == "" {
		return "", false, nil
	}
	return slot.Username, true, nil
}

// Clear removes the slot.
func (s *SessionFileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return removeFile(s.Path())
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
