package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haus/internal/domain"
	"haus/internal/store"
)

func TestSessionFileStore_SetGetClear(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()

	var s domain.SessionStore = store.NewSessionFileStore(home)

	_, ok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "empty home has no session")

	require.NoError(t, s.Set(ctx, "alice"))

	got, ok, err := s.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Username("alice"), got)

	require.NoError(t, s.Clear(ctx))
	_, ok, err = s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing an empty slot is fine.
	require.NoError(t, s.Clear(ctx))
}

func TestSessionFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()

	require.NoError(t, store.NewSessionFileStore(home).Set(ctx, "bob"))

	got, ok, err := store.NewSessionFileStore(home).Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Username("bob"), got)
}

func TestSessionFileStore_SetReplaces(t *testing.T) {
	ctx := context.Background()
	s := store.NewSessionFileStore(t.TempDir())

	require.NoError(t, s.Set(ctx, "alice"))
	require.NoError(t, s.Set(ctx, "carol"))

	got, ok, err := s.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Username("carol"), got)
}

func TestSessionFileStore_FileMode(t *testing.T) {
	ctx := context.Background()
	s := store.NewSessionFileStore(filepath.Join(t.TempDir(), "nested"))
	require.NoError(t, s.Set(ctx, "alice"))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSessionFileStore_CorruptSlotFails(t *testing.T) {
	ctx := context.Background()
	s := store.NewSessionFileStore(t.TempDir())
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o600))

	_, ok, err := s.Get(ctx)
	require.ErrorIs(t, err, domain.ErrUnreadableSession)
	assert.False(t, ok)
}

func TestSealedSessionFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()

	s := store.NewSealedSessionFileStore(home, "correct horse")
	require.NoError(t, s.Set(ctx, "alice"))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "alice", "sealed slot must not leak the username")

	got, ok, err := store.NewSealedSessionFileStore(home, "correct horse").Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Username("alice"), got)
}

func TestSealedSessionFileStore_WrongPassphraseFails(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()

	require.NoError(t, store.NewSealedSessionFileStore(home, "correct").Set(ctx, "alice"))

	_, ok, err := store.NewSealedSessionFileStore(home, "wrong").Get(ctx)
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
	require.ErrorIs(t, err, domain.ErrUnreadableSession)
	assert.False(t, ok)
}

func TestSealedSessionFileStore_PlainSlotRejected(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()

	require.NoError(t, store.NewSessionFileStore(home).Set(ctx, "alice"))

	_, ok, err := store.NewSealedSessionFileStore(home, "secret").Get(ctx)
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
	assert.False(t, ok)
}

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemorySessionStore()

	_, ok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "dana"))
	got, ok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.Username("dana"), got)

	require.NoError(t, s.Clear(ctx))
	_, ok, _ = s.Get(ctx)
	assert.False(t, ok)
}
