package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"haus/internal/domain"
	"haus/internal/mocks"
	"haus/internal/session"
	"haus/internal/store"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestManager_EstablishPersistsAndDestroyClears(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemorySessionStore()
	m := session.NewManager(st, quietLogger())

	assert.False(t, m.Current().Authenticated)

	sess, err := m.Establish(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.Session{Username: "alice", Authenticated: true}, sess)

	got, ok, err := st.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.Username("alice"), got)

	name, ok := m.Username()
	assert.True(t, ok)
	assert.Equal(t, domain.Username("alice"), name)

	require.NoError(t, m.Destroy(ctx))
	assert.Equal(t, domain.Session{}, m.Current())
	_, ok, err = st.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_RestoreTrustsStoredUsername(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemorySessionStore()
	require.NoError(t, st.Set(ctx, "bob"))

	m := session.NewManager(st, quietLogger())
	sess, err := m.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Session{Username: "bob", Authenticated: true}, sess)
}

func TestManager_RestoreEmptySlot(t *testing.T) {
	m := session.NewManager(store.NewMemorySessionStore(), quietLogger())
	sess, err := m.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, sess.Authenticated)
}

func TestManager_EstablishRejectsBlankUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockSessionStore(ctrl)
	m := session.NewManager(st, quietLogger())

	_, err := m.Establish(context.Background(), "   ")
	require.ErrorIs(t, err, session.ErrEmptyUsername)
}

func TestManager_StoreFailureLeavesSessionUnchanged(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockSessionStore(ctrl)
	m := session.NewManager(st, quietLogger())

	boom := errors.New("disk full")
	st.EXPECT().Set(gomock.Any(), domain.Username("alice")).Return(boom)

	_, err := m.Establish(ctx, "alice")
	require.ErrorIs(t, err, boom)
	assert.False(t, m.Current().Authenticated)

	st.EXPECT().Set(gomock.Any(), domain.Username("alice")).Return(nil)
	_, err = m.Establish(ctx, "alice")
	require.NoError(t, err)

	st.EXPECT().Clear(gomock.Any()).Return(boom)
	require.ErrorIs(t, m.Destroy(ctx), boom)
	assert.True(t, m.Current().Authenticated)
}

func TestManager_RestoreStoreErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockSessionStore(ctrl)
	boom := errors.New("permission denied")
	st.EXPECT().Get(gomock.Any()).Return(domain.Username(""), false, boom)

	m := session.NewManager(st, quietLogger())
	_, err := m.Restore(context.Background())
	require.ErrorIs(t, err, boom)
	assert.False(t, m.Current().Authenticated)
}

func TestManager_RestoreUnreadableSlotLogsOut(t *testing.T) {
	ctx := context.Background()
	st := store.NewSessionFileStore(t.TempDir())
	require.NoError(t, os.WriteFile(st.Path(), []byte("{not json"), 0o600))

	m := session.NewManager(st, quietLogger())
	sess, err := m.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, sess.Authenticated)

	// The next login replaces the broken slot.
	_, err = m.Establish(ctx, "alice")
	require.NoError(t, err)
	got, ok, err := st.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.Username("alice"), got)
}

func TestManager_RestoreWrongPassphraseLogsOut(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()
	require.NoError(t, store.NewSealedSessionFileStore(home, "old").Set(ctx, "alice"))

	m := session.NewManager(store.NewSealedSessionFileStore(home, "new"), quietLogger())
	sess, err := m.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, sess.Authenticated)
	require.NoError(t, m.Destroy(ctx))
}
