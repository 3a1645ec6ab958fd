package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"haus/internal/devbackend"
	"haus/internal/domain"
)

type harness struct {
	home    string
	backend string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	srv := httptest.NewServer(devbackend.New(devbackend.Options{
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		SeedDefaultChores: true,
		BcryptCost:        bcrypt.MinCost,
	}))
	t.Cleanup(srv.Close)

	t.Setenv("HAUS_SESSION_STORE", "file")
	t.Setenv("HAUS_SESSION_PASSPHRASE", "")
	t.Setenv("HAUS_RECONCILE_DELAY", "0s")
	t.Setenv("HAUS_HTTP_RETRY_ATTEMPTS", "1")
	t.Setenv("HAUS_LOG_LEVEL", "error")
	return &harness{home: t.TempDir(), backend: srv.URL}
}

func (h *harness) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errw bytes.Buffer
	root := NewRootCmd(strings.NewReader(stdin), &out, &errw)
	root.SetArgs(append([]string{"--home", h.home, "--backend", h.backend}, args...))
	err := root.ExecuteContext(context.Background())
	if err != nil {
		reportError(&errw, err)
	}
	return out.String(), errw.String(), err
}

func TestCLI_JoinChoresComplete(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run(t, "pw\n", "join", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, alice")

	out, _, err = h.run(t, "", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "alice\n", out)

	out, _, err = h.run(t, "", "chores", "-o", "json")
	require.NoError(t, err)
	var list []domain.Chore
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 8)
	assert.Equal(t, "Dishes", list[0].Name)

	out, _, err = h.run(t, "", "complete", list[0].ID.String())
	require.NoError(t, err)
	assert.NotContains(t, out, "Dishes")
	assert.Contains(t, out, "Laundry")
}

func TestCLI_CompleteUnknownID(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.run(t, "", "join", "erin", "--password", "pw")
	require.NoError(t, err)

	out, errOut, err := h.run(t, "", "complete", "999")
	require.NoError(t, err)
	assert.Contains(t, errOut, "no chore with id 999")
	assert.Contains(t, out, "Dishes")
}

func TestCLI_LoginErrors(t *testing.T) {
	h := newHarness(t)

	_, errOut, err := h.run(t, "", "login", "ghost", "--password", "pw")
	require.Error(t, err)
	assert.Contains(t, errOut, "x Invalid username")

	_, _, err = h.run(t, "", "join", "bob", "--password", "pw")
	require.NoError(t, err)
	_, _, err = h.run(t, "", "logout")
	require.NoError(t, err)

	_, errOut, err = h.run(t, "", "login", "bob", "--password", "nope")
	require.Error(t, err)
	assert.Contains(t, errOut, "x Invalid password")

	out, _, err := h.run(t, "", "whoami", "-o", "yaml")
	require.NoError(t, err)
	var sess domain.Session
	require.NoError(t, yaml.Unmarshal([]byte(out), &sess))
	assert.False(t, sess.Authenticated)

	out, _, err = h.run(t, "pw\n", "login", "bob")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as bob")
}

func TestCLI_AddChoreMembersDelete(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run(t, "", "join", "carol", "--password", "pw")
	require.NoError(t, err)

	out, _, err := h.run(t, "", "add-chore", "Windows", "-d", "Inside and out", "--frequency", "14")
	require.NoError(t, err)
	assert.Contains(t, out, "Windows")

	out, _, err = h.run(t, "", "members")
	require.NoError(t, err)
	assert.Contains(t, out, "carol")

	out, _, err = h.run(t, "", "dashboard", "-o", "json")
	require.NoError(t, err)
	var d dashboard
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, domain.Username("carol"), d.User)
	assert.Len(t, d.Chores, 9)
	assert.Len(t, d.Members, 1)

	_, errOut, err := h.run(t, "", "delete-account", "--password", "wrong")
	require.Error(t, err)
	assert.Contains(t, errOut, "x Invalid password")

	out, _, err = h.run(t, "pw\n", "delete-account")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted account carol")

	_, errOut, err = h.run(t, "", "chores")
	require.Error(t, err)
	assert.Contains(t, errOut, "not logged in")
}

func TestCLI_CorruptSessionSlotRecovers(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(h.home, "session.json"), []byte("{not json"), 0o600))

	out, _, err := h.run(t, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	require.NoError(t, os.WriteFile(filepath.Join(h.home, "session.json"), []byte("{not json"), 0o600))
	out, _, err = h.run(t, "", "join", "alice", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, alice")

	out, _, err = h.run(t, "", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "alice\n", out)
}

func TestCLI_BackendUnavailableBanner(t *testing.T) {
	h := newHarness(t)
	h.backend = "http://127.0.0.1:1"

	_, errOut, err := h.run(t, "", "login", "alice", "--password", "pw")
	require.Error(t, err)
	assert.Contains(t, errOut, "haus: backend unavailable:")

	out, _, err := h.run(t, "", "whoami")
	require.NoError(t, err)
	assert.Equal(t, "Not logged in\n", out)
}

func TestCLI_UnknownOutputFormat(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.run(t, "", "whoami", "-o", "xml")
	require.Error(t, err)
}
