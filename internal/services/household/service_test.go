package household_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"haus/internal/domain"
	"haus/internal/domain/types"
	"haus/internal/mocks"
	"haus/internal/services/chores"
	"haus/internal/services/formerror"
	"haus/internal/services/household"
	"haus/internal/services/reconcile"
	"haus/internal/session"
	"haus/internal/store"
)

type fixture struct {
	backend *mocks.MockBackend
	store   *store.MemorySessionStore
	session *session.Manager
	errors  *formerror.Channel
	chores  *chores.Service
	fire    chan time.Time
	svc     *household.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &fixture{
		backend: mocks.NewMockBackend(ctrl),
		store:   store.NewMemorySessionStore(),
		errors:  formerror.New(),
		fire:    make(chan time.Time, 1),
	}
	f.session = session.NewManager(f.store, logger)
	sched := reconcile.New(time.Second, reconcile.Options{
		Logger: logger,
		After:  func(time.Duration) <-chan time.Time { return f.fire },
	})
	f.chores = chores.New(chores.Options{
		Backend: f.backend, Session: f.session, Reconciler: sched, Logger: logger,
	})
	f.svc = household.New(household.Options{
		Backend:    f.backend,
		Session:    f.session,
		Errors:     f.errors,
		Reconciler: sched,
		Chores:     f.chores,
		Logger:     logger,
	})
	_, err := f.session.Establish(context.Background(), "alice")
	require.NoError(t, err)
	return f
}

func TestRefreshMembers(t *testing.T) {
	f := newFixture(t)
	members := []domain.HouseholdMember{{UserID: "u1", Name: "alice"}, {UserID: "u2", Name: "bob"}}
	f.backend.EXPECT().FetchMembers(gomock.Any()).Return(members, nil)

	require.NoError(t, f.svc.Refresh(context.Background()))
	assert.Equal(t, members, f.svc.Members())
}

func TestAddChore_SubmitsClosesAndReloads(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.svc.OpenAddChore()
	require.True(t, f.svc.AddChoreOpen())

	gomock.InOrder(
		f.backend.EXPECT().CreateChore(gomock.Any(), domain.NewChore{
			Name: "Dishes", Description: "", FrequencyDays: 3, DurationMinutes: 15,
		}).Return(nil),
		f.backend.EXPECT().FetchMembers(gomock.Any()).
			Return([]domain.HouseholdMember{{UserID: "u1", Name: "alice"}}, nil),
		f.backend.EXPECT().FetchChores(gomock.Any(), domain.Username("alice")).
			Return([]domain.Chore{{ID: "9", Name: "Dishes"}}, nil),
	)

	require.NoError(t, f.svc.AddChore(ctx, domain.NewChore{
		Name: "Dishes", Description: "", FrequencyDays: 3, DurationMinutes: 15,
	}))
	assert.False(t, f.svc.AddChoreOpen())

	f.fire <- time.Now()
	require.NoError(t, f.chores.Wait())
	assert.Len(t, f.svc.Members(), 1)
	assert.Equal(t, []domain.Chore{{ID: "9", Name: "Dishes"}}, f.chores.Chores())
}

func TestAddChore_ReloadsChoresWhenMembersFail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	boom := errors.New("members endpoint down")

	f.backend.EXPECT().CreateChore(gomock.Any(), gomock.Any()).Return(nil)
	f.backend.EXPECT().FetchMembers(gomock.Any()).Return(nil, boom)
	f.backend.EXPECT().FetchChores(gomock.Any(), domain.Username("alice")).
		Return([]domain.Chore{{ID: "9", Name: "Dishes"}}, nil)

	require.NoError(t, f.svc.AddChore(ctx, domain.NewChore{Name: "Dishes"}))
	f.fire <- time.Now()
	require.ErrorIs(t, f.svc.Wait(), boom)
	assert.Equal(t, []domain.Chore{{ID: "9", Name: "Dishes"}}, f.chores.Chores())
}

func TestAddChore_AppliesDefaults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := newFixture(t)
	f.backend.EXPECT().CreateChore(gomock.Any(), domain.NewChore{
		Name: "Trash", FrequencyDays: domain.DefaultFrequencyDays, DurationMinutes: domain.DefaultDurationMinutes,
	}).Return(nil)

	require.NoError(t, f.svc.AddChore(ctx, domain.NewChore{Name: "  Trash "}))
	cancel()
	require.NoError(t, f.svc.Wait())
}

func TestAddChore_Validation(t *testing.T) {
	f := newFixture(t)
	f.svc.OpenAddChore()

	err := f.svc.AddChore(context.Background(), domain.NewChore{Name: "   "})
	require.ErrorIs(t, err, domain.ErrChoreNameRequired)
	assert.True(t, f.svc.AddChoreOpen())

	err = f.svc.AddChore(context.Background(), domain.NewChore{Name: "Mop", FrequencyDays: -1})
	require.ErrorIs(t, err, domain.ErrInvalidChoreSchedule)
	assert.True(t, f.svc.AddChoreOpen())
}

func TestAddChore_FailureSchedulesNothing(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("boom")
	f.backend.EXPECT().CreateChore(gomock.Any(), gomock.Any()).Return(boom)

	require.ErrorIs(t, f.svc.AddChore(context.Background(), domain.NewChore{Name: "Mop"}), boom)
	require.NoError(t, f.svc.Wait())
}

func TestDeleteAccount_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.svc.OpenDeleteAccount()
	f.errors.Raise(domain.FieldPassword, types.MsgInvalidPassword)
	f.backend.EXPECT().DeleteAccount(gomock.Any(), domain.Username("alice"), "pw").Return(true, nil)

	deleted, err := f.svc.DeleteAccount(ctx, "pw")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, f.svc.DeleteAccountOpen())
	assert.True(t, f.errors.Current().IsZero())
	assert.False(t, f.session.Current().Authenticated)

	_, ok, err := f.store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteAccount_WrongPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.svc.OpenDeleteAccount()
	f.backend.EXPECT().DeleteAccount(gomock.Any(), domain.Username("alice"), "nope").Return(false, nil)

	deleted, err := f.svc.DeleteAccount(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.True(t, f.svc.DeleteAccountOpen())
	assert.Equal(t, domain.ErrorState{Field: domain.FieldPassword, Message: types.MsgInvalidPassword}, f.errors.Current())

	u, ok, err := f.store.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.Username("alice"), u)
}

func TestDeleteAccount_EmptyPasswordSkipsBackend(t *testing.T) {
	f := newFixture(t)
	deleted, err := f.svc.DeleteAccount(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, types.MsgPasswordRequired, f.errors.For(domain.FieldPassword))
}

func TestDeleteAccount_RequiresSession(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.session.Destroy(context.Background()))

	_, err := f.svc.DeleteAccount(context.Background(), "pw")
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestCloseDeleteAccountClearsError(t *testing.T) {
	f := newFixture(t)
	f.svc.OpenDeleteAccount()
	f.errors.Raise(domain.FieldPassword, types.MsgInvalidPassword)

	f.svc.CloseDeleteAccount()
	assert.False(t, f.svc.DeleteAccountOpen())
	assert.True(t, f.errors.Current().IsZero())
}
