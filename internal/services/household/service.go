package household

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"haus/internal/domain"
	"haus/internal/domain/types"
	"haus/internal/services/formerror"
	"haus/internal/services/reconcile"
	"haus/internal/session"
)

// Options wires a Service.
type Options struct {
	Backend    domain.Backend
	Session    *session.Manager
	Errors     *formerror.Channel
	Reconciler *reconcile.Scheduler // Optional: defaults to a scheduler with reconcile.DefaultDelay

	// Chores is reloaded along with the members after a chore is created.
	Chores domain.Refresher // Optional

	Logger *slog.Logger // Optional: structured logger
}

// Service holds the household member list and the state of the household forms.
type Service struct {
	backend    domain.Backend
	session    *session.Manager
	errors     *formerror.Channel
	reconciler *reconcile.Scheduler
	chores     domain.Refresher
	logger     *slog.Logger

	mu             sync.Mutex
	members        []domain.HouseholdMember
	addChoreOpen   bool
	deleteAcctOpen bool
}

// New constructs a household Service with both forms closed.
func New(opts Options) *Service {
	s := &Service{
		backend:    opts.Backend,
		session:    opts.Session,
		errors:     opts.Errors,
		reconciler: opts.Reconciler,
		chores:     opts.Chores,
		logger:     opts.Logger,
	}
	if s.errors == nil {
		s.errors = formerror.New()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.reconciler == nil {
		s.reconciler = reconcile.New(reconcile.DefaultDelay, reconcile.Options{Logger: s.logger})
	}
	return s
}

// Refresh replaces the member list. Members are not scoped to the user.
func (s *Service) Refresh(ctx context.Context) error {
	members, err := s.backend.FetchMembers(ctx)
	if err != nil {
		return fmt.Errorf("fetch members: %w", err)
	}
	s.mu.Lock()
	s.members = members
	s.mu.Unlock()
	return nil
}

// Members returns a copy of the member list.
func (s *Service) Members() []domain.HouseholdMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.HouseholdMember, len(s.members))
	copy(out, s.members)
	return out
}

// OpenAddChore shows the add-chore form.
func (s *Service) OpenAddChore() { s.setAddChore(true) }

// CloseAddChore hides the add-chore form.
func (s *Service) CloseAddChore() { s.setAddChore(false) }

// AddChoreOpen reports whether the add-chore form is showing.
func (s *Service) AddChoreOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addChoreOpen
}

func (s *Service) setAddChore(open bool) {
	s.mu.Lock()
	s.addChoreOpen = open
	s.mu.Unlock()
}

// AddChore submits a new chore. Zero frequency or duration take the defaults.
// A blank name leaves the form open and sends nothing. Once the backend
// acknowledges, members and chores are reloaded after the settle delay.
func (s *Service) AddChore(ctx context.Context, c domain.NewChore) error {
	if _, ok := s.session.Username(); !ok {
		return domain.ErrNotAuthenticated
	}

	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return domain.ErrChoreNameRequired
	}
	if c.FrequencyDays < 0 || c.DurationMinutes < 0 {
		return domain.ErrInvalidChoreSchedule
	}
	if c.FrequencyDays == 0 {
		c.FrequencyDays = domain.DefaultFrequencyDays
	}
	if c.DurationMinutes == 0 {
		c.DurationMinutes = domain.DefaultDurationMinutes
	}

	s.CloseAddChore()
	if err := s.backend.CreateChore(ctx, c); err != nil {
		return fmt.Errorf("create chore %q: %w", c.Name, err)
	}

	s.logger.Info("chore created", "name", c.Name,
		"frequency_days", c.FrequencyDays, "duration_minutes", c.DurationMinutes)
	s.reconciler.Schedule(ctx, "household", s.reload)
	return nil
}

// Wait blocks until scheduled reloads have run and returns the first error.
func (s *Service) Wait() error {
	return s.reconciler.Wait()
}

// reload refetches members and chores; a failure of one does not skip the other.
func (s *Service) reload(ctx context.Context) error {
	err := s.Refresh(ctx)
	if s.chores != nil {
		err = errors.Join(err, s.chores.Refresh(ctx))
	}
	return err
}

// OpenDeleteAccount shows the delete-account form.
func (s *Service) OpenDeleteAccount() { s.setDeleteAccount(true) }

// CloseDeleteAccount hides the form and drops any error it was showing.
func (s *Service) CloseDeleteAccount() {
	s.setDeleteAccount(false)
	s.errors.Clear()
}

// DeleteAccountOpen reports whether the delete-account form is showing.
func (s *Service) DeleteAccountOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteAcctOpen
}

func (s *Service) setDeleteAccount(open bool) {
	s.mu.Lock()
	s.deleteAcctOpen = open
	s.mu.Unlock()
}

// DeleteAccount deletes the logged-in user after confirming the password. On
// success the session ends and true is returned. A rejected password raises
// an error on the password field and keeps the session.
func (s *Service) DeleteAccount(ctx context.Context, password string) (bool, error) {
	user, ok := s.session.Username()
	if !ok {
		return false, domain.ErrNotAuthenticated
	}
	if password == "" {
		s.errors.Raise(domain.FieldPassword, types.MsgPasswordRequired)
		return false, nil
	}

	deleted, err := s.backend.DeleteAccount(ctx, user, password)
	if err != nil {
		return false, fmt.Errorf("delete account: %w", err)
	}
	if !deleted {
		s.logger.Info("delete account rejected", "user", user)
		s.errors.Raise(domain.FieldPassword, types.MsgInvalidPassword)
		return false, nil
	}

	s.CloseDeleteAccount()
	if err := s.session.Destroy(ctx); err != nil {
		return true, err
	}
	s.logger.Info("account deleted", "user", user)
	return true, nil
}

var _ domain.Refresher = (*Service)(nil)
