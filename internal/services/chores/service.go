package chores

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"haus/internal/domain"
	"haus/internal/services/reconcile"
	"haus/internal/session"
)

// Options wires a Service.
type Options struct {
	Backend    domain.Backend
	Session    *session.Manager
	Reconciler *reconcile.Scheduler // Optional: defaults to a scheduler with reconcile.DefaultDelay
	Logger     *slog.Logger         // Optional: structured logger
}

// Service holds the chore list of the current user.
type Service struct {
	backend    domain.Backend
	session    *session.Manager
	reconciler *reconcile.Scheduler
	logger     *slog.Logger

	mu     sync.Mutex
	chores []domain.Chore
}

// New constructs a chores Service with an empty list.
func New(opts Options) *Service {
	s := &Service{
		backend:    opts.Backend,
		session:    opts.Session,
		reconciler: opts.Reconciler,
		logger:     opts.Logger,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.reconciler == nil {
		s.reconciler = reconcile.New(reconcile.DefaultDelay, reconcile.Options{Logger: s.logger})
	}
	return s
}

// Refresh replaces the local list with the backend's chores for the current
// user. Without a session the list is cleared and ErrNotAuthenticated is
// returned. A result that arrives after the session changed is dropped.
func (s *Service) Refresh(ctx context.Context) error {
	user, ok := s.session.Username()
	if !ok {
		s.replace(nil)
		return domain.ErrNotAuthenticated
	}

	list, err := s.backend.FetchChores(ctx, user)
	if err != nil {
		return fmt.Errorf("fetch chores: %w", err)
	}

	if now, ok := s.session.Username(); !ok || now != user {
		s.logger.Debug("discarding stale chore list", "fetched_for", user)
		return nil
	}
	s.replace(list)
	s.logger.Debug("chores refreshed", "user", user, "count", len(list))
	return nil
}

// Chores returns a copy of the local list.
func (s *Service) Chores() []domain.Chore {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Chore, len(s.chores))
	copy(out, s.chores)
	return out
}

// Complete marks the chore with id as done. It is a no-op when id is not in
// the local list, so repeating it sends nothing.
func (s *Service) Complete(ctx context.Context, id domain.ChoreID) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	removed := s.chores[idx]
	s.chores = append(s.chores[:idx:idx], s.chores[idx+1:]...)
	s.mu.Unlock()

	if err := s.backend.CompleteChore(ctx, id); err != nil {
		s.restore(idx, removed)
		return fmt.Errorf("complete chore %s: %w", id, err)
	}

	s.logger.Info("chore completed", "chore_id", id, "name", removed.Name)
	s.reconciler.Schedule(ctx, "chores", s.Refresh)
	return nil
}

// Wait blocks until scheduled refetches have run and returns the first error.
func (s *Service) Wait() error {
	return s.reconciler.Wait()
}

func (s *Service) replace(list []domain.Chore) {
	s.mu.Lock()
	s.chores = list
	s.mu.Unlock()
}

// restore puts c back at idx unless a refresh already brought it back.
func (s *Service) restore(idx int, c domain.Chore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(c.ID) >= 0 {
		return
	}
	if idx > len(s.chores) {
		idx = len(s.chores)
	}
	s.chores = append(s.chores[:idx], append([]domain.Chore{c}, s.chores[idx:]...)...)
}

func (s *Service) indexOf(id domain.ChoreID) int {
	for i, c := range s.chores {
		if c.ID == id {
			return i
		}
	}
	return -1
}

var _ domain.Refresher = (*Service)(nil)
