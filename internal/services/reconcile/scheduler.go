package reconcile

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultDelay is the settle interval before a reconciling refetch.
const DefaultDelay = time.Second

// Options configures a Scheduler.
type Options struct {
	Logger *slog.Logger // Optional: structured logger

	// After overrides the delay clock (tests pass a channel they control).
	After func(time.Duration) <-chan time.Time
}

// Scheduler runs reconcile functions after a fixed delay and lets callers wait
// for all of them.
type Scheduler struct {
	delay  time.Duration
	after  func(time.Duration) <-chan time.Time
	logger *slog.Logger

	mu    sync.Mutex
	group *errgroup.Group
}

// New returns a Scheduler with the given delay. A negative delay is treated as zero.
func New(delay time.Duration, opts Options) *Scheduler {
	if delay < 0 {
		delay = 0
	}
	s := &Scheduler{
		delay:  delay,
		after:  opts.After,
		logger: opts.Logger,
		group:  new(errgroup.Group),
	}
	if s.after == nil {
		s.after = time.After
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Delay returns the configured settle interval.
func (s *Scheduler) Delay() time.Duration { return s.delay }

// Schedule runs fn after the delay. If ctx is done first, fn is skipped and
// nothing is reported. Work scheduled concurrently with Wait is drained either
// by that Wait or by the next one.
func (s *Scheduler) Schedule(ctx context.Context, name string, fn func(context.Context) error) {
	s.logger.Debug("reconcile scheduled", "name", name, "delay", s.delay)

	// The group is not swapped by Wait while Go registers with it.
	s.mu.Lock()
	defer s.mu.Unlock()
	s.group.Go(func() error {
		select {
		case <-ctx.Done():
			s.logger.Debug("reconcile discarded", "name", name, "error", ctx.Err())
			return nil
		case <-s.after(s.delay):
		}
		if err := fn(ctx); err != nil {
			s.logger.Warn("reconcile failed", "name", name, "error", err)
			return err
		}
		s.logger.Debug("reconcile done", "name", name)
		return nil
	})
}

// Wait blocks until everything scheduled so far has finished and returns the
// first error. The scheduler is ready for new work afterwards.
func (s *Scheduler) Wait() error {
	s.mu.Lock()
	g := s.group
	s.group = new(errgroup.Group)
	s.mu.Unlock()
	return g.Wait()
}
