package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"haus/internal/backend"
	"haus/internal/domain"
	"haus/internal/services/auth"
	"haus/internal/services/chores"
	"haus/internal/services/formerror"
	"haus/internal/services/household"
	"haus/internal/services/reconcile"
	"haus/internal/session"
	"haus/internal/store"
)

// Wire bundles the store, backend client, session and controllers for the CLI.
type Wire struct {
	Store      domain.SessionStore
	Backend    *backend.HTTP
	Session    *session.Manager
	Errors     *formerror.Channel
	Reconciler *reconcile.Scheduler

	Auth      *auth.Service
	Chores    *chores.Service
	Household *household.Service

	Logger *slog.Logger

	closers []func() error
}

// Option customises NewWire.
type Option func(*wireOptions)

type wireOptions struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// WithHTTPClient replaces the client built from Config.HTTPTimeout.
func WithHTTPClient(c *http.Client) Option {
	return func(o *wireOptions) { o.httpClient = c }
}

// WithLogger sets the logger handed to every component.
func WithLogger(l *slog.Logger) Option {
	return func(o *wireOptions) { o.logger = l }
}

// NewWire constructs the dependency graph from cfg and restores any persisted
// session.
func NewWire(ctx context.Context, cfg Config, opts ...Option) (*Wire, error) {
	cfg.Sanitize()

	var o wireOptions
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	w := &Wire{Logger: logger}

	sessionStore, err := w.buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	w.Store = sessionStore

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	w.Backend = backend.NewHTTP(cfg.BackendURL, httpClient,
		backend.WithLogger(logger),
		backend.WithRetryConfig(backend.RetryConfig{
			MaxAttempts: cfg.HTTPRetryAttempts,
			Backoff:     cfg.HTTPRetryBackoff,
		}),
	)

	w.Session = session.NewManager(sessionStore, logger)
	w.Errors = formerror.New()
	w.Reconciler = reconcile.New(cfg.ReconcileDelay, reconcile.Options{Logger: logger})

	w.Auth = auth.New(auth.Options{
		Backend: w.Backend,
		Session: w.Session,
		Errors:  w.Errors,
		Logger:  logger,
	})
	w.Chores = chores.New(chores.Options{
		Backend:    w.Backend,
		Session:    w.Session,
		Reconciler: w.Reconciler,
		Logger:     logger,
	})
	w.Household = household.New(household.Options{
		Backend:    w.Backend,
		Session:    w.Session,
		Errors:     w.Errors,
		Reconciler: w.Reconciler,
		Chores:     w.Chores,
		Logger:     logger,
	})

	if _, err := w.Auth.Restore(ctx); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}

func (w *Wire) buildStore(ctx context.Context, cfg Config) (domain.SessionStore, error) {
	switch cfg.Store {
	case StoreMemory:
		return store.NewMemorySessionStore(), nil
	case StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		w.closers = append(w.closers, client.Close)
		return store.NewRedisSessionStoreWithKey(client, cfg.Redis.Key), nil
	case StoreFile, "":
		if cfg.Passphrase != "" {
			return store.NewSealedSessionFileStore(cfg.Home, cfg.Passphrase), nil
		}
		return store.NewSessionFileStore(cfg.Home), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}

// Wait blocks until every scheduled reconciliation has finished.
func (w *Wire) Wait() error {
	return w.Reconciler.Wait()
}

// Close releases connections held by the store.
func (w *Wire) Close() error {
	var errs []error
	for _, c := range w.closers {
		errs = append(errs, c())
	}
	w.closers = nil
	return errors.Join(errs...)
}
