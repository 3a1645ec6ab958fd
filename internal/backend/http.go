package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"haus/internal/domain"
)

// DefaultTimeout bounds a single request attempt.
const DefaultTimeout = 10 * time.Second

// maxResponseSize limits how much of a response body is read.
const maxResponseSize = 4 << 20

// Endpoint paths of the household backend.
const (
	PathLogin         = "/user/login"
	PathCreateAccount = "/user/create"
	PathDeleteAccount = "/user/delete"
	PathServeChores   = "/chore/serve"
	PathCompleteChore = "/chore/complete"
	PathCreateChore   = "/chore/create"
	PathMembers       = "/users.json"
)

// HTTP talks to the household backend with form-encoded requests and JSON
// responses.
type HTTP struct {
	Base   string
	HTTP   *http.Client
	Retry  RetryConfig
	Logger *slog.Logger
}

// Option configures an HTTP client.
type Option func(*HTTP)

// WithRetryConfig sets the retry policy for idempotent requests.
func WithRetryConfig(cfg RetryConfig) Option {
	return func(c *HTTP) { c.Retry = cfg }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *HTTP) { c.Logger = logger }
}

// NewHTTP returns a client for the backend at base. A nil httpClient gets a
// client with DefaultTimeout.
func NewHTTP(base string, httpClient *http.Client, opts ...Option) *HTTP {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	c := &HTTP{
		Base:   strings.TrimRight(base, "/"),
		HTTP:   httpClient,
		Retry:  DefaultRetryConfig(),
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTP) Login(
	ctx context.Context,
	username domain.Username,
	password string,
) (domain.LoginResult, error) {
	var out domain.LoginResult
	err := c.postForm(ctx, PathLogin, credentials(username, password), &out, true)
	return out, err
}

// CreateAccount is never retried: a lost response followed by a retry would
// report the freshly created name as taken.
func (c *HTTP) CreateAccount(ctx context.Context, username domain.Username, password string) (bool, error) {
	var out domain.SuccessResult
	if err := c.postForm(ctx, PathCreateAccount, credentials(username, password), &out, false); err != nil {
		return false, err
	}
	return out.Success, nil
}

func (c *HTTP) DeleteAccount(ctx context.Context, username domain.Username, password string) (bool, error) {
	var out domain.SuccessResult
	if err := c.postForm(ctx, PathDeleteAccount, credentials(username, password), &out, false); err != nil {
		return false, err
	}
	return out.Success, nil
}

func (c *HTTP) FetchChores(ctx context.Context, username domain.Username) ([]domain.Chore, error) {
	var out []domain.Chore
	form := url.Values{"user": {username.String()}}
	if err := c.postForm(ctx, PathServeChores, form, &out, true); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Chore{}
	}
	return out, nil
}

// CompleteChore is safe to retry: completing twice leaves the chore completed.
func (c *HTTP) CompleteChore(ctx context.Context, id domain.ChoreID) error {
	return c.postForm(ctx, PathCompleteChore, url.Values{"chore_id": {id.String()}}, nil, true)
}

func (c *HTTP) CreateChore(ctx context.Context, chore domain.NewChore) error {
	form := url.Values{
		"Chore Name":        {chore.Name},
		"Description":       {chore.Description},
		"Frequency":         {strconv.Itoa(chore.FrequencyDays)},
		"Expected Duration": {strconv.Itoa(chore.DurationMinutes)},
	}
	return c.postForm(ctx, PathCreateChore, form, nil, false)
}

func (c *HTTP) FetchMembers(ctx context.Context) ([]domain.HouseholdMember, error) {
	var out []domain.HouseholdMember
	if err := c.getJSON(ctx, PathMembers, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.HouseholdMember{}
	}
	return out, nil
}

func credentials(username domain.Username, password string) url.Values {
	return url.Values{"user": {username.String()}, "pass": {password}}
}

func (c *HTTP) postForm(ctx context.Context, path string, form url.Values, out any, idempotent bool) error {
	body := form.Encode()
	return c.do(ctx, http.MethodPost, path, idempotent, out, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, strings.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, true, out, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
}

// do runs the request, retrying transient failures of idempotent requests.
func (c *HTTP) do(
	ctx context.Context,
	method, path string,
	idempotent bool,
	out any,
	build func() (*http.Request, error),
) error {
	attempts := 1
	if idempotent {
		attempts = c.Retry.attempts()
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			c.logger().Warn("retrying backend request",
				"method", method, "path", path, "attempt", attempt, "error", err)
			if waitErr := sleep(ctx, c.Retry.Backoff); waitErr != nil {
				return waitErr
			}
		}

		var req *http.Request
		if req, err = build(); err != nil {
			return err
		}
		if err = c.roundTrip(ctx, req, path, out); err == nil || !IsTransient(err) {
			return err
		}
	}
	return err
}

func (c *HTTP) roundTrip(ctx context.Context, req *http.Request, path string, out any) error {
	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &TransientError{err: fmt.Errorf("backend %s %s: %w", req.Method, path, err)}
	}
	defer resp.Body.Close()

	c.logger().Debug("backend response",
		"method", req.Method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	body := io.LimitReader(resp.Body, maxResponseSize)
	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, body)
		statusErr := &StatusError{Method: req.Method, Path: path, Code: resp.StatusCode, Status: resp.Status}
		if transientStatus(resp.StatusCode) {
			return &TransientError{err: statusErr}
		}
		return statusErr
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, body)
		return nil
	}
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("backend %s %s: decode response: %w", req.Method, path, err)
	}
	return nil
}

func (c *HTTP) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var _ domain.Backend = (*HTTP)(nil)
