package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"haus/internal/domain"
	"haus/internal/domain/types"
	"haus/internal/services/formerror"
	"haus/internal/session"
)

// Form is the form currently shown to a logged-out user.
type Form int

const (
	FormLogin Form = iota
	FormCreateAccount
)

func (f Form) String() string {
	if f == FormCreateAccount {
		return "create-account"
	}
	return "login"
}

// Options wires a Service.
type Options struct {
	Backend domain.Backend
	Session *session.Manager
	Errors  *formerror.Channel
	Logger  *slog.Logger // Optional: structured logger
}

// Service authenticates users and owns the login/create-account form state.
type Service struct {
	backend domain.Backend
	session *session.Manager
	errors  *formerror.Channel
	logger  *slog.Logger

	mu   sync.Mutex
	form Form
}

// New constructs an auth Service showing the login form.
func New(opts Options) *Service {
	s := &Service{
		backend: opts.Backend,
		session: opts.Session,
		errors:  opts.Errors,
		logger:  opts.Logger,
	}
	if s.errors == nil {
		s.errors = formerror.New()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Form reports which form is showing.
func (s *Service) Form() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// ShowLogin switches to the login form and resets the form error.
func (s *Service) ShowLogin() { s.show(FormLogin) }

// ShowCreateAccount switches to the create-account form and resets the form error.
func (s *Service) ShowCreateAccount() { s.show(FormCreateAccount) }

func (s *Service) show(f Form) {
	s.mu.Lock()
	s.form = f
	s.mu.Unlock()
	s.errors.Clear()
}

// Restore picks up a session persisted by an earlier run.
func (s *Service) Restore(ctx context.Context) (domain.Session, error) {
	return s.session.Restore(ctx)
}

// SubmitLogin checks the credentials with the backend. An unknown user raises
// an error on the username field; a known user with a bad password raises one
// on the password field. Only a valid pair establishes a session.
func (s *Service) SubmitLogin(ctx context.Context, username domain.Username, password string) (domain.Session, error) {
	username = trim(username)
	switch {
	case username == "":
		s.errors.Raise(domain.FieldUsername, types.MsgUsernameRequired)
		return s.session.Current(), nil
	case password == "":
		s.errors.Raise(domain.FieldPassword, types.MsgPasswordRequired)
		return s.session.Current(), nil
	}

	res, err := s.backend.Login(ctx, username, password)
	if err != nil {
		return s.session.Current(), fmt.Errorf("login: %w", err)
	}

	if !res.UserExists {
		s.logger.Info("login rejected", "user", username, "reason", "unknown user")
		s.errors.Raise(domain.FieldUsername, types.MsgInvalidUsername)
		return s.session.Current(), nil
	}
	if !res.PassValid {
		s.logger.Info("login rejected", "user", username, "reason", "bad password")
		s.errors.Raise(domain.FieldPassword, types.MsgInvalidPassword)
		return s.session.Current(), nil
	}
	return s.establish(ctx, username)
}

// CreateAccount registers a new user and logs them in. A taken username raises
// an error on the create-username field.
func (s *Service) CreateAccount(ctx context.Context, username domain.Username, password string) (domain.Session, error) {
	username = trim(username)
	switch {
	case username == "":
		s.errors.Raise(domain.FieldCreateUsername, types.MsgUsernameRequired)
		return s.session.Current(), nil
	case password == "":
		s.errors.Raise(domain.FieldPassword, types.MsgPasswordRequired)
		return s.session.Current(), nil
	}

	ok, err := s.backend.CreateAccount(ctx, username, password)
	if err != nil {
		return s.session.Current(), fmt.Errorf("create account: %w", err)
	}
	if !ok {
		s.logger.Info("create account rejected", "user", username)
		s.errors.Raise(domain.FieldCreateUsername, types.MsgUsernameTaken)
		return s.session.Current(), nil
	}
	return s.establish(ctx, username)
}

// Logout ends the session and returns to the login form.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.session.Destroy(ctx); err != nil {
		return err
	}
	s.ShowLogin()
	return nil
}

func (s *Service) establish(ctx context.Context, username domain.Username) (domain.Session, error) {
	sess, err := s.session.Establish(ctx, username)
	if err != nil {
		return sess, err
	}
	s.errors.Clear()
	return sess, nil
}

func trim(u domain.Username) domain.Username {
	return domain.Username(strings.TrimSpace(u.String()))
}
