package devbackend

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"haus/internal/backend"
	"haus/internal/domain"
)

// Options configures a Server.
type Options struct {
	Logger *slog.Logger     // Optional: structured logger
	Now    func() time.Time // Optional: clock, defaults to time.Now

	// SeedDefaultChores adds the standard household chores on start. They are
	// assigned as soon as the first member joins.
	SeedDefaultChores bool

	// BcryptCost overrides the password hashing cost (tests use bcrypt.MinCost).
	BcryptCost int
}

// Server is an in-memory household backend speaking the haus wire protocol.
type Server struct {
	mu       sync.Mutex
	accounts map[domain.Username]*account
	chores   []*chore
	nextID   int

	now    func() time.Time
	cost   int
	logger *slog.Logger
	router *mux.Router
}

// New builds a Server with its routes registered.
func New(opts Options) *Server {
	s := &Server{
		accounts: make(map[domain.Username]*account),
		nextID:   1,
		now:      opts.Now,
		cost:     opts.BcryptCost,
		logger:   opts.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.cost == 0 {
		s.cost = bcrypt.DefaultCost
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if opts.SeedDefaultChores {
		for _, d := range defaultChores {
			s.addChore(d.Name, d.Description, domain.DefaultFrequencyDays, domain.DefaultDurationMinutes)
		}
	}

	r := mux.NewRouter()
	r.HandleFunc(backend.PathLogin, s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc(backend.PathCreateAccount, s.handleCreateAccount).Methods(http.MethodPost)
	r.HandleFunc(backend.PathDeleteAccount, s.handleDeleteAccount).Methods(http.MethodPost)
	r.HandleFunc(backend.PathServeChores, s.handleServeChores).Methods(http.MethodPost)
	r.HandleFunc(backend.PathCompleteChore, s.handleCompleteChore).Methods(http.MethodPost)
	r.HandleFunc(backend.PathCreateChore, s.handleCreateChore).Methods(http.MethodPost)
	r.HandleFunc(backend.PathMembers, s.handleMembers).Methods(http.MethodGet)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := domain.Username(r.PostFormValue("user"))
	password := r.PostFormValue("pass")

	s.mu.Lock()
	acct, exists := s.accounts[username]
	s.mu.Unlock()

	res := domain.LoginResult{UserExists: exists}
	if exists {
		res.PassValid = bcrypt.CompareHashAndPassword(acct.Hash, []byte(password)) == nil
	}
	s.logger.Info("login", "user", username, "user_exists", res.UserExists, "pass_valid", res.PassValid)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	username := domain.Username(strings.TrimSpace(r.PostFormValue("user")))
	password := r.PostFormValue("pass")
	if username == "" || password == "" {
		writeJSON(w, http.StatusOK, domain.SuccessResult{Success: false})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		s.logger.Error("hash password", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	_, taken := s.accounts[username]
	if !taken {
		s.accounts[username] = &account{
			ID:       domain.MemberID(uuid.NewString()),
			Username: username,
			Hash:     hash,
			Joined:   s.now(),
		}
		s.assignUnassigned()
	}
	s.mu.Unlock()

	s.logger.Info("create account", "user", username, "success", !taken)
	writeJSON(w, http.StatusOK, domain.SuccessResult{Success: !taken})
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	username := domain.Username(r.PostFormValue("user"))
	password := r.PostFormValue("pass")

	s.mu.Lock()
	acct, exists := s.accounts[username]
	ok := exists && bcrypt.CompareHashAndPassword(acct.Hash, []byte(password)) == nil
	if ok {
		delete(s.accounts, username)
		s.releaseChores(username)
		s.assignUnassigned()
	}
	s.mu.Unlock()

	s.logger.Info("delete account", "user", username, "success", ok)
	writeJSON(w, http.StatusOK, domain.SuccessResult{Success: ok})
}

// servedChore is the wire shape of a chore in /chore/serve responses.
type servedChore struct {
	ID          int    `json:"Chore ID"`
	Name        string `json:"Chore Name"`
	Description string `json:"Description"`
	Deadline    string `json:"Deadline Date"`
}

func (s *Server) handleServeChores(w http.ResponseWriter, r *http.Request) {
	username := domain.Username(r.PostFormValue("user"))

	s.mu.Lock()
	chores := s.choresFor(username)
	out := make([]servedChore, 0, len(chores))
	for _, c := range chores {
		out = append(out, servedChore{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Deadline:    c.Deadline.Format("2006-01-02"),
		})
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCompleteChore(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("chore_id")))
	if err != nil {
		http.Error(w, "invalid chore_id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	for _, c := range s.chores {
		if c.ID == id && c.open() {
			now := s.now()
			c.CompletedAt = &now
			s.logger.Info("complete chore", "chore_id", id, "assignee", c.Assignee)
		}
	}
	s.mu.Unlock()

	// Unknown or already completed chores are acknowledged too.
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleCreateChore(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PostFormValue("Chore Name"))
	if name == "" {
		http.Error(w, "Chore Name is required", http.StatusBadRequest)
		return
	}
	freq, err := formInt(r, "Frequency", domain.DefaultFrequencyDays)
	if err != nil {
		http.Error(w, "invalid Frequency", http.StatusBadRequest)
		return
	}
	duration, err := formInt(r, "Expected Duration", domain.DefaultDurationMinutes)
	if err != nil {
		http.Error(w, "invalid Expected Duration", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	c := s.addChore(name, r.PostFormValue("Description"), freq, duration)
	s.assignUnassigned()
	id, assignee := c.ID, c.Assignee
	s.mu.Unlock()

	s.logger.Info("create chore", "chore_id", id, "name", name, "assignee", assignee)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "Chore ID": id})
}

// memberRow is the wire shape of a member in /users.json.
type memberRow struct {
	UserID domain.MemberID `json:"UserID"`
	Name   domain.Username `json:"name"`
}

func (s *Server) handleMembers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := make([]memberRow, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, memberRow{UserID: a.ID, Name: a.Username})
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	writeJSON(w, http.StatusOK, out)
}

// addChore appends an unassigned chore due frequencyDays from now.
// Callers must hold s.mu (or be in New).
func (s *Server) addChore(name, description string, frequencyDays, durationMinutes int) *chore {
	c := &chore{
		ID:              s.nextID,
		Name:            name,
		Description:     description,
		FrequencyDays:   frequencyDays,
		DurationMinutes: durationMinutes,
		Deadline:        s.now().AddDate(0, 0, frequencyDays),
	}
	s.nextID++
	s.chores = append(s.chores, c)
	return c
}

func formInt(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.PostFormValue(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, strconv.ErrSyntax
	}
	if n == 0 {
		return def, nil
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
