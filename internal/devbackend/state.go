package devbackend

import (
	"sort"
	"time"

	"haus/internal/domain"
)

// account is a registered household member.
type account struct {
	ID       domain.MemberID
	Username domain.Username
	Hash     []byte
	Joined   time.Time
}

// chore is the backend record of a household task.
type chore struct {
	ID              int
	Name            string
	Description     string
	FrequencyDays   int
	DurationMinutes int
	Deadline        time.Time
	Assignee        domain.Username
	CompletedAt     *time.Time
}

func (c *chore) open() bool { return c.CompletedAt == nil }

// defaultChores seeds a fresh household.
var defaultChores = []struct {
	Name        string
	Description string
}{
	{"Dishes", "Wash and dry the dishes"},
	{"Laundry", "Wash, dry, and fold clothes"},
	{"Vacuum", "Vacuum all carpets and rugs"},
	{"Dusting", "Dust all surfaces"},
	{"Trash", "Take out the trash and recycling"},
	{"Bathroom", "Clean the toilets and showers"},
	{"Sweeping", "Sweep floors"},
	{"Mopping", "Mop floors"},
}

// workloads sums the expected minutes of open chores per member.
// Callers must hold s.mu.
func (s *Server) workloads() map[domain.Username]int {
	load := make(map[domain.Username]int, len(s.accounts))
	for name := range s.accounts {
		load[name] = 0
	}
	for _, c := range s.chores {
		if c.open() && c.Assignee != "" {
			if _, ok := load[c.Assignee]; ok {
				load[c.Assignee] += c.DurationMinutes
			}
		}
	}
	return load
}

// assignUnassigned hands every open, unassigned chore to the least loaded
// member, longest chores first. Ties go to the alphabetically first username.
// Callers must hold s.mu.
func (s *Server) assignUnassigned() {
	if len(s.accounts) == 0 {
		return
	}

	var pending []*chore
	for _, c := range s.chores {
		if c.open() && c.Assignee == "" {
			pending = append(pending, c)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DurationMinutes > pending[j].DurationMinutes
	})

	load := s.workloads()
	for _, c := range pending {
		c.Assignee = leastLoaded(load)
		load[c.Assignee] += c.DurationMinutes
	}
}

func leastLoaded(load map[domain.Username]int) domain.Username {
	var best domain.Username
	bestLoad := -1
	for name, l := range load {
		if bestLoad < 0 || l < bestLoad || (l == bestLoad && name < best) {
			best, bestLoad = name, l
		}
	}
	return best
}

// releaseChores unassigns every open chore held by username.
// Callers must hold s.mu.
func (s *Server) releaseChores(username domain.Username) {
	for _, c := range s.chores {
		if c.open() && c.Assignee == username {
			c.Assignee = ""
		}
	}
}

// choresFor returns the open chores assigned to username, soonest deadline first.
// Callers must hold s.mu.
func (s *Server) choresFor(username domain.Username) []*chore {
	var out []*chore
	for _, c := range s.chores {
		if c.open() && c.Assignee == username {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Deadline.Equal(out[j].Deadline) {
			return out[i].Deadline.Before(out[j].Deadline)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
