package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Default schedule values for newly created chores.
const (
	DefaultFrequencyDays   = 3
	DefaultDurationMinutes = 15
)

// Chore is a household task as served to one user.
type Chore struct {
	ID          ChoreID `json:"Chore ID" yaml:"id"`
	Name        string  `json:"Chore Name" yaml:"name"`
	Description string  `json:"Description" yaml:"description,omitempty"`
	Deadline    *Date   `json:"Deadline Date,omitempty" yaml:"deadline,omitempty"`
}

// UnmarshalJSON decodes a served chore; an empty deadline becomes nil.
func (c *Chore) UnmarshalJSON(b []byte) error {
	type wire Chore
	var w wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.Deadline != nil && w.Deadline.IsZero() {
		w.Deadline = nil
	}
	*c = Chore(w)
	return nil
}

// NewChore is the payload for creating a chore.
type NewChore struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	FrequencyDays   int    `json:"frequency_days"`
	DurationMinutes int    `json:"duration_minutes"`
}

// UnmarshalJSON accepts the ID as either a JSON string or number.
func (id *ChoreID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ChoreID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("chore id: %w", err)
	}
	*id = ChoreID(n.String())
	return nil
}

// Date is a calendar day without time of day.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

var dateLayouts = []string{
	dateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	time.RFC1123,
}

// ParseDate parses the date forms the backend is known to emit.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognised date %q", s)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return d.Format(dateLayout) }

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON decodes any supported date form.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("deadline date: %w", err)
	}
	if strings.TrimSpace(s) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the date as "YYYY-MM-DD".
func (d Date) MarshalYAML() (any, error) { return d.String(), nil }
