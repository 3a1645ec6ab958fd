package formerror

import (
	"sync"

	"haus/internal/domain"
)

// Channel is a single-slot ErrorState. Raising an error replaces whatever was
// there before.
type Channel struct {
	mu    sync.RWMutex
	state domain.ErrorState
}

// New constructs an empty Channel.
func New() *Channel { return &Channel{} }

// Raise sets the error for field.
func (c *Channel) Raise(field domain.FormField, message string) {
	c.Set(domain.ErrorState{Field: field, Message: message})
}

// Set replaces the slot with state.
func (c *Channel) Set(state domain.ErrorState) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

// Clear empties the slot.
func (c *Channel) Clear() { c.Set(domain.ErrorState{}) }

// Current returns the error in the slot; the zero value means none.
func (c *Channel) Current() domain.ErrorState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// For returns the message for field, or "" when the slot belongs to another
// control or is empty.
func (c *Channel) For(field domain.FormField) string {
	s := c.Current()
	if s.Field != field {
		return ""
	}
	return s.Message
}
