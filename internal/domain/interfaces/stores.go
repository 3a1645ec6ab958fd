package interfaces

import (
	"context"

	domaintypes "haus/internal/domain/types"
)

// SessionStore is the durable single slot holding the logged-in username.
// Get reports ok=false when the slot is empty.
type SessionStore interface {
	Set(ctx context.Context, username domaintypes.Username) error
	Get(ctx context.Context) (username domaintypes.Username, ok bool, err error)
	Clear(ctx context.Context) error
}
