package interfaces

import "context"

// Refresher reloads a controller's local state from the backend.
type Refresher interface {
	Refresh(ctx context.Context) error
}
