package interfaces

import (
	"context"

	domaintypes "haus/internal/domain/types"
)

// Backend is how we talk to the household backend of record, all with context.
type Backend interface {
	Login(
		ctx context.Context,
		username domaintypes.Username,
		password string,
	) (domaintypes.LoginResult, error)
	CreateAccount(ctx context.Context, username domaintypes.Username, password string) (bool, error)
	DeleteAccount(ctx context.Context, username domaintypes.Username, password string) (bool, error)

	FetchChores(ctx context.Context, username domaintypes.Username) ([]domaintypes.Chore, error)
	CompleteChore(ctx context.Context, id domaintypes.ChoreID) error
	CreateChore(ctx context.Context, chore domaintypes.NewChore) error

	FetchMembers(ctx context.Context) ([]domaintypes.HouseholdMember, error)
}
