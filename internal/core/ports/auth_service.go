package ports

import (
	"context"

	"github.com/controlempleados/employee-records/internal/core/domain"
)

// AuthService manages the account lifecycle and authentication.
type AuthService interface {
	// Register creates a new inactive account. Duplicate usernames yield
	// domain.ErrAccountExists, unknown roles domain.ErrRoleNotFound.
	Register(ctx context.Context, username, password string, roleID int64) (*domain.Account, error)
	// Authenticate returns a signed bearer token. Unknown username, wrong
	// password and inactive account are all reported as the same
	// domain.ErrInvalidCredentials so callers cannot probe account state.
	Authenticate(ctx context.Context, username, password string) (string, error)
	Activate(ctx context.Context, accountID int64) error
	Deactivate(ctx context.Context, accountID int64) error
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	ListRoles(ctx context.Context) ([]*domain.Role, error)
}
