package ports

import (
	"context"

	"github.com/controlempleados/employee-records/internal/core/domain"
)

// AuthRepository defines persistence operations for accounts and roles.
// Create must rely on the store's unique username index and return
// domain.ErrAccountExists when a racing duplicate slips past the caller's
// existence pre-check.
type AuthRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	// SetActive flips the activation flag; domain.ErrAccountNotFound when absent.
	SetActive(ctx context.Context, id int64, active bool) error
	List(ctx context.Context) ([]*domain.Account, error)
	FindRole(ctx context.Context, id int64) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]*domain.Role, error)
}
