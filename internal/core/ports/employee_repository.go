package ports

import (
	"context"

	"github.com/controlempleados/employee-records/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employee records and
// the Gender / MaritalStatus lookup catalogs. Create and Update must map the
// store's unique-index violations on national id and email to
// domain.ErrDuplicateEmployee.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error

	FindGender(ctx context.Context, id int64) (*domain.Gender, error)
	ListGenders(ctx context.Context) ([]*domain.Gender, error)
	FindMaritalStatus(ctx context.Context, id int64) (*domain.MaritalStatus, error)
	ListMaritalStatuses(ctx context.Context) ([]*domain.MaritalStatus, error)
}

// CatalogCache is a read-through cache for the read-mostly lookup catalogs.
// A miss is reported as (nil, nil); cache failures must never fail the read
// path, only fall back to the repository.
type CatalogCache interface {
	GetGenders(ctx context.Context) ([]*domain.Gender, error)
	SetGenders(ctx context.Context, genders []*domain.Gender) error
	GetMaritalStatuses(ctx context.Context) ([]*domain.MaritalStatus, error)
	SetMaritalStatuses(ctx context.Context, statuses []*domain.MaritalStatus) error
}
