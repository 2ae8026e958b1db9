package ports

import (
	"context"
	"time"

	"github.com/controlempleados/employee-records/internal/core/domain"
)

// EmployeeInput is the DTO passed from the transport layer to EmployeeService.
type EmployeeInput struct {
	ID              int64
	FirstName       string
	MiddleName      string
	LastName        string
	GenderID        int64
	MaritalStatusID *int64
	BirthDate       time.Time
	NationalID      string
	TaxID           string
	IGSSNumber      string
	IRTRANumber     string
	PassportNumber  string
	Address         string
	Phone           string
	Email           string
	Salary          float64
}

// EmployeeService manages employee records and their lookup catalogs.
type EmployeeService interface {
	List(ctx context.Context) ([]*domain.Employee, error)
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	// Create validates referenced lookups before inserting: GenderID must
	// exist, MaritalStatusID must exist when supplied. Natural-key
	// duplicates surface as domain.ErrDuplicateEmployee.
	Create(ctx context.Context, input EmployeeInput) (*domain.Employee, error)
	// Update additionally requires the path id to match the payload id;
	// mismatch yields domain.ErrEmployeeIDMismatch.
	Update(ctx context.Context, id int64, input EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
	ListGenders(ctx context.Context) ([]*domain.Gender, error)
	ListMaritalStatuses(ctx context.Context) ([]*domain.MaritalStatus, error)
}
