package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/controlempleados/employee-records/internal/core/domain"
	"github.com/controlempleados/employee-records/internal/core/ports"
)

// EmployeeService manages employee records and the Gender / MaritalStatus
// lookup catalogs. Referential checks run before any write and the first
// failing check short-circuits the rest; natural-key uniqueness is left to
// the store's indexes.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	cache  ports.CatalogCache
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, cache ports.CatalogCache, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, cache: cache, logger: logger}
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates lookup references and inserts the record. A duplicate
// national id or email is reported by the repository as
// domain.ErrDuplicateEmployee.
func (s *EmployeeService) Create(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error) {
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	employee := fromInput(input)
	employee.ID = 0
	employee.CreatedAt = now
	employee.UpdatedAt = now

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("employee_id", created.ID).Str("national_id", created.NationalID).Msg("employee created")
	return created, nil
}

// Update requires the path id to match the payload id, then re-runs the
// same referential checks as Create.
func (s *EmployeeService) Update(ctx context.Context, id int64, input ports.EmployeeInput) (*domain.Employee, error) {
	if input.ID != id {
		return nil, domain.ErrEmployeeIDMismatch
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	employee := fromInput(input)
	employee.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("employee_id", id).Msg("employee updated")
	return updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("employee_id", id).Msg("employee deleted")
	return nil
}

// ListGenders serves the catalog through the cache; cache failures fall
// back to the repository and are logged, never surfaced.
func (s *EmployeeService) ListGenders(ctx context.Context) ([]*domain.Gender, error) {
	if s.cache != nil {
		cached, err := s.cache.GetGenders(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("gender cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	genders, err := s.repo.ListGenders(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetGenders(ctx, genders); err != nil {
			s.logger.Warn().Err(err).Msg("gender cache write failed")
		}
	}
	return genders, nil
}

func (s *EmployeeService) ListMaritalStatuses(ctx context.Context) ([]*domain.MaritalStatus, error) {
	if s.cache != nil {
		cached, err := s.cache.GetMaritalStatuses(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("marital status cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	statuses, err := s.repo.ListMaritalStatuses(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetMaritalStatuses(ctx, statuses); err != nil {
			s.logger.Warn().Err(err).Msg("marital status cache write failed")
		}
	}
	return statuses, nil
}

// checkReferences confirms GenderID exists and, when supplied,
// MaritalStatusID exists. Marital status is optional.
func (s *EmployeeService) checkReferences(ctx context.Context, input ports.EmployeeInput) error {
	if _, err := s.repo.FindGender(ctx, input.GenderID); err != nil {
		return err
	}
	if input.MaritalStatusID != nil {
		if _, err := s.repo.FindMaritalStatus(ctx, *input.MaritalStatusID); err != nil {
			return err
		}
	}
	return nil
}

func fromInput(input ports.EmployeeInput) *domain.Employee {
	return &domain.Employee{
		ID:              input.ID,
		FirstName:       input.FirstName,
		MiddleName:      input.MiddleName,
		LastName:        input.LastName,
		GenderID:        input.GenderID,
		MaritalStatusID: input.MaritalStatusID,
		BirthDate:       input.BirthDate,
		NationalID:      input.NationalID,
		TaxID:           input.TaxID,
		IGSSNumber:      input.IGSSNumber,
		IRTRANumber:     input.IRTRANumber,
		PassportNumber:  input.PassportNumber,
		Address:         input.Address,
		Phone:           input.Phone,
		Email:           input.Email,
		Salary:          input.Salary,
	}
}
