package domain

import (
	"errors"
	"time"
)

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrDuplicateEmployee = errors.New("employee already exists")
var ErrEmployeeIDMismatch = errors.New("employee id mismatch")
var ErrGenderNotFound = errors.New("gender not found")
var ErrMaritalStatusNotFound = errors.New("marital status not found")

// Gender is a seeded lookup row referenced by employees.
type Gender struct {
	ID   int64  `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// MaritalStatus is a seeded lookup row, optional on employees.
type MaritalStatus struct {
	ID   int64  `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// Employee is the personnel record managed by the catalog. NationalID and
// Email are natural keys enforced by unique indexes in the store.
type Employee struct {
	ID              int64     `json:"id" bson:"_id"`
	FirstName       string    `json:"first_name" bson:"first_name"`
	MiddleName      string    `json:"middle_name" bson:"middle_name"`
	LastName        string    `json:"last_name" bson:"last_name"`
	GenderID        int64     `json:"gender_id" bson:"gender_id"`
	MaritalStatusID *int64    `json:"marital_status_id,omitempty" bson:"marital_status_id,omitempty"`
	BirthDate       time.Time `json:"birth_date" bson:"birth_date"`
	NationalID      string    `json:"dpi" bson:"national_id"`
	TaxID           string    `json:"nit,omitempty" bson:"tax_id,omitempty"`
	IGSSNumber      string    `json:"igss_number,omitempty" bson:"igss_number,omitempty"`
	IRTRANumber     string    `json:"irtra_number,omitempty" bson:"irtra_number,omitempty"`
	PassportNumber  string    `json:"passport_number,omitempty" bson:"passport_number,omitempty"`
	Address         string    `json:"address" bson:"address"`
	Phone           string    `json:"phone" bson:"phone"`
	Email           string    `json:"email" bson:"email"`
	Salary          float64   `json:"salary" bson:"salary"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}
