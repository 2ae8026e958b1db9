package handler

import "time"

type employeeRequest struct {
	ID              int64     `json:"id"`
	FirstName       string    `json:"first_name"        validate:"required,max=50"`
	MiddleName      string    `json:"middle_name"       validate:"max=100"`
	LastName        string    `json:"last_name"         validate:"required,max=50"`
	GenderID        int64     `json:"gender_id"         validate:"required,gt=0"`
	MaritalStatusID *int64    `json:"marital_status_id" validate:"omitempty,gt=0"`
	BirthDate       time.Time `json:"birth_date"        validate:"required"`
	NationalID      string    `json:"dpi"               validate:"required,max=20"`
	TaxID           string    `json:"nit"               validate:"max=20"`
	IGSSNumber      string    `json:"igss_number"       validate:"max=20"`
	IRTRANumber     string    `json:"irtra_number"      validate:"max=20"`
	PassportNumber  string    `json:"passport_number"   validate:"max=20"`
	Address         string    `json:"address"           validate:"required"`
	Phone           string    `json:"phone"             validate:"required,e164"`
	Email           string    `json:"email"             validate:"required,email"`
	Salary          float64   `json:"salary"            validate:"required,gt=0"`
}
