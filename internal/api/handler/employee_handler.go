package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/controlempleados/employee-records/internal/api/metrics"
	"github.com/controlempleados/employee-records/internal/core/domain"
	"github.com/controlempleados/employee-records/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for the employee catalog.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List returns all employee records.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}  domain.Employee
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Get returns a single employee by id.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  errorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := employeeID(c)
	if err != nil {
		return err
	}

	employee, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "employee not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Create inserts a new employee record. Admin only.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      employeeRequest  true  "Employee record"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		metrics.EmployeeWritesTotal.WithLabelValues("create", "invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.EmployeeWritesTotal.WithLabelValues("create", "invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), toInput(req))
	if err != nil {
		return h.writeError(c, "create", err)
	}

	metrics.EmployeeWritesTotal.WithLabelValues("create", "ok").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update replaces an existing employee record. The path id must match the
// payload id. Admin only.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Employee id"
// @Param        body  body      employeeRequest  true  "Employee record"
// @Success      200   {object}  domain.Employee
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := employeeID(c)
	if err != nil {
		return err
	}

	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		metrics.EmployeeWritesTotal.WithLabelValues("update", "invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.EmployeeWritesTotal.WithLabelValues("update", "invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), id, toInput(req))
	if err != nil {
		return h.writeError(c, "update", err)
	}

	metrics.EmployeeWritesTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, updated)
}

// Delete removes an employee record. Admin only.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := employeeID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return h.writeError(c, "delete", err)
	}

	metrics.EmployeeWritesTotal.WithLabelValues("delete", "ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "employee deleted"})
}

// ListGenders returns the gender lookup catalog.
//
// @Summary      List genders
// @Tags         employees
// @Produce      json
// @Success      200  {array}  domain.Gender
// @Router       /api/employees/genders [get]
func (h *EmployeeHandler) ListGenders(c echo.Context) error {
	genders, err := h.service.ListGenders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genders)
}

// ListMaritalStatuses returns the marital status lookup catalog.
//
// @Summary      List marital statuses
// @Tags         employees
// @Produce      json
// @Success      200  {array}  domain.MaritalStatus
// @Router       /api/employees/maritalstatuses [get]
func (h *EmployeeHandler) ListMaritalStatuses(c echo.Context) error {
	statuses, err := h.service.ListMaritalStatuses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statuses)
}

// writeError maps employee service failures onto the error taxonomy and
// records the write metric.
func (h *EmployeeHandler) writeError(c echo.Context, operation string, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		metrics.EmployeeWritesTotal.WithLabelValues(operation, "invalid").Inc()
		return c.JSON(http.StatusNotFound, errorResponse{Error: "employee not found"})
	case errors.Is(err, domain.ErrEmployeeIDMismatch):
		metrics.EmployeeWritesTotal.WithLabelValues(operation, "invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "path id does not match payload id"})
	case errors.Is(err, domain.ErrGenderNotFound):
		metrics.EmployeeWritesTotal.WithLabelValues(operation, "invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "gender_id does not reference an existing gender"})
	case errors.Is(err, domain.ErrMaritalStatusNotFound):
		metrics.EmployeeWritesTotal.WithLabelValues(operation, "invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "marital_status_id does not reference an existing marital status"})
	case errors.Is(err, domain.ErrDuplicateEmployee):
		metrics.EmployeeWritesTotal.WithLabelValues(operation, "conflict").Inc()
		return c.JSON(http.StatusConflict, errorResponse{Error: "an employee with that national id or email already exists"})
	}
	metrics.EmployeeWritesTotal.WithLabelValues(operation, "error").Inc()
	return err
}

func employeeID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "employee id must be a positive integer")
	}
	return id, nil
}

func toInput(req employeeRequest) ports.EmployeeInput {
	return ports.EmployeeInput{
		ID:              req.ID,
		FirstName:       req.FirstName,
		MiddleName:      req.MiddleName,
		LastName:        req.LastName,
		GenderID:        req.GenderID,
		MaritalStatusID: req.MaritalStatusID,
		BirthDate:       req.BirthDate,
		NationalID:      req.NationalID,
		TaxID:           req.TaxID,
		IGSSNumber:      req.IGSSNumber,
		IRTRANumber:     req.IRTRANumber,
		PassportNumber:  req.PassportNumber,
		Address:         req.Address,
		Phone:           req.Phone,
		Email:           req.Email,
		Salary:          req.Salary,
	}
}
