package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/controlempleados/employee-records/internal/core/domain"
	"github.com/controlempleados/employee-records/internal/core/ports"
)

type stubEmployeeService struct {
	listFn   func(ctx context.Context) ([]*domain.Employee, error)
	getFn    func(ctx context.Context, id int64) (*domain.Employee, error)
	createFn func(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error)
	updateFn func(ctx context.Context, id int64, input ports.EmployeeInput) (*domain.Employee, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubEmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.listFn(ctx)
}

func (s *stubEmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.getFn(ctx, id)
}

func (s *stubEmployeeService) Create(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error) {
	return s.createFn(ctx, input)
}

func (s *stubEmployeeService) Update(ctx context.Context, id int64, input ports.EmployeeInput) (*domain.Employee, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubEmployeeService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubEmployeeService) ListGenders(ctx context.Context) ([]*domain.Gender, error) {
	return []*domain.Gender{{ID: 1, Name: "Male"}, {ID: 2, Name: "Female"}}, nil
}

func (s *stubEmployeeService) ListMaritalStatuses(ctx context.Context) ([]*domain.MaritalStatus, error) {
	return []*domain.MaritalStatus{{ID: 1, Name: "Single"}}, nil
}

func validEmployeeBody(id int64) string {
	return fmt.Sprintf(`{
		"id": %d,
		"first_name": "Maria",
		"last_name": "Lopez",
		"gender_id": 2,
		"marital_status_id": 1,
		"birth_date": "1990-04-12T00:00:00Z",
		"dpi": "2547896320101",
		"nit": "7894561-2",
		"address": "4a calle 5-20 zona 1, Guatemala",
		"phone": "+50255551234",
		"email": "maria.lopez@example.com",
		"salary": 6500.50
	}`, id)
}

func TestEmployeeHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		listFn: func(ctx context.Context) ([]*domain.Employee, error) {
			return []*domain.Employee{
				{ID: 1, FirstName: "Maria", LastName: "Lopez"},
				{ID: 2, FirstName: "Carlos", LastName: "Perez"},
			}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var employees []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &employees); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}
}

func TestEmployeeHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		getFn: func(ctx context.Context, id int64) (*domain.Employee, error) {
			return nil, domain.ErrEmployeeNotFound
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/employees/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Get_InvalidID(t *testing.T) {
	e := newTestEcho()
	handler := NewEmployeeHandler(&stubEmployeeService{
		getFn: func(ctx context.Context, id int64) (*domain.Employee, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	for _, raw := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest(http.MethodGet, "/api/employees/"+raw, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(raw)

		err := handler.Get(c)

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400 HTTPError, got %v", raw, err)
		}
	}
}

func TestEmployeeHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error) {
			if input.FirstName != "Maria" || input.GenderID != 2 {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.MaritalStatusID == nil || *input.MaritalStatusID != 1 {
				t.Fatalf("expected marital status 1, got %v", input.MaritalStatusID)
			}
			return &domain.Employee{ID: 10, FirstName: input.FirstName, LastName: input.LastName}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(validEmployeeBody(0)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(10) {
		t.Fatalf("expected assigned id in response, got %v", resp["id"])
	}
}

func TestEmployeeHandler_Create_UnknownGender(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error) {
			return nil, domain.ErrGenderNotFound
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(validEmployeeBody(0)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Create_Duplicate(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error) {
			return nil, domain.ErrDuplicateEmployee
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(validEmployeeBody(0)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Create(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Create_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	handler := NewEmployeeHandler(&stubEmployeeService{
		createFn: func(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	for _, body := range []string{
		"not-json",
		`{"first_name":"Maria"}`,
		strings.Replace(validEmployeeBody(0), "+50255551234", "not-a-phone", 1),
		strings.Replace(validEmployeeBody(0), "maria.lopez@example.com", "not-an-email", 1),
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = handler.Create(c)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

// Phone validation accepts digit-only numbers without the international
// prefix; only clearly malformed values are rejected.
func TestEmployeeHandler_Create_PhoneWithoutPrefix(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error) {
			if input.Phone != "55551234" {
				t.Fatalf("unexpected phone %q", input.Phone)
			}
			return &domain.Employee{ID: 11, FirstName: input.FirstName, LastName: input.LastName}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	body := strings.Replace(validEmployeeBody(0), "+50255551234", "55551234", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/employees", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Update_IDMismatch(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		updateFn: func(ctx context.Context, id int64, input ports.EmployeeInput) (*domain.Employee, error) {
			return nil, domain.ErrEmployeeIDMismatch
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/api/employees/5", strings.NewReader(validEmployeeBody(6)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	_ = handler.Update(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Update_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		updateFn: func(ctx context.Context, id int64, input ports.EmployeeInput) (*domain.Employee, error) {
			if id != 5 || input.ID != 5 {
				t.Fatalf("unexpected ids: path=%d payload=%d", id, input.ID)
			}
			return &domain.Employee{ID: id, FirstName: input.FirstName, LastName: input.LastName}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/api/employees/5", strings.NewReader(validEmployeeBody(5)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Delete(t *testing.T) {
	e := newTestEcho()

	t.Run("success", func(t *testing.T) {
		stub := &stubEmployeeService{
			deleteFn: func(ctx context.Context, id int64) error {
				if id != 9 {
					t.Fatalf("unexpected id %d", id)
				}
				return nil
			},
		}
		handler := NewEmployeeHandler(stub)

		req := httptest.NewRequest(http.MethodDelete, "/api/employees/9", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("9")

		if err := handler.Delete(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		stub := &stubEmployeeService{
			deleteFn: func(ctx context.Context, id int64) error {
				return domain.ErrEmployeeNotFound
			},
		}
		handler := NewEmployeeHandler(stub)

		req := httptest.NewRequest(http.MethodDelete, "/api/employees/9", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("9")

		_ = handler.Delete(c)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestEmployeeHandler_Catalogs(t *testing.T) {
	e := newTestEcho()
	handler := NewEmployeeHandler(&stubEmployeeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/employees/genders", nil)
	rec := httptest.NewRecorder()
	if err := handler.ListGenders(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var genders []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &genders); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(genders) != 2 || genders[0]["name"] != "Male" {
		t.Fatalf("unexpected genders: %+v", genders)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/employees/maritalstatuses", nil)
	rec = httptest.NewRecorder()
	if err := handler.ListMaritalStatuses(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var statuses []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &statuses); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(statuses) != 1 || statuses[0]["name"] != "Single" {
		t.Fatalf("unexpected statuses: %+v", statuses)
	}
}
