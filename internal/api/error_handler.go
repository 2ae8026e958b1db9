package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/controlempleados/employee-records/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their taxonomy status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware denials).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Credential and token
	// failures share one non-distinguishing message.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusConflict, "username already taken"
	case errors.Is(err, domain.ErrInvalidRegistration):
		return http.StatusBadRequest, "invalid registration data"
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "account not found"
	case errors.Is(err, domain.ErrRoleNotFound):
		return http.StatusBadRequest, "role does not exist"
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound, "employee not found"
	case errors.Is(err, domain.ErrDuplicateEmployee):
		return http.StatusConflict, "an employee with that national id or email already exists"
	case errors.Is(err, domain.ErrEmployeeIDMismatch):
		return http.StatusBadRequest, "path id does not match payload id"
	case errors.Is(err, domain.ErrGenderNotFound):
		return http.StatusBadRequest, "gender_id does not reference an existing gender"
	case errors.Is(err, domain.ErrMaritalStatusNotFound):
		return http.StatusBadRequest, "marital_status_id does not reference an existing marital status"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
