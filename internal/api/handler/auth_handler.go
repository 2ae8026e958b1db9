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

// AuthHandler handles HTTP requests for accounts and authentication.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new inactive account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	account, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.RoleID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountExists):
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusConflict, errorResponse{Error: "username already taken"})
		case errors.Is(err, domain.ErrRoleNotFound), errors.Is(err, domain.ErrInvalidRegistration):
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid registration data"})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, registerResponse{Account: account})
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("unauthorized").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

// Me returns the identity carried by the presented token. Requires
// authentication but no specific role.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{
		AccountID: claims.AccountID,
		Username:  claims.Username,
		Role:      string(claims.Role),
		ExpiresAt: formatTime(claims.ExpiresAt),
	})
}

// Activate enables a registered account. Admin only.
//
// @Summary      Activate an account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/auth/activate/{id} [post]
func (h *AuthHandler) Activate(c echo.Context) error {
	return h.setActive(c, true)
}

// Deactivate suspends an account. Admin only. Tokens issued before the
// call stay valid until their natural expiry.
//
// @Summary      Deactivate an account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/auth/deactivate/{id} [post]
func (h *AuthHandler) Deactivate(c echo.Context) error {
	return h.setActive(c, false)
}

func (h *AuthHandler) setActive(c echo.Context, active bool) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "account id must be a positive integer"})
	}

	var svcErr error
	if active {
		svcErr = h.authService.Activate(c.Request().Context(), id)
	} else {
		svcErr = h.authService.Deactivate(c.Request().Context(), id)
	}
	if svcErr != nil {
		if errors.Is(svcErr, domain.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "account not found"})
		}
		return svcErr
	}

	msg := "account activated"
	if !active {
		msg = "account deactivated"
	}
	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// ListAccounts returns the full account roster with resolved role names.
// Admin only.
//
// @Summary      List accounts
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Account
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/auth/users [get]
func (h *AuthHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.authService.ListAccounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// ListRoles returns the role catalog. Open to any caller so registration
// forms can populate their role selector.
//
// @Summary      List roles
// @Tags         auth
// @Produce      json
// @Success      200  {array}  domain.Role
// @Router       /api/auth/roles [get]
func (h *AuthHandler) ListRoles(c echo.Context) error {
	roles, err := h.authService.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}
