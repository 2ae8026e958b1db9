package handler

import "github.com/controlempleados/employee-records/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=100"`
	RoleID   int64  `json:"role_id"  validate:"required,gt=0"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Account *domain.Account `json:"account"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type profileResponse struct {
	AccountID int64  `json:"account_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expires_at"`
}
