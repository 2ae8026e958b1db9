package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/controlempleados/employee-records/internal/api/middleware"
	"github.com/controlempleados/employee-records/internal/core/domain"
)

// ctxClaims extracts the token claims injected by the Auth middleware.
// Presence proves the middleware ran; a handler mounted behind Auth that
// still finds nothing treats the request as unauthenticated.
func ctxClaims(c echo.Context) (*domain.TokenClaims, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(*domain.TokenClaims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
