package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/controlempleados/employee-records/internal/api/metrics"
	"github.com/controlempleados/employee-records/internal/core/ports"
)

// ClaimsKey is the echo context key under which Auth stores the validated
// token claims (*domain.TokenClaims).
const ClaimsKey = "claims"

// Auth validates the bearer token and injects the typed claims into the
// request context. A missing, malformed or invalid token is rejected with
// 401 before the handler runs; the response does not say which.
func Auth(tokens ports.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthDenialsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthDenialsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.AuthDenialsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}
