package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/controlempleados/employee-records/internal/api/metrics"
	"github.com/controlempleados/employee-records/internal/core/domain"
)

// RequireRole enforces role-based access control. It must run after Auth;
// role matching is exact and case-sensitive, there is no role hierarchy.
// A valid identity with the wrong role gets 403, distinct from the 401
// produced by Auth for unusable credentials.
func RequireRole(allowedRoles ...domain.RoleName) echo.MiddlewareFunc {
	allowed := make(map[domain.RoleName]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ClaimsKey).(*domain.TokenClaims)
			if !ok || claims == nil {
				metrics.AuthDenialsTotal.WithLabelValues("missing_credential").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[claims.Role]; !ok {
				metrics.AuthDenialsTotal.WithLabelValues("insufficient_role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
