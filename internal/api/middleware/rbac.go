package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

// RequireRole restricts a route to identities holding one of the given roles.
// Ownership checks stay in the service layer; this only gates whole routes
// (e.g. the admin user listing).
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(identityKey).(domain.Identity)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authentication"})
			}
			if _, ok := allowed[identity.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
