package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a zero user id or an
// unknown role means the JWT is structurally valid but operationally
// unusable — reject with 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get("identity").(domain.Identity)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if identity.ID == 0 || !identity.Role.Valid() {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}
	return identity, nil
}
