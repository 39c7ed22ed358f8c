package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/skymarket/classifieds-api/internal/core/domain"
)

// identityKey is the context key under which the authenticated identity is
// stored by Auth and read back by handlers.
const identityKey = "identity"

// RevocationChecker reports whether a token issued at a given time has been
// invalidated (e.g. by a later password change).
type RevocationChecker interface {
	IsRevoked(ctx context.Context, userID int64, issuedAt time.Time) (bool, error)
}

// Auth validates the JWT and injects the caller's identity into context.
// A nil revocations checker disables the revocation lookup.
func Auth(jwtSecret string, revocations RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			uid, ok := claims["uid"].(float64)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
			}
			username, _ := claims["username"].(string)
			role, _ := claims["role"].(string)

			if revocations != nil {
				issuedAt, err := claims.GetIssuedAt()
				if err != nil || issuedAt == nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "token missing issue time")
				}
				revoked, err := revocations.IsRevoked(c.Request().Context(), int64(uid), issuedAt.Time)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "token verification failed")
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			c.Set(identityKey, domain.Identity{
				ID:       int64(uid),
				Username: username,
				Role:     domain.Role(role),
			})

			return next(c)
		}
	}
}
