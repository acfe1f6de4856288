package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kidsync/childcare-api/internal/core/domain"
	"github.com/kidsync/childcare-api/internal/core/ports"
)

// IdentityKey is the echo context key the resolved identity is stored under.
const IdentityKey = "identity"

// Auth verifies the bearer token and injects the resolved identity into the
// request context. Requests without a valid token are rejected with 401 —
// there is no anonymous fallback. A non-nil denylist additionally rejects
// tokens revoked by logout.
func Auth(verifier ports.TokenVerifier, denylist ports.TokenDenylist) echo.MiddlewareFunc {
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

			identity, err := verifier.Verify(parts[1])
			if err != nil {
				return err // domain.ErrTokenInvalid / ErrTokenExpired map to 401
			}

			if denylist != nil && identity.TokenID != "" {
				revoked, err := denylist.IsRevoked(c.Request().Context(), identity.TokenID)
				if err != nil {
					return err
				}
				if revoked {
					return domain.ErrTokenInvalid
				}
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}
