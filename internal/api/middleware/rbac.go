package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kidsync/childcare-api/internal/core/domain"
)

// RequireRoles enforces role-based access control on top of Auth.
// A request that never went through Auth (no resolved identity) is a 401;
// an authenticated identity whose role is not in the allowed set is a 403.
func RequireRoles(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(IdentityKey).(*domain.Identity)
			if !ok || identity == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}
			if _, ok := allowed[identity.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
