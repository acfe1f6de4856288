package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kidsync/childcare-api/internal/api/middleware"
	"github.com/kidsync/childcare-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: presence proves the middleware ran.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(*domain.Identity)
	if !ok || identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
