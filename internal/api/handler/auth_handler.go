package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kidsync/childcare-api/internal/api/metrics"
	"github.com/kidsync/childcare-api/internal/core/domain"
	"github.com/kidsync/childcare-api/internal/core/ports"
)

// authCookieName is the same-site cookie the token is mirrored into for
// browser clients. The Authorization header stays the authoritative
// transport; the cookie is never verified server-side.
const authCookieName = "auth_token"

// AuthHandler handles registration, login and the self-service endpoints.
type AuthHandler struct {
	accounts ports.AccountService
	denylist ports.TokenDenylist
	activity ports.ActivityRecorder // optional; nil disables recording
}

func NewAuthHandler(accounts ports.AccountService, denylist ports.TokenDenylist, activity ports.ActivityRecorder) *AuthHandler {
	return &AuthHandler{accounts: accounts, denylist: denylist, activity: activity}
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		Role:       domain.Role(req.Role),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(account.Role)).Inc()
	return c.JSON(http.StatusCreated, authResponse{User: toAccountResponse(account)})
}

// Login authenticates an account and returns a token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, token, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, authResponse{Token: token, User: toAccountResponse(account)})
}

// Logout revokes the current token until its natural expiry.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if h.denylist != nil && identity.TokenID != "" {
		ttl := time.Until(identity.ExpiresAt)
		if err := h.denylist.Revoke(c.Request().Context(), identity.TokenID, ttl); err != nil {
			return err
		}
		metrics.TokensRevokedTotal.Inc()
	}

	if h.activity != nil {
		h.activity.Record(domain.ActivityEvent{
			AccountID:  identity.AccountID,
			ActorID:    identity.AccountID,
			Action:     domain.ActionLoggedOut,
			OccurredAt: time.Now().UTC(),
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}

// Me returns the account behind the current token.
//
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  accountResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	account, err := h.accounts.GetByID(c.Request().Context(), identity.AccountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// Session returns the account plus the role-routed presentation decision.
//
// @Summary      Current session with dashboard routing
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	account, err := h.accounts.GetByID(c.Request().Context(), identity.AccountID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{
		User:      toAccountResponse(account),
		Dashboard: string(domain.DashboardFor(account.Role)),
		Landing:   domain.LandingPath(account.Role),
	})
}

// UpdateProfile partially updates the caller's own account. The request
// schema carries no role field, so self-service role changes are impossible
// by construction.
//
// @Summary      Update own profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	account, err := h.accounts.Update(c.Request().Context(), identity.AccountID, identity.AccountID, req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}
