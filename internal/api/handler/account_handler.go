package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kidsync/childcare-api/internal/api/metrics"
	"github.com/kidsync/childcare-api/internal/core/domain"
	"github.com/kidsync/childcare-api/internal/core/ports"
)

// AccountHandler handles administration of accounts: listing, reads,
// edits, soft deletes and the role-scoped sub-resources.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// List returns a page of active accounts.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "1-based page number"
// @Param        limit   query     int     false  "page size (max 100)"
// @Param        role    query     string  false  "exact role filter"
// @Param        search  query     string  false  "substring match on email or name"
// @Success      200     {object}  listAccountsResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /users [get]
func (h *AccountHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	// normalize up front so the reported metadata matches the page served
	filter := ports.ListAccountsFilter{
		Role:   domain.Role(c.QueryParam("role")),
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	}.Normalized()

	accounts, total, err := h.accounts.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	data := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		data = append(data, toAccountResponse(a))
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		totalPages++
	}

	return c.JSON(http.StatusOK, listAccountsResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      total,
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalPages: totalPages,
		},
	})
}

// Get returns a single account by id.
//
// @Summary      Get an account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "account id"
// @Success      200  {object}  accountResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	account, err := h.accounts.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// Update partially updates any account, role and active flag included.
//
// @Summary      Update an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "account id"
// @Param        body  body      updateAccountRequest  true  "Fields to update"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	account, err := h.accounts.Update(c.Request().Context(), c.Param("id"), identity.AccountID, req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// SoftDelete deactivates an account, keeping its row for history.
//
// @Summary      Deactivate an account
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "account id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *AccountHandler) SoftDelete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.accounts.Deactivate(c.Request().Context(), c.Param("id"), identity.AccountID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateWithRole creates an account through a role-scoped sub-resource; the
// role comes from the route, not the payload. Managers are created with the
// first-login flag raised so they complete a one-time setup.
func (h *AccountHandler) CreateWithRole(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createScopedRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		account, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
			Email:      req.Email,
			Password:   req.Password,
			Role:       role,
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Phone:      req.Phone,
			Address:    req.Address,
			City:       req.City,
			PostalCode: req.PostalCode,
			FirstLogin: role == domain.RoleManager,
		})
		if err != nil {
			return err
		}

		metrics.RegistrationsTotal.WithLabelValues(string(account.Role)).Inc()
		return c.JSON(http.StatusCreated, toAccountResponse(account))
	}
}

// DeleteWithRole removes an account through a role-scoped sub-resource.
// The target's role must match the path; managers are hard-deleted, every
// other role is soft-deleted.
func (h *AccountHandler) DeleteWithRole(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := ctxIdentity(c)
		if err != nil {
			return err
		}

		id := c.Param("id")
		target, err := h.accounts.GetByID(c.Request().Context(), id)
		if err != nil {
			return err
		}
		if target.Role != role {
			return domain.ErrForbidden
		}

		if role == domain.RoleManager {
			err = h.accounts.HardDelete(c.Request().Context(), id, identity.AccountID)
		} else {
			err = h.accounts.Deactivate(c.Request().Context(), id, identity.AccountID)
		}
		if err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}
