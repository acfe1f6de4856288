package handler

import (
	"time"

	"github.com/kidsync/childcare-api/internal/core/domain"
)

// errorResponse documents the error envelope for swagger; the central error
// handler in package api renders the real one.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// --- Request types ---

type registerRequest struct {
	Email      string `json:"email"       validate:"required,email"`
	Password   string `json:"password"    validate:"required,min=6"`
	Role       string `json:"role"        validate:"required,oneof=admin manager caregiver parent"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// createScopedRequest creates an account through a role-scoped sub-resource
// (/managers, /nannies, /parents); the role is implied by the path.
type createScopedRequest struct {
	Email      string `json:"email"       validate:"required,email"`
	Password   string `json:"password"    validate:"required,min=6"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// updateProfileRequest is the self-service partial update. Absent fields are
// left untouched. There is deliberately no role field here.
type updateProfileRequest struct {
	Email      *string `json:"email,omitempty"`
	Password   *string `json:"password,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
}

func (r updateProfileRequest) toPatch() domain.AccountPatch {
	return domain.AccountPatch{
		Email:      r.Email,
		Password:   r.Password,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Phone:      r.Phone,
		Address:    r.Address,
		City:       r.City,
		PostalCode: r.PostalCode,
	}
}

// updateAccountRequest is the admin-side partial update; it may additionally
// change role and active state.
type updateAccountRequest struct {
	updateProfileRequest
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r updateAccountRequest) toPatch() domain.AccountPatch {
	patch := r.updateProfileRequest.toPatch()
	if r.Role != nil {
		role := domain.Role(*r.Role)
		patch.Role = &role
	}
	patch.IsActive = r.IsActive
	return patch
}

// --- Response types ---

// accountResponse is the transport-owned account shape; the password hash
// never appears here.
type accountResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	FirstName  string    `json:"first_name,omitempty"`
	LastName   string    `json:"last_name,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	City       string    `json:"city,omitempty"`
	PostalCode string    `json:"postal_code,omitempty"`
	IsActive   bool      `json:"is_active"`
	FirstLogin bool      `json:"first_login"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:         a.ID,
		Email:      a.Email,
		Role:       string(a.Role),
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Phone:      a.Phone,
		Address:    a.Address,
		City:       a.City,
		PostalCode: a.PostalCode,
		IsActive:   a.IsActive,
		FirstLogin: a.FirstLogin,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

type authResponse struct {
	Token string          `json:"token,omitempty"`
	User  accountResponse `json:"user"`
}

// sessionResponse adds the role-routed presentation decision to the account:
// which dashboard variant to render and where to land after sign-in.
type sessionResponse struct {
	User      accountResponse `json:"user"`
	Dashboard string          `json:"dashboard"`
	Landing   string          `json:"landing"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listAccountsResponse struct {
	Data       []accountResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type activityEventResponse struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"account_id"`
	ActorID    string    `json:"actor_id,omitempty"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

type listActivityResponse struct {
	Data []activityEventResponse `json:"data"`
}
