package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Role is the closed set of account roles. Every account carries exactly one.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"   // "gestionnaire"
	RoleCaregiver Role = "caregiver" // "nounou"
	RoleParent    Role = "parent"
)

// Roles lists every valid role, in privilege order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleCaregiver, RoleParent}
}

// Valid reports whether r is one of the four enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCaregiver, RoleParent:
		return true
	}
	return false
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrAccountNotFound = errors.New("account not found")
var ErrNoFieldsProvided = errors.New("no fields provided")
var ErrForbidden = errors.New("access forbidden")
var ErrTokenInvalid = errors.New("token invalid")
var ErrTokenExpired = errors.New("token expired")

// Account is the single persisted identity record. The password hash never
// leaves the process: it is excluded from JSON and from every response DTO.
type Account struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         Role      `json:"role" bson:"role"`
	FirstName    string    `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	City         string    `json:"city,omitempty" bson:"city,omitempty"`
	PostalCode   string    `json:"postal_code,omitempty" bson:"postal_code,omitempty"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	FirstLogin   bool      `json:"first_login" bson:"first_login"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// AccountPatch carries a partial update: only non-nil fields are written.
// Password is input-only; the service swaps it for PasswordHash before the
// patch reaches the repository.
type AccountPatch struct {
	Email        *string
	Password     *string
	PasswordHash *string
	Role         *Role
	FirstName    *string
	LastName     *string
	Phone        *string
	Address      *string
	City         *string
	PostalCode   *string
	IsActive     *bool
	FirstLogin   *bool
}

// Empty reports whether the patch sets nothing at all.
func (p AccountPatch) Empty() bool {
	return p.Email == nil && p.Password == nil && p.PasswordHash == nil &&
		p.Role == nil && p.FirstName == nil && p.LastName == nil &&
		p.Phone == nil && p.Address == nil && p.City == nil &&
		p.PostalCode == nil && p.IsActive == nil && p.FirstLogin == nil
}

// ValidationError aggregates per-field input violations.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
