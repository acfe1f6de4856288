package ports

import (
	"context"

	"github.com/kidsync/childcare-api/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer to Register.
type RegisterInput struct {
	Email      string
	Password   string
	Role       domain.Role
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	City       string
	PostalCode string
	// FirstLogin marks manager accounts created by an admin: the manager
	// must complete a one-time setup (password change) on first sign-in.
	FirstLogin bool
}

// AccountService orchestrates account lifecycle and authentication.
type AccountService interface {
	// Register validates input, hashes the password and creates the
	// account. Returns *domain.ValidationError on bad input and
	// domain.ErrEmailTaken on a duplicate email.
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)
	// Login verifies credentials and issues a token. Unknown email, wrong
	// password and deactivated account all collapse into
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.Account, string, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	// GetByEmail returns (nil, nil) when no account matches. Internal use.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	// Update applies a partial update. Empty patch fails with
	// domain.ErrNoFieldsProvided; a present password is re-hashed.
	Update(ctx context.Context, id string, actorID string, patch domain.AccountPatch) (*domain.Account, error)
	Deactivate(ctx context.Context, id string, actorID string) error
	List(ctx context.Context, filter ListAccountsFilter) ([]*domain.Account, int64, error)
	// HardDelete permanently removes a manager account. Any other role
	// fails with domain.ErrForbidden.
	HardDelete(ctx context.Context, id string, actorID string) error
}
