package ports

import (
	"context"

	"github.com/kidsync/childcare-api/internal/core/domain"
)

const (
	// DefaultPageSize applies when a list request carries no limit.
	DefaultPageSize = 20
	// MaxPageSize caps the limit a caller may request.
	MaxPageSize = 100
)

// ListAccountsFilter carries all query parameters for listing accounts.
// Only active accounts are ever returned; the repository enforces that.
type ListAccountsFilter struct {
	Role   domain.Role // optional: exact role match; empty = no filter
	Search string      // optional: case-insensitive substring over email/first/last name
	Page   int         // 1-based
	Limit  int         // max rows per page
}

// Normalized returns a copy with page and limit clamped to valid values.
// Both the transport and the service use it, so the pagination metadata a
// response reports always matches the page the repository actually served.
func (f ListAccountsFilter) Normalized() ListAccountsFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	return f
}

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// Create inserts a new account and returns it with its assigned id.
	// Returns domain.ErrEmailTaken when the email is already present,
	// including on soft-deleted rows.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// FindByEmail looks up an account regardless of its active flag.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// Update applies the non-nil patch fields in one atomic write and
	// returns the updated account, or domain.ErrAccountNotFound when no
	// row matched. updated_at is always refreshed.
	Update(ctx context.Context, id string, patch domain.AccountPatch) (*domain.Account, error)
	// Deactivate soft-deletes: sets is_active=false on an active row.
	Deactivate(ctx context.Context, id string) error
	// Delete permanently removes the row.
	Delete(ctx context.Context, id string) error
	// List returns a page of active accounts matching filter and the total
	// count of the filtered set.
	List(ctx context.Context, filter ListAccountsFilter) ([]*domain.Account, int64, error)
}
