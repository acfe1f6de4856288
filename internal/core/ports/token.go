package ports

import (
	"context"
	"time"

	"github.com/kidsync/childcare-api/internal/core/domain"
)

// TokenIssuer mints signed tokens asserting (account id, role).
type TokenIssuer interface {
	Issue(account *domain.Account) (string, error)
}

// TokenVerifier validates a token and resolves it into an identity.
// Fails with domain.ErrTokenExpired past expiry, domain.ErrTokenInvalid
// for any other defect (bad signature, wrong algorithm, malformed).
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

// TokenDenylist records revoked token ids until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
