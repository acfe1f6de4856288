package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kidsync/childcare-api/internal/core/domain"
)

// TokenIssuer issues and verifies HS256 tokens asserting (account id, role).
// A single static signing key is used for the whole process lifetime.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

type accountClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue mints a signed token for the account. The jti uniquely identifies
// this token so it can be revoked individually on logout.
func (t *TokenIssuer) Issue(account *domain.Account) (string, error) {
	now := time.Now().UTC()
	claims := accountClaims{
		Role: string(account.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses and validates a token, resolving it into an Identity.
func (t *TokenIssuer) Verify(token string) (*domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &accountClaims{}, func(tok *jwt.Token) (any, error) {
		// prevent alg confusion
		if tok.Method == nil || tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, domain.ErrTokenInvalid
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*accountClaims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	if claims.Subject == "" || !domain.Role(claims.Role).Valid() {
		return nil, domain.ErrTokenInvalid
	}

	exp := time.Time{}
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	return &domain.Identity{
		AccountID: claims.Subject,
		Role:      domain.Role(claims.Role),
		TokenID:   claims.ID,
		ExpiresAt: exp,
	}, nil
}
