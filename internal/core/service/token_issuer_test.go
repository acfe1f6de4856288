package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kidsync/childcare-api/internal/core/domain"
)

func testAccount() *domain.Account {
	return &domain.Account{
		ID:    "acc-42",
		Email: "nina@example.com",
		Role:  domain.RoleCaregiver,
	}
}

func TestTokenIssuer_IssueVerify(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue(testAccount())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	identity, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if identity.AccountID != "acc-42" {
		t.Fatalf("unexpected subject: %s", identity.AccountID)
	}
	if identity.Role != domain.RoleCaregiver {
		t.Fatalf("unexpected role: %s", identity.Role)
	}
	if identity.TokenID == "" {
		t.Fatalf("expected a jti")
	}
	if identity.ExpiresAt.Before(time.Now()) {
		t.Fatalf("token already expired: %v", identity.ExpiresAt)
	}
}

func TestTokenIssuer_WrongKey(t *testing.T) {
	token, err := NewTokenIssuer("key-one", time.Hour).Issue(testAccount())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewTokenIssuer("key-two", time.Hour).Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	// craft an already-expired token with the same key
	claims := accountClaims{
		Role: string(domain.RoleParent),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "acc-1",
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := NewTokenIssuer("secret", time.Hour).Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenIssuer_WrongAlgorithm(t *testing.T) {
	// unsigned token must never verify
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  "acc-1",
		"role": "admin",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := NewTokenIssuer("secret", time.Hour).Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenIssuer_RejectsUnknownRole(t *testing.T) {
	claims := accountClaims{
		Role: "superuser",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "acc-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := NewTokenIssuer("secret", time.Hour).Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
