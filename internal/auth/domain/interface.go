package domain

//go:generate mockgen -destination=../../mocks/mock_user_store.go -package=mocks github.com/EleisonC/Auth-Service/internal/auth/domain UserStore
//go:generate mockgen -destination=../../mocks/mock_two_fa_code_store.go -package=mocks github.com/EleisonC/Auth-Service/internal/auth/domain TwoFACodeStore
//go:generate mockgen -destination=../../mocks/mock_banned_token_store.go -package=mocks github.com/EleisonC/Auth-Service/internal/auth/domain BannedTokenStore

import (
	"context"
	"time"
)

// UserStore owns the identity -> credential mapping. Implementations hash the
// password on Add and compare hashes on Validate; raw secrets never persist.
type UserStore interface {
	Add(ctx context.Context, email Email, password Password, requires2FA bool) error
	Get(ctx context.Context, email Email) (*User, error)
	Validate(ctx context.Context, email Email, password Password) error
}

// TwoFACodeStore owns short-lived 2FA challenges, at most one per email.
// Add overwrites any live challenge for the same email.
type TwoFACodeStore interface {
	Add(ctx context.Context, email Email, attemptID AttemptID, code TwoFACode) error
	Get(ctx context.Context, email Email) (*Challenge, error)
	Remove(ctx context.Context, email Email) error
	// RecordFailure bumps the attempt counter for the live challenge and
	// reports whether the cap was exceeded, in which case the challenge has
	// been invalidated.
	RecordFailure(ctx context.Context, email Email) (bool, error)
}

// BannedTokenStore owns tokens that must be rejected before their natural
// expiry. Keys are literal token strings so a malformed-but-issued token can
// still be banned. Ban is idempotent.
type BannedTokenStore interface {
	Ban(ctx context.Context, token string, ttl time.Duration) error
	IsBanned(ctx context.Context, token string) (bool, error)
}
