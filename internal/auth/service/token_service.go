package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/EleisonC/Auth-Service/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/EleisonC/Auth-Service/internal/auth/domain"
	autherror "github.com/EleisonC/Auth-Service/internal/errors"
)

// DefaultTokenTTL is the session token lifetime.
const DefaultTokenTTL = 10 * time.Minute

// SessionClaims is the signed payload: subject (email) and expiry. It is
// never persisted; it exists only inside a token and is rebuilt by Verify.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// Email returns the authenticated identity the token asserts.
func (c *SessionClaims) Email() (domain.Email, error) {
	return domain.ParseEmail(c.Subject)
}

// TokenGenerator mints and verifies session tokens. Verify checks signature
// and expiry only; revocation is the orchestrator's concern.
type TokenGenerator interface {
	Generate(email domain.Email) (string, time.Time, error)
	Verify(token string) (*SessionClaims, error)
	TTL() time.Duration
}

// TokenService signs HS256 tokens with a process-wide symmetric key.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Generate mints a token asserting email until now+TTL.
func (ts *TokenService) Generate(email domain.Email) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.ttl)

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Verify checks the signature first, then expiry. A bad signature, wrong
// algorithm, or garbled token is ErrTokenMalformed; a good signature past its
// exp is ErrTokenExpired.
func (ts *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return ts.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrTokenExpired
		}

		return nil, autherror.ErrTokenMalformed
	}

	if !token.Valid || claims.ExpiresAt == nil || claims.Subject == "" {
		return nil, autherror.ErrTokenMalformed
	}

	return claims, nil
}

func (ts *TokenService) TTL() time.Duration {
	return ts.ttl
}
