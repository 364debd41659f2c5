package errors

import (
	"errors"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrChallengeNotFound  = errors.New("2fa challenge not found")
	ErrChallengeExpired   = errors.New("2fa challenge expired")
	ErrChallengeMismatch  = errors.New("2fa challenge mismatch")
	ErrTokenMissing       = errors.New("missing token")
	ErrTokenMalformed     = errors.New("malformed token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrStoreUnavailable   = errors.New("store unavailable")
)
