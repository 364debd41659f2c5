package domain

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"

	autherror "github.com/EleisonC/Auth-Service/internal/errors"
)

const twoFACodeDigits = 6

// AttemptID correlates a pending login with its 2FA challenge. It is opaque
// to clients and UUID-shaped on the wire.
type AttemptID struct {
	value string
}

// NewAttemptID returns a fresh random attempt ID.
func NewAttemptID() AttemptID {
	return AttemptID{value: uuid.NewString()}
}

// ParseAttemptID validates an ID echoed back by a client.
func ParseAttemptID(raw string) (AttemptID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return AttemptID{}, autherror.ErrInvalidInput
	}

	return AttemptID{value: id.String()}, nil
}

func (a AttemptID) String() string {
	return a.value
}

// TwoFACode is the short numeric secret delivered out-of-band. String output
// is redacted; delivery and storage go through Value.
type TwoFACode struct {
	value string
}

// NewTwoFACode draws a uniform 6-digit code from 100000-999999.
func NewTwoFACode() (TwoFACode, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return TwoFACode{}, err
	}

	code := n.Int64() + 100000

	return TwoFACode{value: big.NewInt(code).String()}, nil
}

// ParseTwoFACode validates the shape of a code submitted by a client.
func ParseTwoFACode(raw string) (TwoFACode, error) {
	if len(raw) != twoFACodeDigits {
		return TwoFACode{}, autherror.ErrInvalidInput
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return TwoFACode{}, autherror.ErrInvalidInput
		}
	}

	return TwoFACode{value: raw}, nil
}

// Value returns the code digits for storage and delivery.
func (c TwoFACode) Value() string {
	return c.value
}

func (c TwoFACode) String() string {
	return "[REDACTED]"
}

// Challenge is one live 2FA artifact for an identity. At most one exists per
// email; issuing a new one supersedes it.
type Challenge struct {
	Email     Email
	AttemptID AttemptID
	Code      TwoFACode
	ExpiresAt time.Time
	Attempts  int
}
