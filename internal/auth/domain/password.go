package domain

import (
	autherror "github.com/EleisonC/Auth-Service/internal/errors"
)

const minPasswordLength = 8

// Password wraps a raw secret so it cannot leak through formatting. Its
// String method is redacted by construction; hashing code reads the secret
// through Reveal and must never store or log it.
type Password struct {
	value string
}

// ParsePassword validates the shape of a candidate secret.
func ParsePassword(raw string) (Password, error) {
	if len(raw) < minPasswordLength {
		return Password{}, autherror.ErrInvalidInput
	}

	return Password{value: raw}, nil
}

// Reveal returns the raw secret for hashing or comparison.
func (p Password) Reveal() string {
	return p.value
}

func (p Password) String() string {
	return "[REDACTED]"
}

// GoString keeps %#v output redacted as well.
func (p Password) GoString() string {
	return "domain.Password{value:\"[REDACTED]\"}"
}
