package domain

import (
	"strings"

	autherror "github.com/EleisonC/Auth-Service/internal/errors"
)

// Email is a validated, normalized identity key. Construct it with ParseEmail;
// the zero value is not a valid address.
type Email struct {
	value string
}

// ParseEmail validates and normalizes a raw address. Addresses are trimmed and
// lowercased once here so every store keys on the same representation.
func ParseEmail(raw string) (Email, error) {
	addr := strings.ToLower(strings.TrimSpace(raw))

	at := strings.Index(addr, "@")
	if at <= 0 || at == len(addr)-1 {
		return Email{}, autherror.ErrInvalidInput
	}

	return Email{value: addr}, nil
}

func (e Email) String() string {
	return e.value
}

// IsZero reports whether the email was never parsed.
func (e Email) IsZero() bool {
	return e.value == ""
}
