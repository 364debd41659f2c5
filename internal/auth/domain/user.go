package domain

import "time"

// User is the durable record owned by the user store. PasswordHash holds a
// PHC-encoded argon2id hash, never a raw secret.
type User struct {
	ID           string
	Email        Email
	PasswordHash string
	Requires2FA  bool
	CreatedAt    time.Time
}
