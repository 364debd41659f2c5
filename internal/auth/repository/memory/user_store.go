// Package memory provides dependency-free store implementations backed by
// RWMutex-guarded maps. They are the default backends for local runs and the
// reference implementations for store-contract tests; the redis and postgres
// packages are the production counterparts.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/EleisonC/Auth-Service/internal/auth/domain"
	"github.com/EleisonC/Auth-Service/internal/auth/password"
	autherror "github.com/EleisonC/Auth-Service/internal/errors"
)

// UserStore keeps user records in process memory, keyed by normalized email.
type UserStore struct {
	mu     sync.RWMutex
	users  map[domain.Email]domain.User
	hasher *password.Hasher
}

func NewUserStore(hasher *password.Hasher) *UserStore {
	return &UserStore{
		users:  make(map[domain.Email]domain.User),
		hasher: hasher,
	}
}

// Add hashes the password and persists a new record. Creation is first-writer
// wins: a duplicate email fails and leaves the existing record untouched.
func (s *UserStore) Add(ctx context.Context, email domain.Email, pw domain.Password, requires2FA bool) error {
	// Hash outside the lock; argon2 work must not serialize reads.
	hash, err := s.hasher.Hash(ctx, pw.Reveal())
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; exists {
		return autherror.ErrUserAlreadyExists
	}

	s.users[email] = domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Requires2FA:  requires2FA,
		CreatedAt:    time.Now(),
	}

	return nil
}

func (s *UserStore) Get(ctx context.Context, email domain.Email) (*domain.User, error) {
	s.mu.RLock()
	user, exists := s.users[email]
	s.mu.RUnlock()

	if !exists {
		return nil, autherror.ErrUserNotFound
	}

	return &user, nil
}

// Validate compares the candidate secret against the stored hash. The raw
// secret and the stored hash never leave this method.
func (s *UserStore) Validate(ctx context.Context, email domain.Email, pw domain.Password) error {
	s.mu.RLock()
	user, exists := s.users[email]
	s.mu.RUnlock()

	if !exists {
		return autherror.ErrUserNotFound
	}

	ok, err := s.hasher.Verify(ctx, pw.Reveal(), user.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return autherror.ErrInvalidCredentials
	}

	return nil
}
