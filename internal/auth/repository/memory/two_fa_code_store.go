package memory

import (
	"context"
	"sync"
	"time"

	"github.com/EleisonC/Auth-Service/internal/auth/domain"
	autherror "github.com/EleisonC/Auth-Service/internal/errors"
)

const (
	// DefaultChallengeTTL bounds how long an issued 2FA code stays usable.
	DefaultChallengeTTL = 10 * time.Minute
	// MaxChallengeAttempts caps failed code submissions per challenge.
	MaxChallengeAttempts = 5
)

// TwoFACodeStore keeps at most one live challenge per email. Expired entries
// are reaped lazily on access.
type TwoFACodeStore struct {
	mu         sync.RWMutex
	challenges map[domain.Email]domain.Challenge
	ttl        time.Duration
	now        func() time.Time
}

func NewTwoFACodeStore(ttl time.Duration) *TwoFACodeStore {
	if ttl <= 0 {
		ttl = DefaultChallengeTTL
	}

	return &TwoFACodeStore{
		challenges: make(map[domain.Email]domain.Challenge),
		ttl:        ttl,
		now:        time.Now,
	}
}

// Add stores a fresh challenge, overwriting any live one for the same email.
// The previous challenge becomes unusable even if its TTL has not elapsed.
func (s *TwoFACodeStore) Add(ctx context.Context, email domain.Email, attemptID domain.AttemptID, code domain.TwoFACode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.challenges[email] = domain.Challenge{
		Email:     email,
		AttemptID: attemptID,
		Code:      code,
		ExpiresAt: s.now().Add(s.ttl),
	}

	return nil
}

func (s *TwoFACodeStore) Get(ctx context.Context, email domain.Email) (*domain.Challenge, error) {
	s.mu.RLock()
	challenge, exists := s.challenges[email]
	s.mu.RUnlock()

	if !exists {
		return nil, autherror.ErrChallengeNotFound
	}

	if s.now().After(challenge.ExpiresAt) {
		s.mu.Lock()
		// Re-check under the write lock: a newer challenge may have landed.
		if current, ok := s.challenges[email]; ok && current.AttemptID == challenge.AttemptID {
			delete(s.challenges, email)
		}
		s.mu.Unlock()

		return nil, autherror.ErrChallengeExpired
	}

	return &challenge, nil
}

func (s *TwoFACodeStore) Remove(ctx context.Context, email domain.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.challenges[email]; !exists {
		return autherror.ErrChallengeNotFound
	}

	delete(s.challenges, email)

	return nil
}

// RecordFailure bumps the attempt counter and invalidates the challenge once
// MaxChallengeAttempts failures accumulate.
func (s *TwoFACodeStore) RecordFailure(ctx context.Context, email domain.Email) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, exists := s.challenges[email]
	if !exists {
		return false, autherror.ErrChallengeNotFound
	}

	if s.now().After(challenge.ExpiresAt) {
		delete(s.challenges, email)

		return false, autherror.ErrChallengeExpired
	}

	challenge.Attempts++
	if challenge.Attempts >= MaxChallengeAttempts {
		delete(s.challenges, email)

		return true, nil
	}

	s.challenges[email] = challenge

	return false, nil
}
