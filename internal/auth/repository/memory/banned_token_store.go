package memory

import (
	"context"
	"sync"
	"time"
)

// BannedTokenStore keeps revoked tokens until their recorded expiry. Because
// every entry's TTL matches the token's own residual lifetime, the set stays
// bounded by the number of logouts inside one token window.
type BannedTokenStore struct {
	mu     sync.RWMutex
	banned map[string]time.Time
	now    func() time.Time
}

func NewBannedTokenStore() *BannedTokenStore {
	return &BannedTokenStore{
		banned: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Ban records the token until ttl elapses. Re-banning is a no-op success; the
// longer of the two expiries wins so an entry can never shrink.
func (s *BannedTokenStore) Ban(ctx context.Context, token string, ttl time.Duration) error {
	expiry := s.now().Add(ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.banned[token]; ok && existing.After(expiry) {
		return nil
	}

	s.banned[token] = expiry

	return nil
}

func (s *BannedTokenStore) IsBanned(ctx context.Context, token string) (bool, error) {
	s.mu.RLock()
	expiry, exists := s.banned[token]
	s.mu.RUnlock()

	if !exists {
		return false, nil
	}

	if s.now().After(expiry) {
		s.mu.Lock()
		if current, ok := s.banned[token]; ok && !current.After(s.now()) {
			delete(s.banned, token)
		}
		s.mu.Unlock()

		return false, nil
	}

	return true, nil
}
