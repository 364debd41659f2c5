package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	autherror "github.com/EleisonC/Auth-Service/internal/errors"
)

const bannedTokenKeyPrefix = "banned_token:"

// BannedTokenStore records revoked tokens under banned_token:<token> with a
// TTL equal to the token's residual lifetime. Keys are literal token strings;
// the store never parses what it bans.
type BannedTokenStore struct {
	client redis.UniversalClient
}

func NewBannedTokenStore(client redis.UniversalClient) *BannedTokenStore {
	return &BannedTokenStore{client: client}
}

func (s *BannedTokenStore) key(token string) string {
	return bannedTokenKeyPrefix + token
}

// Ban is idempotent; re-banning simply refreshes the entry.
func (s *BannedTokenStore) Ban(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// The token is already past its own expiry; nothing to record.
		return nil
	}

	if err := s.client.Set(ctx, s.key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	return nil
}

func (s *BannedTokenStore) IsBanned(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	return n > 0, nil
}
