// Package redis provides store implementations backed by a shared Redis
// instance so revocations and 2FA challenges are visible across replicas.
// Entry lifetimes ride on Redis key TTLs instead of in-process timers.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/EleisonC/Auth-Service/internal/auth/domain"
	autherror "github.com/EleisonC/Auth-Service/internal/errors"
)

const (
	twoFACodeKeyPrefix = "two_fa_code:"

	// DefaultChallengeTTL matches the in-memory store.
	DefaultChallengeTTL = 10 * time.Minute
	// MaxChallengeAttempts caps failed code submissions per challenge.
	MaxChallengeAttempts = 5
)

// challengeRecord is the stored JSON shape. The attempt ID and code travel
// together so a verify call compares both against one consistent snapshot.
type challengeRecord struct {
	AttemptID string `json:"login_attempt_id"`
	Code      string `json:"code"`
	Attempts  int    `json:"attempts"`
}

// TwoFACodeStore keeps one live challenge per email under two_fa_code:<email>.
type TwoFACodeStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewTwoFACodeStore(client redis.UniversalClient, ttl time.Duration) *TwoFACodeStore {
	if ttl <= 0 {
		ttl = DefaultChallengeTTL
	}

	return &TwoFACodeStore{client: client, ttl: ttl}
}

func (s *TwoFACodeStore) key(email domain.Email) string {
	return twoFACodeKeyPrefix + email.String()
}

// Add stores a fresh challenge. SET replaces any live entry for the email, so
// the previous challenge dies with it.
func (s *TwoFACodeStore) Add(ctx context.Context, email domain.Email, attemptID domain.AttemptID, code domain.TwoFACode) error {
	record := challengeRecord{
		AttemptID: attemptID.String(),
		Code:      code.Value(),
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	if err := s.client.Set(ctx, s.key(email), encoded, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	return nil
}

func (s *TwoFACodeStore) Get(ctx context.Context, email domain.Email) (*domain.Challenge, error) {
	data, err := s.client.Get(ctx, s.key(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, autherror.ErrChallengeNotFound
		}

		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	return s.decode(ctx, email, data)
}

func (s *TwoFACodeStore) Remove(ctx context.Context, email domain.Email) error {
	n, err := s.client.Del(ctx, s.key(email)).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}
	if n == 0 {
		return autherror.ErrChallengeNotFound
	}

	return nil
}

// RecordFailure bumps the attempt counter inside a WATCH transaction so
// concurrent failed submissions cannot lose increments.
func (s *TwoFACodeStore) RecordFailure(ctx context.Context, email domain.Email) (bool, error) {
	const maxRetries = 4
	key := s.key(email)

	for i := 0; i < maxRetries; i++ {
		var exceeded bool

		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, key).Bytes()
			if err != nil {
				return err
			}

			var record challengeRecord
			if err := json.Unmarshal(data, &record); err != nil {
				return err
			}

			record.Attempts++
			if record.Attempts >= MaxChallengeAttempts {
				exceeded = true
				_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
					pipe.Del(ctx, key)

					return nil
				})

				return err
			}

			ttl, err := tx.TTL(ctx, key).Result()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				return redis.Nil
			}

			updated, err := json.Marshal(record)
			if err != nil {
				return err
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, updated, ttl)

				return nil
			})

			return err
		}, key)

		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return false, autherror.ErrChallengeNotFound
			}

			return false, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
		}

		return exceeded, nil
	}

	return false, fmt.Errorf("%w: transaction retries exhausted", autherror.ErrStoreUnavailable)
}

func (s *TwoFACodeStore) decode(ctx context.Context, email domain.Email, data []byte) (*domain.Challenge, error) {
	var record challengeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	attemptID, err := domain.ParseAttemptID(record.AttemptID)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt attempt id", autherror.ErrStoreUnavailable)
	}

	code, err := domain.ParseTwoFACode(record.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt code", autherror.ErrStoreUnavailable)
	}

	ttl, err := s.client.TTL(ctx, s.key(email)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	return &domain.Challenge{
		Email:     email,
		AttemptID: attemptID,
		Code:      code,
		ExpiresAt: time.Now().Add(ttl),
		Attempts:  record.Attempts,
	}, nil
}
