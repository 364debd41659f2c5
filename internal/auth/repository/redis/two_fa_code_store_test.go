package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EleisonC/Auth-Service/internal/auth/domain"
	redisstore "github.com/EleisonC/Auth-Service/internal/auth/repository/redis"
	autherror "github.com/EleisonC/Auth-Service/internal/errors"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func mustEmail(t *testing.T, raw string) domain.Email {
	t.Helper()
	email, err := domain.ParseEmail(raw)
	require.NoError(t, err)

	return email
}

func newChallenge(t *testing.T) (domain.AttemptID, domain.TwoFACode) {
	t.Helper()
	code, err := domain.NewTwoFACode()
	require.NoError(t, err)

	return domain.NewAttemptID(), code
}

func TestTwoFACodeStore_AddAndGet(t *testing.T) {
	mr, client := newTestClient(t)
	store := redisstore.NewTwoFACodeStore(client, redisstore.DefaultChallengeTTL)
	ctx := context.Background()
	email := mustEmail(t, "user.test@mail.com")
	attemptID, code := newChallenge(t)

	require.NoError(t, store.Add(ctx, email, attemptID, code))

	// Entry carries the challenge TTL.
	ttl := mr.TTL("two_fa_code:" + email.String())
	assert.Equal(t, redisstore.DefaultChallengeTTL, ttl)

	challenge, err := store.Get(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, attemptID, challenge.AttemptID)
	assert.Equal(t, code, challenge.Code)
}

func TestTwoFACodeStore_GetNotFound(t *testing.T) {
	_, client := newTestClient(t)
	store := redisstore.NewTwoFACodeStore(client, redisstore.DefaultChallengeTTL)

	_, err := store.Get(context.Background(), mustEmail(t, "absent@mail.com"))
	assert.ErrorIs(t, err, autherror.ErrChallengeNotFound)
}

func TestTwoFACodeStore_AddOverwritesPrevious(t *testing.T) {
	_, client := newTestClient(t)
	store := redisstore.NewTwoFACodeStore(client, redisstore.DefaultChallengeTTL)
	ctx := context.Background()
	email := mustEmail(t, "user.test@mail.com")

	oldAttemptID, oldCode := newChallenge(t)
	require.NoError(t, store.Add(ctx, email, oldAttemptID, oldCode))

	newAttemptID, newCode := newChallenge(t)
	require.NoError(t, store.Add(ctx, email, newAttemptID, newCode))

	challenge, err := store.Get(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, newAttemptID, challenge.AttemptID)
	assert.Equal(t, newCode.Value(), challenge.Code.Value())
}

func TestTwoFACodeStore_ExpiresWithKey(t *testing.T) {
	mr, client := newTestClient(t)
	store := redisstore.NewTwoFACodeStore(client, redisstore.DefaultChallengeTTL)
	ctx := context.Background()
	email := mustEmail(t, "user.test@mail.com")
	attemptID, code := newChallenge(t)

	require.NoError(t, store.Add(ctx, email, attemptID, code))

	mr.FastForward(redisstore.DefaultChallengeTTL + time.Second)

	_, err := store.Get(ctx, email)
	assert.ErrorIs(t, err, autherror.ErrChallengeNotFound)
}

func TestTwoFACodeStore_RemoveConsumes(t *testing.T) {
	_, client := newTestClient(t)
	store := redisstore.NewTwoFACodeStore(client, redisstore.DefaultChallengeTTL)
	ctx := context.Background()
	email := mustEmail(t, "user.test@mail.com")
	attemptID, code := newChallenge(t)

	require.NoError(t, store.Add(ctx, email, attemptID, code))
	require.NoError(t, store.Remove(ctx, email))

	err := store.Remove(ctx, email)
	assert.ErrorIs(t, err, autherror.ErrChallengeNotFound)
}

func TestTwoFACodeStore_RecordFailure(t *testing.T) {
	_, client := newTestClient(t)
	store := redisstore.NewTwoFACodeStore(client, redisstore.DefaultChallengeTTL)
	ctx := context.Background()
	email := mustEmail(t, "user.test@mail.com")
	attemptID, code := newChallenge(t)

	require.NoError(t, store.Add(ctx, email, attemptID, code))

	for i := 0; i < redisstore.MaxChallengeAttempts-1; i++ {
		exceeded, err := store.RecordFailure(ctx, email)
		require.NoError(t, err)
		assert.False(t, exceeded)
	}

	exceeded, err := store.RecordFailure(ctx, email)
	require.NoError(t, err)
	assert.True(t, exceeded)

	_, err = store.Get(ctx, email)
	assert.ErrorIs(t, err, autherror.ErrChallengeNotFound)
}

func TestTwoFACodeStore_BackendDown(t *testing.T) {
	mr, client := newTestClient(t)
	store := redisstore.NewTwoFACodeStore(client, redisstore.DefaultChallengeTTL)
	ctx := context.Background()
	email := mustEmail(t, "user.test@mail.com")
	attemptID, code := newChallenge(t)

	mr.Close()

	err := store.Add(ctx, email, attemptID, code)
	assert.ErrorIs(t, err, autherror.ErrStoreUnavailable)

	_, err = store.Get(ctx, email)
	assert.ErrorIs(t, err, autherror.ErrStoreUnavailable)
}
