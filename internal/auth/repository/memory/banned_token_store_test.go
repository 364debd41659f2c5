package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBannedTokenStore_BanAndCheck(t *testing.T) {
	store := NewBannedTokenStore()
	ctx := context.Background()

	banned, err := store.IsBanned(ctx, "some.jwt.token")
	require.NoError(t, err)
	assert.False(t, banned)

	require.NoError(t, store.Ban(ctx, "some.jwt.token", 10*time.Minute))

	banned, err = store.IsBanned(ctx, "some.jwt.token")
	require.NoError(t, err)
	assert.True(t, banned)
}

func TestBannedTokenStore_BanIdempotent(t *testing.T) {
	store := NewBannedTokenStore()
	ctx := context.Background()

	require.NoError(t, store.Ban(ctx, "some.jwt.token", 10*time.Minute))
	require.NoError(t, store.Ban(ctx, "some.jwt.token", 10*time.Minute))

	banned, err := store.IsBanned(ctx, "some.jwt.token")
	require.NoError(t, err)
	assert.True(t, banned)
}

func TestBannedTokenStore_ReBanNeverShortensEntry(t *testing.T) {
	store := NewBannedTokenStore()
	ctx := context.Background()

	require.NoError(t, store.Ban(ctx, "some.jwt.token", 10*time.Minute))
	require.NoError(t, store.Ban(ctx, "some.jwt.token", time.Second))

	now := time.Now()
	store.now = func() time.Time { return now.Add(time.Minute) }

	banned, err := store.IsBanned(ctx, "some.jwt.token")
	require.NoError(t, err)
	assert.True(t, banned)
}

func TestBannedTokenStore_EntryExpires(t *testing.T) {
	store := NewBannedTokenStore()
	ctx := context.Background()

	require.NoError(t, store.Ban(ctx, "some.jwt.token", 10*time.Minute))

	now := time.Now()
	store.now = func() time.Time { return now.Add(11 * time.Minute) }

	banned, err := store.IsBanned(ctx, "some.jwt.token")
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestBannedTokenStore_MalformedTokenStillBannable(t *testing.T) {
	store := NewBannedTokenStore()
	ctx := context.Background()

	// The store never parses tokens; any literal value can be banned.
	require.NoError(t, store.Ban(ctx, "not-a-jwt-at-all", time.Minute))

	banned, err := store.IsBanned(ctx, "not-a-jwt-at-all")
	require.NoError(t, err)
	assert.True(t, banned)
}
