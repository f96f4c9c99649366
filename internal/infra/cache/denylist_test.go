package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"grainauth/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisDenylist) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisDenylist(client, "test:denylist:")
}

func TestRedisDenylist_RevokeAndCheck(t *testing.T) {
	mr, denylist := setupMiniRedis(t)
	ctx := context.Background()

	revoked, err := denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, denylist.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.True(t, mr.Exists("test:denylist:jti-1"))

	ttl := mr.TTL("test:denylist:jti-1")
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

	mr.FastForward(2 * time.Hour)
	revoked, err = denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisDenylist_ExpiredTokenIsNotStored(t *testing.T) {
	mr, denylist := setupMiniRedis(t)

	require.NoError(t, denylist.Revoke(context.Background(), "old", time.Now().Add(-time.Minute)))
	assert.False(t, mr.Exists("test:denylist:old"))
}

func TestRedisDenylist_EmptyTokenID(t *testing.T) {
	_, denylist := setupMiniRedis(t)

	assert.Error(t, denylist.Revoke(context.Background(), "", time.Now().Add(time.Hour)))
	revoked, err := denylist.IsRevoked(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisDenylist_ServerDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })
	denylist := NewRedisDenylist(client, "x:")

	_, err := denylist.IsRevoked(context.Background(), "jti")
	assert.Error(t, err)
}

func TestNewTokenDenylist(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("noop without redis", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		denylist := NewTokenDenylist(Params{Lifecycle: lc, Config: &config.Config{}, Logger: logger})
		assert.IsType(t, noopDenylist{}, denylist)

		require.NoError(t, denylist.Revoke(context.Background(), "jti", time.Now().Add(time.Hour)))
		revoked, err := denylist.IsRevoked(context.Background(), "jti")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("redis with lifecycle", func(t *testing.T) {
		mr := miniredis.RunT(t)
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr(), KeyPrefix: "p:"}}

		denylist := NewTokenDenylist(Params{Lifecycle: lc, Config: cfg, Logger: logger})
		lc.RequireStart()
		defer lc.RequireStop()

		require.NoError(t, denylist.Revoke(context.Background(), "jti", time.Now().Add(time.Hour)))
		assert.True(t, mr.Exists("p:jti"))
	})
}
