// Package cache provides the Redis-backed access token denylist.
package cache

import (
	"context"
	"log/slog"
	"time"

	"grainauth/config"
	"grainauth/internal/domain/lifecycle"
	"grainauth/internal/domain/service"
	"grainauth/internal/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

// Params defines the dependencies for the token denylist
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewTokenDenylist returns a Redis denylist, or a no-op one when Redis is not configured.
func NewTokenDenylist(params Params) service.TokenDenylist {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Warn("Redis not configured, logout will not revoke tokens")

		return noopDenylist{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis token denylist connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisDenylist(client, cfg.KeyPrefix)
}

// RedisDenylist stores revoked token ids as keys expiring with the token.
type RedisDenylist struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisDenylist wraps an existing client.
func NewRedisDenylist(client *redis.Client, prefix string) *RedisDenylist {
	return &RedisDenylist{client: client, prefix: prefix, now: time.Now}
}

// Revoke marks the token as revoked until the given time. Tokens already past
// their expiry need no entry.
func (d *RedisDenylist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if tokenID == "" {
		return errors.New("token id is required")
	}
	ttl := until.Sub(d.now())
	if ttl <= 0 {
		return nil
	}

	if err := d.client.Set(ctx, d.prefix+tokenID, "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}

	return nil
}

// IsRevoked reports whether the token id is on the denylist.
func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	n, err := d.client.Exists(ctx, d.prefix+tokenID).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis exists")
	}

	return n > 0, nil
}

type noopDenylist struct{}

func (noopDenylist) Revoke(context.Context, string, time.Time) error { return nil }

func (noopDenylist) IsRevoked(context.Context, string) (bool, error) { return false, nil }
