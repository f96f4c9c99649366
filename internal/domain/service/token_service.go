package service

import (
	"context"
	"time"

	"grainauth/internal/domain/entity"
)

// TokenService issues and verifies bearer access tokens.
type TokenService interface {
	// GenerateAccessToken signs a token for the user carrying the granted scopes.
	GenerateAccessToken(user *entity.User, scopes []string) (*entity.AccessToken, error)

	// ValidateToken verifies the signature and expiry of a token string.
	ValidateToken(tokenString string) (*entity.TokenClaims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}

// TokenDenylist remembers revoked tokens until they would have expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
