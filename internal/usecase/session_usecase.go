package usecase

import (
	"context"

	"grainauth/internal/domain/entity"
)

// SessionUsecase validates bearer tokens and revokes them on logout.
type SessionUsecase interface {
	// Authenticate verifies the token and checks it has not been revoked.
	Authenticate(ctx context.Context, token string) (*entity.TokenClaims, error)
	// Logout revokes the token until it expires.
	Logout(ctx context.Context, claims *entity.TokenClaims) error
}
