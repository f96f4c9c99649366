package impl

import (
	"context"
	"log/slog"

	deliverycontext "grainauth/internal/delivery/context"
	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/domain/repository"
	"grainauth/internal/domain/service"
	"grainauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	tokenService service.TokenService
	denylist     service.TokenDenylist
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TokenService service.TokenService
	Denylist     service.TokenDenylist
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		tokenService: params.TokenService,
		denylist:     params.Denylist,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate accepts a token only while it verifies, has not been revoked
// and still names an existing user.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.TokenClaims, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	revoked, err := srv.denylist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check token revocation")
	}
	if revoked {
		return nil, domainerrors.ErrTokenRevoked
	}

	if _, err := srv.userRepo.FindByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			srv.log(ctx).Warn("Token for unknown user", slog.Int64("user_id", claims.UserID))

			return nil, domainerrors.ErrUnauthorized.WithDetails("user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token user")
	}

	return claims, nil
}

// Logout revokes the token until its own expiry.
func (srv *sessionService) Logout(ctx context.Context, claims *entity.TokenClaims) error {
	if err := srv.denylist.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		srv.log(ctx).Error("Failed to revoke token", slog.Int64("user_id", claims.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke token")
	}

	srv.log(ctx).Info("User logged out", slog.Int64("user_id", claims.UserID))

	return nil
}
