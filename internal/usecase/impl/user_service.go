// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"grainauth/config"
	deliverycontext "grainauth/internal/delivery/context"
	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/domain/lifecycle"
	"grainauth/internal/domain/repository"
	"grainauth/internal/domain/service"
	"grainauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxPageSize = 200

// userService implements the UserUsecase interface.
type userService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	publisher       service.EventPublisher
	defaultPageSize int
	logger          *slog.Logger

	// pending tracks user-created events still being published. Once
	// draining is set under mu no new publish is started.
	mu       sync.Mutex
	draining bool
	pending  sync.WaitGroup
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Lc           fx.Lifecycle `optional:"true"`
	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	srv := &userService{
		txManager:       params.TxManager,
		userRepo:        params.UserRepo,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		publisher:       params.Publisher,
		defaultPageSize: params.Config.HTTP.DefaultPageSize,
		logger:          params.Logger,
	}
	if srv.defaultPageSize <= 0 {
		srv.defaultPageSize = 50
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				srv.drain()

				return nil
			},
		})
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and announces it once the row is committed.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	var created *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := ensureAbsent(userRepo.FindByUsername(ctx, input.Username)); err != nil {
			if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
				return domainerrors.ErrUsernameTaken.WithDetails(input.Username)
			}

			return errors.Wrap(err, "failed to check username")
		}
		if err := ensureAbsent(userRepo.FindByEmail(ctx, input.Email)); err != nil {
			if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
				return domainerrors.ErrEmailTaken.WithDetails(input.Email)
			}

			return errors.Wrap(err, "failed to check email")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WithCause(err)
		}

		user := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			FullName:     input.FullName,
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}
		created = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.publishUserCreated(ctx, created)
	srv.log(ctx).Info("User registered", slog.Int64("user_id", created.ID))

	return created, nil
}

// ensureAbsent turns a successful lookup into ErrUserAlreadyExists and a
// not-found into nil.
func ensureAbsent(_ *entity.User, err error) error {
	switch {
	case err == nil:
		return domainerrors.ErrUserAlreadyExists
	case errors.Is(err, domainerrors.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

// drain stops accepting new events and waits for in-flight publishes.
func (srv *userService) drain() {
	srv.mu.Lock()
	srv.draining = true
	srv.mu.Unlock()

	srv.pending.Wait()
}

// publishUserCreated sends the event in the background. Failures are logged
// and never reach the caller.
func (srv *userService) publishUserCreated(ctx context.Context, user *entity.User) {
	event := &service.UserCreatedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Message:   service.UserCreatedMessage,
		User: service.EventUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			FullName: user.FullName,
			Disabled: user.Disabled,
		},
	}
	logger := srv.log(ctx)
	publishCtx := context.WithoutCancel(ctx)

	srv.mu.Lock()
	if srv.draining {
		srv.mu.Unlock()
		logger.Warn("Shutting down, user created event dropped", slog.Int64("user_id", user.ID))

		return
	}
	srv.pending.Add(1)
	srv.mu.Unlock()

	go func() {
		defer srv.pending.Done()

		ctx, cancel := context.WithTimeout(publishCtx, lifecycle.DefaultTimeout)
		defer cancel()

		if err := srv.publisher.PublishUserCreated(ctx, event); err != nil {
			logger.Error("Failed to publish user created event", slog.Int64("user_id", user.ID), slog.Any("error", err))
		}
	}()
}

// Login checks the credentials and issues a token carrying the requested scopes.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			srv.log(ctx).Warn("Login for unknown user", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Int64("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(user, normalizeScopes(input.Scopes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Login successful", slog.Int64("user_id", user.ID))

	return &usecase.LoginOutput{AccessToken: token, User: user}, nil
}

// normalizeScopes drops blanks and duplicates while keeping the caller's order.
func normalizeScopes(scopes []string) []string {
	out := make([]string, 0, len(scopes))
	seen := make(map[string]struct{}, len(scopes))
	for _, scope := range scopes {
		for _, s := range strings.Fields(scope) {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}

	return out
}

func (srv *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

func (srv *userService) GetActiveUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsActive() {
		return nil, domainerrors.ErrInactiveUser
	}

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	if limit <= 0 {
		limit = srv.defaultPageSize
	}
	limit = min(limit, maxPageSize)
	offset = max(offset, 0)

	users, err := srv.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) UpdateUser(ctx context.Context, actorID, id int64, input *usecase.UpdateUserInput) (*entity.User, error) {
	if actorID != id {
		return nil, domainerrors.ErrForbidden.WithDetails("you can only update your own user")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if input.Email != nil && *input.Email != user.Email {
			if err := ensureAbsent(userRepo.FindByEmail(ctx, *input.Email)); err != nil {
				if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
					return domainerrors.ErrEmailTaken.WithDetails(*input.Email)
				}

				return errors.Wrap(err, "failed to check email")
			}
			user.Email = *input.Email
		}
		if input.FullName != nil {
			user.FullName = *input.FullName
		}
		if input.Disabled != nil {
			user.Disabled = *input.Disabled
		}
		if input.Password != nil {
			if err := srv.hasher.ValidatePasswordStrength(*input.Password); err != nil {
				return err
			}
			hashed, err := srv.hasher.Hash(*input.Password)
			if err != nil {
				return domainerrors.ErrPasswordHashFailed.WithCause(err)
			}
			user.PasswordHash = hashed
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.Int64("user_id", id))

	return updated, nil
}

// DeleteUser refuses while subscriptions, payments or item links still reference the user.
func (srv *userService) DeleteUser(ctx context.Context, actorID, id int64) error {
	if actorID != id {
		return domainerrors.ErrForbidden.WithDetails("you can only delete your own user")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, err := userRepo.FindByID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		dependents, err := userRepo.CountDependents(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count user dependents")
		}
		if dependents > 0 {
			return domainerrors.ErrReferentialIntegrity.WithDetails("user is still referenced by subscriptions, payments or items")
		}

		return errors.Wrap(userRepo.Delete(ctx, id), "failed to delete user")
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Int64("user_id", id))

	return nil
}
