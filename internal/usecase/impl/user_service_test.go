package impl

import (
	"context"
	"testing"
	"time"

	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/domain/service"
	"grainauth/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (*userService, *serviceMocks) {
	m := newServiceMocks(t)

	srv := NewUserService(UserServiceParams{
		TxManager:    m.txManager,
		UserRepo:     m.userRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenService,
		Publisher:    m.publisher,
		Config:       newTestConfig(),
		Logger:       m.logger,
	})

	return srv.(*userService), m
}

func TestUserService_Register_Success(t *testing.T) {
	srv, m := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice",
		Password: "Password123!",
	}

	m.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	m.expectTx()
	m.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, domainerrors.ErrUserNotFound)
	m.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, domainerrors.ErrUserNotFound)
	m.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 7
		}).
		Return(nil)
	m.publisher.EXPECT().
		PublishUserCreated(mock.Anything, mock.MatchedBy(func(event *service.UserCreatedEvent) bool {
			return event.Message == service.UserCreatedMessage &&
				event.User.ID == 7 &&
				event.User.Username == "alice"
		})).
		Return(nil)

	user, err := srv.Register(ctx, input)
	srv.pending.Wait()

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.Equal(t, "Alice", user.FullName)
	assert.False(t, user.Disabled)
}

func TestUserService_Register_PublishFailureIsNotReturned(t *testing.T) {
	srv, m := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Username: "alice", Email: "alice@example.com", Password: "Password123!"}

	m.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	m.expectTx()
	m.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, domainerrors.ErrUserNotFound)
	m.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, domainerrors.ErrUserNotFound)
	m.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	m.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	m.publisher.EXPECT().PublishUserCreated(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	user, err := srv.Register(ctx, input)
	srv.pending.Wait()

	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestUserService_Register_AfterDrainSkipsPublish(t *testing.T) {
	srv, m := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Username: "alice", Email: "alice@example.com", Password: "Password123!"}

	m.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	m.expectTx()
	m.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, domainerrors.ErrUserNotFound)
	m.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, domainerrors.ErrUserNotFound)
	m.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	m.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	srv.drain()
	user, err := srv.Register(ctx, input)
	srv.pending.Wait()

	require.NoError(t, err)
	assert.NotNil(t, user)
	m.publisher.AssertNotCalled(t, "PublishUserCreated", mock.Anything, mock.Anything)
}

func TestUserService_DrainWaitsForInFlightPublish(t *testing.T) {
	srv, m := createTestUserService(t)
	release := make(chan struct{})
	published := make(chan struct{})

	m.publisher.EXPECT().
		PublishUserCreated(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.UserCreatedEvent) error {
			<-release
			close(published)

			return nil
		}).
		Once()

	srv.publishUserCreated(context.Background(), &entity.User{ID: 7, Username: "alice"})

	drained := make(chan struct{})
	go func() {
		srv.drain()
		close(drained)
	}()

	select {
	case <-drained:
		t.Fatal("drain returned before the publish finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-drained

	select {
	case <-published:
	default:
		t.Fatal("publish did not complete before drain returned")
	}
}

func TestUserService_Register_Conflicts(t *testing.T) {
	t.Run("username taken", func(t *testing.T) {
		srv, m := createTestUserService(t)
		ctx := context.Background()
		input := &usecase.RegisterUserInput{Username: "alice", Email: "new@example.com", Password: "Password123!"}

		m.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
		m.expectTx()
		m.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(activeUser(1), nil)

		_, err := srv.Register(ctx, input)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
	})

	t.Run("email taken", func(t *testing.T) {
		srv, m := createTestUserService(t)
		ctx := context.Background()
		input := &usecase.RegisterUserInput{Username: "bob", Email: "alice@example.com", Password: "Password123!"}

		m.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
		m.expectTx()
		m.userRepo.EXPECT().FindByUsername(ctx, "bob").Return(nil, domainerrors.ErrUserNotFound)
		m.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(activeUser(1), nil)

		_, err := srv.Register(ctx, input)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	})
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	srv, m := createTestUserService(t)
	input := &usecase.RegisterUserInput{Username: "alice", Email: "alice@example.com", Password: "weak"}

	m.hasher.EXPECT().ValidatePasswordStrength("weak").Return(domainerrors.ErrPasswordStrength)

	_, err := srv.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	srv, m := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Username: "alice", Email: "alice@example.com", Password: "Password123!"}

	m.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	m.expectTx()
	m.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, domainerrors.ErrUserNotFound)
	m.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, domainerrors.ErrUserNotFound)
	m.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	_, err := srv.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes scopes", func(t *testing.T) {
		srv, m := createTestUserService(t)
		user := activeUser(3)
		token := &entity.AccessToken{Token: "signed", TokenType: "bearer"}

		m.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
		m.hasher.EXPECT().Check("secret", "hashed").Return(true)
		m.tokenService.EXPECT().GenerateAccessToken(user, []string{"me", "items"}).Return(token, nil)

		out, err := srv.Login(ctx, &usecase.LoginInput{
			Username: "alice",
			Password: "secret",
			Scopes:   []string{"me items", "me", " "},
		})

		require.NoError(t, err)
		assert.Equal(t, token, out.AccessToken)
		assert.Equal(t, user, out.User)
	})

	t.Run("disabled user still logs in", func(t *testing.T) {
		srv, m := createTestUserService(t)
		user := activeUser(3)
		user.Disabled = true
		token := &entity.AccessToken{Token: "signed", TokenType: "bearer"}

		m.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
		m.hasher.EXPECT().Check("secret", "hashed").Return(true)
		m.tokenService.EXPECT().GenerateAccessToken(user, []string{}).Return(token, nil)

		out, err := srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, token, out.AccessToken)
	})

	t.Run("unknown user", func(t *testing.T) {
		srv, m := createTestUserService(t)

		m.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, domainerrors.ErrUserNotFound)

		_, err := srv.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "secret"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		srv, m := createTestUserService(t)

		m.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(activeUser(3), nil)
		m.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestUserService_GetActiveUser(t *testing.T) {
	ctx := context.Background()

	t.Run("active", func(t *testing.T) {
		srv, m := createTestUserService(t)
		m.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(activeUser(3), nil)

		user, err := srv.GetActiveUser(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, int64(3), user.ID)
	})

	t.Run("disabled", func(t *testing.T) {
		srv, m := createTestUserService(t)
		user := activeUser(3)
		user.Disabled = true
		m.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(user, nil)

		_, err := srv.GetActiveUser(ctx, 3)

		assert.True(t, errors.Is(err, domainerrors.ErrInactiveUser))
	})

	t.Run("missing", func(t *testing.T) {
		srv, m := createTestUserService(t)
		m.userRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, domainerrors.ErrUserNotFound)

		_, err := srv.GetActiveUser(ctx, 9)

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

func TestUserService_ListUsers_ClampsPaging(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "default page", limit: 0, offset: 0, wantLimit: 20, wantOffset: 0},
		{name: "max page", limit: 1000, offset: 5, wantLimit: maxPageSize, wantOffset: 5},
		{name: "negative offset", limit: 10, offset: -3, wantLimit: 10, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := createTestUserService(t)
			m.userRepo.EXPECT().List(ctx, tt.wantLimit, tt.wantOffset).Return([]*entity.User{activeUser(1)}, nil)

			users, err := srv.ListUsers(ctx, tt.limit, tt.offset)

			require.NoError(t, err)
			assert.Len(t, users, 1)
		})
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("other user is forbidden", func(t *testing.T) {
		srv, _ := createTestUserService(t)

		_, err := srv.UpdateUser(ctx, 1, 2, &usecase.UpdateUserInput{})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("updates email name and password", func(t *testing.T) {
		srv, m := createTestUserService(t)
		email := "new@example.com"
		name := "Alice Liddell"
		password := "NewPassword1!"

		m.expectTx()
		m.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(activeUser(3), nil)
		m.userRepo.EXPECT().FindByEmail(ctx, email).Return(nil, domainerrors.ErrUserNotFound)
		m.hasher.EXPECT().ValidatePasswordStrength(password).Return(nil)
		m.hasher.EXPECT().Hash(password).Return("rehashed", nil)
		m.userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Email == email && u.FullName == name && u.PasswordHash == "rehashed"
			})).
			Return(nil)

		user, err := srv.UpdateUser(ctx, 3, 3, &usecase.UpdateUserInput{
			Email:    &email,
			FullName: &name,
			Password: &password,
		})

		require.NoError(t, err)
		assert.Equal(t, email, user.Email)
	})

	t.Run("email taken", func(t *testing.T) {
		srv, m := createTestUserService(t)
		email := "bob@example.com"

		m.expectTx()
		m.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(activeUser(3), nil)
		m.userRepo.EXPECT().FindByEmail(ctx, email).Return(activeUser(4), nil)

		_, err := srv.UpdateUser(ctx, 3, 3, &usecase.UpdateUserInput{Email: &email})

		assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv, m := createTestUserService(t)

		m.expectTx()
		m.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(activeUser(3), nil)
		m.userRepo.EXPECT().CountDependents(ctx, int64(3)).Return(int64(0), nil)
		m.userRepo.EXPECT().Delete(ctx, int64(3)).Return(nil)

		require.NoError(t, srv.DeleteUser(ctx, 3, 3))
	})

	t.Run("referenced user", func(t *testing.T) {
		srv, m := createTestUserService(t)

		m.expectTx()
		m.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(activeUser(3), nil)
		m.userRepo.EXPECT().CountDependents(ctx, int64(3)).Return(int64(2), nil)

		err := srv.DeleteUser(ctx, 3, 3)

		assert.True(t, errors.Is(err, domainerrors.ErrReferentialIntegrity))
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		srv, _ := createTestUserService(t)

		err := srv.DeleteUser(ctx, 3, 4)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}
