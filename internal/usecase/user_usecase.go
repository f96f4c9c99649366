// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"grainauth/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string
	Email    string
	FullName string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
	Scopes   []string
}

// UpdateUserInput carries the mutable user fields. Nil fields are left unchanged.
type UpdateUserInput struct {
	Email    *string
	FullName *string
	Password *string
	Disabled *bool
}

// --- Output DTOs ---

// LoginOutput returns the issued token and the authenticated user.
type LoginOutput struct {
	AccessToken *entity.AccessToken
	User        *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	// GetActiveUser loads the caller and rejects disabled accounts.
	GetActiveUser(ctx context.Context, id int64) (*entity.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, error)
	// UpdateUser and DeleteUser only act on the caller's own account.
	UpdateUser(ctx context.Context, actorID, id int64, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, actorID, id int64) error
}
