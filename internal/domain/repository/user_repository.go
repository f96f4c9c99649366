// Package repository defines the interfaces for the persistence layer.
// Implementations return errors from grainauth/internal/domain/errors so
// callers can match them with errors.Is.
package repository

import (
	"context"

	"grainauth/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) error

	// CountDependents returns how many subscriptions, payments and item links
	// reference the user.
	CountDependents(ctx context.Context, id int64) (int64, error)
}
