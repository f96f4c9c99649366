package usecase

import (
	"context"

	"grainauth/internal/domain/entity"
)

// ItemInput carries an item's title and coordinates. Both coordinates are
// required; a nil value fails validation.
type ItemInput struct {
	Title     string
	Latitude  *float64
	Longitude *float64
}

// ItemUsecase manages items and their links to users.
type ItemUsecase interface {
	// CreateItem stores the item and links it to the user in one transaction.
	CreateItem(ctx context.Context, userID int64, input *ItemInput) (*entity.Item, error)
	GetItem(ctx context.Context, id int64) (*entity.Item, error)
	// UpdateItem is allowed for users linked to the item.
	UpdateItem(ctx context.Context, userID, id int64, input *ItemInput) (*entity.Item, error)
	// LinkItem adds another link between the user and an existing item.
	LinkItem(ctx context.Context, userID, id int64) error
	ListUserItemIDs(ctx context.Context, userID int64) ([]int64, error)
	// RemoveUserItem drops the user's links and deletes the item.
	RemoveUserItem(ctx context.Context, userID, id int64) error
}
