package repository

import (
	"context"

	"grainauth/internal/domain/entity"
)

// ItemRepository persists items. Every write derives the item's location from
// its latitude and longitude before the row is stored.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	FindByID(ctx context.Context, id int64) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id int64) error
}

// ItemUserRepository persists the many-to-many link between users and items.
type ItemUserRepository interface {
	// Add links an item to a user. Repeated links for the same pair are kept.
	Add(ctx context.Context, link *entity.ItemUser) error

	// Remove deletes every link between the user and the item and reports how many were removed.
	Remove(ctx context.Context, userID, itemID int64) (int64, error)

	// ListItemIDs returns the ids of items linked to the user, oldest link first.
	ListItemIDs(ctx context.Context, userID int64) ([]int64, error)

	// IsLinked reports whether at least one link between the user and the item exists.
	IsLinked(ctx context.Context, userID, itemID int64) (bool, error)

	// DeleteByItem removes every link to the item regardless of user.
	DeleteByItem(ctx context.Context, itemID int64) error
}
