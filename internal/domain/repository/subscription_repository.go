package repository

import (
	"context"

	"grainauth/internal/domain/entity"
)

// SubscriptionRepository persists the subscription ledger.
type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	FindByID(ctx context.Context, id int64) (*entity.Subscription, error)
	FindByUser(ctx context.Context, userID int64) ([]*entity.Subscription, error)

	// Update writes status and end_date; the user, tarif and start date never change.
	Update(ctx context.Context, subscription *entity.Subscription) error
}
