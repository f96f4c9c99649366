package usecase

import (
	"context"
	"time"

	"grainauth/internal/domain/entity"
)

// SubscribeInput starts a subscription for the caller, beginning now.
type SubscribeInput struct {
	TarifID int64
}

// UpdateSubscriptionInput changes status or end date. Nil fields are left unchanged.
type UpdateSubscriptionInput struct {
	Status  *entity.SubscriptionStatus
	EndDate *time.Time
}

// SubscriptionUsecase manages a user's subscriptions. Every operation is
// scoped to the owning user.
type SubscriptionUsecase interface {
	Subscribe(ctx context.Context, userID int64, input *SubscribeInput) (*entity.Subscription, error)
	GetSubscription(ctx context.Context, userID, id int64) (*entity.Subscription, error)
	ListSubscriptions(ctx context.Context, userID int64) ([]*entity.Subscription, error)
	UpdateSubscription(ctx context.Context, userID, id int64, input *UpdateSubscriptionInput) (*entity.Subscription, error)
	CancelSubscription(ctx context.Context, userID, id int64) (*entity.Subscription, error)
}
