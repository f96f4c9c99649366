package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "grainauth/internal/delivery/context"
	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/domain/repository"
	"grainauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	txManager        repository.TransactionManager
	subscriptionRepo repository.SubscriptionRepository
	logger           *slog.Logger
	now              func() time.Time
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	SubscriptionRepo repository.SubscriptionRepository
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		txManager:        params.TxManager,
		subscriptionRepo: params.SubscriptionRepo,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// view reports the status callers see; an active subscription past its end is expired.
func (s *subscriptionService) view(sub *entity.Subscription) *entity.Subscription {
	sub.Status = sub.EffectiveStatus(s.now())

	return sub
}

// Subscribe opens a window starting now for an active user on an existing
// tarif. The end date follows the tarif's terms.
func (s *subscriptionService) Subscribe(ctx context.Context, userID int64, input *usecase.SubscribeInput) (*entity.Subscription, error) {
	var created *entity.Subscription
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		if !user.IsActive() {
			return domainerrors.ErrInactiveUser
		}

		tarif, err := repoFactory.NewTarifRepository().FindByID(ctx, input.TarifID)
		if err != nil {
			return errors.Wrap(err, "failed to find tarif")
		}

		start := s.now().UTC()
		sub := &entity.Subscription{
			UserID:    userID,
			TarifID:   tarif.ID,
			StartDate: start,
			EndDate:   entity.EndDateForTerms(tarif.Terms, start),
			Status:    entity.SubscriptionStatusActive,
		}
		if err := repoFactory.NewSubscriptionRepository().Create(ctx, sub); err != nil {
			return errors.Wrap(err, "failed to create subscription")
		}
		created = sub

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe")
	}

	s.log(ctx).Info("Subscription created",
		slog.Int64("subscription_id", created.ID),
		slog.Int64("user_id", userID),
		slog.Int64("tarif_id", created.TarifID),
	)

	return s.view(created), nil
}

// findOwned loads the subscription and checks it belongs to userID.
func findOwned(ctx context.Context, repo repository.SubscriptionRepository, userID, id int64) (*entity.Subscription, error) {
	sub, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscription")
	}
	if sub.UserID != userID {
		return nil, domainerrors.ErrForbidden.WithDetails("subscription belongs to another user")
	}

	return sub, nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, userID, id int64) (*entity.Subscription, error) {
	sub, err := findOwned(ctx, s.subscriptionRepo, userID, id)
	if err != nil {
		return nil, err
	}

	return s.view(sub), nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, userID int64) ([]*entity.Subscription, error) {
	subs, err := s.subscriptionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}
	for _, sub := range subs {
		s.view(sub)
	}

	return subs, nil
}

func (s *subscriptionService) UpdateSubscription(ctx context.Context, userID, id int64, input *usecase.UpdateSubscriptionInput) (*entity.Subscription, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of active, expired, cancelled")
	}

	var updated *entity.Subscription
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewSubscriptionRepository()

		sub, err := findOwned(ctx, repo, userID, id)
		if err != nil {
			return err
		}

		if input.Status != nil {
			if sub.Status == entity.SubscriptionStatusCancelled && *input.Status != entity.SubscriptionStatusCancelled {
				return domainerrors.ErrValidationFailed.WithDetails("a cancelled subscription cannot be reopened")
			}
			sub.Status = *input.Status
		}
		if input.EndDate != nil {
			end := input.EndDate.UTC()
			sub.EndDate = &end
		}
		if sub.EndDate != nil && sub.EndDate.Before(sub.StartDate) {
			return domainerrors.ErrValidationFailed.WithDetails("end_date must not be before start_date")
		}

		if err := repo.Update(ctx, sub); err != nil {
			return errors.Wrap(err, "failed to update subscription")
		}
		updated = sub

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update subscription")
	}

	return s.view(updated), nil
}

// CancelSubscription closes the window now. A cancelled subscription is returned unchanged.
func (s *subscriptionService) CancelSubscription(ctx context.Context, userID, id int64) (*entity.Subscription, error) {
	var cancelled *entity.Subscription
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewSubscriptionRepository()

		sub, err := findOwned(ctx, repo, userID, id)
		if err != nil {
			return err
		}
		cancelled = sub
		if sub.Status == entity.SubscriptionStatusCancelled {
			return nil
		}

		sub.Cancel(s.now().UTC())

		return errors.Wrap(repo.Update(ctx, sub), "failed to cancel subscription")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel subscription")
	}

	s.log(ctx).Info("Subscription cancelled", slog.Int64("subscription_id", id))

	return cancelled, nil
}
