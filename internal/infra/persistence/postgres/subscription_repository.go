package postgres

import (
	"context"
	"strconv"

	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/domain/repository"
	"grainauth/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subM := fromSubscriptionDomain(subscription)
	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		return translateError(err, domainerrors.ErrSubscriptionNotFound, nil, "failed to create subscription")
	}

	subscription.ID = subM.ID
	subscription.CreatedAt = subM.CreatedAt
	subscription.UpdatedAt = subM.UpdatedAt

	return nil
}

func (repo *subscriptionRepository) FindByID(ctx context.Context, id int64) (*entity.Subscription, error) {
	var subM model.SubscriptionModel
	if err := repo.db.WithContext(ctx).First(&subM, id).Error; err != nil {
		return nil, translateError(err, domainerrors.ErrSubscriptionNotFound, nil, "subscription "+strconv.FormatInt(id, 10))
	}

	return toSubscriptionDomain(&subM), nil
}

func (repo *subscriptionRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Subscription, error) {
	var models []model.SubscriptionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, translateError(err, domainerrors.ErrSubscriptionNotFound, nil, "failed to list subscriptions")
	}

	subs := make([]*entity.Subscription, 0, len(models))
	for i := range models {
		subs = append(subs, toSubscriptionDomain(&models[i]))
	}

	return subs, nil
}

func (repo *subscriptionRepository) Update(ctx context.Context, subscription *entity.Subscription) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{ID: subscription.ID}).
		Select("status", "end_date").
		Updates(fromSubscriptionDomain(subscription))
	if result.Error != nil {
		return translateError(result.Error, domainerrors.ErrSubscriptionNotFound, nil, "failed to update subscription")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSubscriptionNotFound.WithDetails("subscription " + strconv.FormatInt(subscription.ID, 10))
	}

	return nil
}

func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	return &entity.Subscription{
		ID:        data.ID,
		UserID:    data.UserID,
		TarifID:   data.TarifID,
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		Status:    entity.SubscriptionStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	return &model.SubscriptionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TarifID:   data.TarifID,
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
