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

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository. There is no
// update or delete: payments are immutable once written.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := &model.PaymentModel{
		UserID:    payment.UserID,
		TarifID:   payment.TarifID,
		Amount:    model.Money(payment.Amount),
		Currency:  payment.Currency,
		CreatedAt: payment.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		return translateError(err, domainerrors.ErrPaymentNotFound, nil, "failed to record payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

func (repo *paymentRepository) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).First(&paymentM, id).Error; err != nil {
		return nil, translateError(err, domainerrors.ErrPaymentNotFound, nil, "payment "+strconv.FormatInt(id, 10))
	}

	return toPaymentDomain(&paymentM), nil
}

func (repo *paymentRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Payment, error) {
	var models []model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, translateError(err, domainerrors.ErrPaymentNotFound, nil, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(models))
	for i := range models {
		payments = append(payments, toPaymentDomain(&models[i]))
	}

	return payments, nil
}

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:        data.ID,
		UserID:    data.UserID,
		TarifID:   data.TarifID,
		Amount:    entity.Money(data.Amount),
		Currency:  data.Currency,
		CreatedAt: data.CreatedAt,
	}
}
