package repository

import (
	"context"

	"grainauth/internal/domain/entity"
)

// PaymentRepository persists the payment ledger. Payments are insert-only.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id int64) (*entity.Payment, error)
	FindByUser(ctx context.Context, userID int64) ([]*entity.Payment, error)
}
