package usecase

import (
	"context"

	"grainauth/internal/domain/entity"
)

// RecordPaymentInput is a payment reported by the caller.
type RecordPaymentInput struct {
	TarifID  int64
	Amount   entity.Money
	Currency string
}

// PaymentUsecase records and reads the payment ledger.
type PaymentUsecase interface {
	RecordPayment(ctx context.Context, userID int64, input *RecordPaymentInput) (*entity.Payment, error)
	GetPayment(ctx context.Context, userID, id int64) (*entity.Payment, error)
	ListPayments(ctx context.Context, userID int64) ([]*entity.Payment, error)
}
