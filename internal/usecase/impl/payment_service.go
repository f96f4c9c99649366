package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "grainauth/internal/delivery/context"
	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/domain/repository"
	"grainauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type paymentService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	Logger      *slog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   params.TxManager,
		paymentRepo: params.PaymentRepo,
		logger:      params.Logger,
	}
}

func (s *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RecordPayment stores the amount the caller reported. A difference from the
// tarif's current price is logged, not rejected.
func (s *paymentService) RecordPayment(ctx context.Context, userID int64, input *usecase.RecordPaymentInput) (*entity.Payment, error) {
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	switch {
	case input.Amount <= 0 || input.Amount > maxTarifPrice:
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount must be greater than 0")
	case !isCurrencyCode(currency):
		return nil, domainerrors.ErrValidationFailed.WithDetails("currency must be a three-letter code")
	}

	var recorded *entity.Payment
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
		if tarif.Price != input.Amount || tarif.Currency != currency {
			s.log(ctx).Warn("Payment differs from tarif price",
				slog.Int64("tarif_id", tarif.ID),
				slog.String("tarif_price", tarif.Price.String()+" "+tarif.Currency),
				slog.String("paid", input.Amount.String()+" "+currency),
			)
		}

		payment := &entity.Payment{
			UserID:   userID,
			TarifID:  tarif.ID,
			Amount:   input.Amount,
			Currency: currency,
		}
		if err := repoFactory.NewPaymentRepository().Create(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to record payment")
		}
		recorded = payment

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record payment")
	}

	s.log(ctx).Info("Payment recorded",
		slog.Int64("payment_id", recorded.ID),
		slog.Int64("user_id", userID),
		slog.String("amount", recorded.Amount.String()),
	)

	return recorded, nil
}

func (s *paymentService) GetPayment(ctx context.Context, userID, id int64) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get payment")
	}
	if payment.UserID != userID {
		return nil, domainerrors.ErrForbidden.WithDetails("payment belongs to another user")
	}

	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, userID int64) ([]*entity.Payment, error) {
	payments, err := s.paymentRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}
