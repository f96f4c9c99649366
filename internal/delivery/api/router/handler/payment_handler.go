package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"grainauth/internal/delivery/api/response"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves the caller's payment records. Payments are never
// updated or deleted through the API.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// RecordPaymentRequest represents the request body for recording a payment
type RecordPaymentRequest struct {
	TarifID  int64       `json:"tarif_id" validate:"required,gt=0"`
	Amount   json.Number `json:"amount" validate:"required,money"`
	Currency string      `json:"currency" validate:"required,currency"`
}

// RecordPayment handles POST /payments
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RecordPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	amount, err := parseMoney(req.Amount)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("amount must be a decimal amount"))
	}

	payment, err := h.paymentUC.RecordPayment(c.Request().Context(), userID, &usecase.RecordPaymentInput{
		TarifID:  req.TarifID,
		Amount:   amount,
		Currency: req.Currency,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPaymentResponse(payment))
}

// ListPayments handles GET /payments
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payments, err := h.paymentUC.ListPayments(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(payments, toPaymentResponse))
}

// GetPayment handles GET /payments/:id
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payment, err := h.paymentUC.GetPayment(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPaymentResponse(payment))
}
