package handler

import (
	"log/slog"
	"net/http"
	"time"

	"grainauth/internal/delivery/api/response"
	"grainauth/internal/domain/entity"
	"grainauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler serves the caller's subscriptions.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SubscribeRequest represents the request body for subscribing to a tarif
type SubscribeRequest struct {
	TarifID int64 `json:"tarif_id" validate:"required,gt=0"`
}

// UpdateSubscriptionRequest represents a partial subscription update
type UpdateSubscriptionRequest struct {
	Status  *string    `json:"status" validate:"omitempty,oneof=active expired cancelled"`
	EndDate *time.Time `json:"end_date"`
}

// Subscribe handles POST /subscriptions
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SubscribeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	sub, err := h.subscriptionUC.Subscribe(c.Request().Context(), userID, &usecase.SubscribeInput{
		TarifID: req.TarifID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSubscriptionResponse(sub))
}

// ListSubscriptions handles GET /subscriptions
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	subs, err := h.subscriptionUC.ListSubscriptions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(subs, toSubscriptionResponse))
}

// GetSubscription handles GET /subscriptions/:id
func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	userID, id, err := h.callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sub, err := h.subscriptionUC.GetSubscription(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSubscriptionResponse(sub))
}

// UpdateSubscription handles PATCH /subscriptions/:id
func (h *SubscriptionHandler) UpdateSubscription(c echo.Context) error {
	userID, id, err := h.callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateSubscriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateSubscriptionInput{EndDate: req.EndDate}
	if req.Status != nil {
		status := entity.SubscriptionStatus(*req.Status)
		input.Status = &status
	}

	sub, err := h.subscriptionUC.UpdateSubscription(c.Request().Context(), userID, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSubscriptionResponse(sub))
}

// CancelSubscription handles POST /subscriptions/:id/cancel
func (h *SubscriptionHandler) CancelSubscription(c echo.Context) error {
	userID, id, err := h.callerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sub, err := h.subscriptionUC.CancelSubscription(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSubscriptionResponse(sub))
}

func (h *SubscriptionHandler) callerAndID(c echo.Context) (int64, int64, error) {
	userID, err := callerID(c)
	if err != nil {
		return 0, 0, err
	}
	id, err := pathID(c)
	if err != nil {
		return 0, 0, err
	}

	return userID, id, nil
}
