package handler

import (
	"log/slog"
	"net/http"

	"grainauth/internal/delivery/api/response"
	"grainauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	ItemUC usecase.ItemUsecase
	Logger *slog.Logger
}

// ItemHandler serves located items and the caller's links to them.
type ItemHandler struct {
	itemUC usecase.ItemUsecase
	logger *slog.Logger
}

func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		itemUC: params.ItemUC,
		logger: params.Logger,
	}
}

// ItemRequest carries the coordinates the location is derived from.
type ItemRequest struct {
	Title     string   `json:"title" validate:"max=255"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

func (r *ItemRequest) toInput() *usecase.ItemInput {
	return &usecase.ItemInput{
		Title:     r.Title,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.itemUC.CreateItem(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toItemResponse(item))
}

// GetItem handles GET /items/:id
func (h *ItemHandler) GetItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.itemUC.GetItem(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toItemResponse(item))
}

// UpdateItem handles PUT /items/:id
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.itemUC.UpdateItem(c.Request().Context(), userID, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toItemResponse(item))
}

// LinkItem handles POST /items/:id/link
func (h *ItemHandler) LinkItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.itemUC.LinkItem(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, response.StatusResponse{Status: "linked"})
}

// ListMyItems handles GET /users/me/items
func (h *ItemHandler) ListMyItems(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ids, err := h.itemUC.ListUserItemIDs(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"item_ids": ids})
}

// RemoveMyItem handles DELETE /users/me/items/:id
func (h *ItemHandler) RemoveMyItem(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.itemUC.RemoveUserItem(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Acknowledge(c)
}
