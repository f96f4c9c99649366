package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"grainauth/internal/delivery/api/response"
	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/usecase"
	"grainauth/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TarifHandlerParams holds dependencies for TarifHandler, injected by Fx.
type TarifHandlerParams struct {
	fx.In

	TarifUC usecase.TarifUsecase
	Logger  *slog.Logger
}

// TarifHandler serves the tarif catalog.
type TarifHandler struct {
	tarifUC usecase.TarifUsecase
	logger  *slog.Logger
}

func NewTarifHandler(params TarifHandlerParams) *TarifHandler {
	return &TarifHandler{
		tarifUC: params.TarifUC,
		logger:  params.Logger,
	}
}

// TarifRequest is used for both create and full replacement. Omitted
// optional fields take the catalog defaults; price may be a JSON number or a
// decimal string.
type TarifRequest struct {
	Name        string       `json:"name" validate:"required,max=255"`
	Description string       `json:"description"`
	Price       *json.Number `json:"price" validate:"omitempty,money"`
	Currency    *string      `json:"currency" validate:"omitempty,currency"`
	Scope       *string      `json:"scope" validate:"omitempty,max=50"`
	Terms       *string      `json:"terms" validate:"omitempty,max=50"`
}

func (r *TarifRequest) toInput() (*usecase.TarifInput, error) {
	input := &usecase.TarifInput{
		Name:        r.Name,
		Description: r.Description,
		Currency:    r.Currency,
		Scope:       r.Scope,
		Terms:       r.Terms,
	}
	if r.Price != nil {
		price, err := parseMoney(*r.Price)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("price must be a decimal amount")
		}
		input.Price = &price
	}

	return input, nil
}

// CreateTarif handles POST /tarifs
func (h *TarifHandler) CreateTarif(c echo.Context) error {
	input, err := h.bindTarif(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tarif, err := h.tarifUC.CreateTarif(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toTarifResponse(tarif))
}

// ListTarifs handles GET /tarifs?scope=&terms=
func (h *TarifHandler) ListTarifs(c echo.Context) error {
	filter := entity.TarifFilter{
		Scope: util.NilIfEmpty(c.QueryParam("scope")),
		Terms: util.NilIfEmpty(c.QueryParam("terms")),
	}

	tarifs, err := h.tarifUC.ListTarifs(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(tarifs, toTarifResponse))
}

// GetTarif handles GET /tarifs/:id
func (h *TarifHandler) GetTarif(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tarif, err := h.tarifUC.GetTarif(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTarifResponse(tarif))
}

// UpdateTarif handles PUT /tarifs/:id
func (h *TarifHandler) UpdateTarif(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	input, err := h.bindTarif(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tarif, err := h.tarifUC.UpdateTarif(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTarifResponse(tarif))
}

// DeleteTarif handles DELETE /tarifs/:id
func (h *TarifHandler) DeleteTarif(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.tarifUC.DeleteTarif(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Acknowledge(c)
}

func (h *TarifHandler) bindTarif(c echo.Context) (*usecase.TarifInput, error) {
	var req TarifRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	return req.toInput()
}
