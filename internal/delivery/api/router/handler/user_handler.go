package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"grainauth/internal/delivery/api/response"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/usecase"
	"grainauth/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// UserHandler serves accounts, login and logout.
type UserHandler struct {
	userUC    usecase.UserUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:    params.UserUC,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	FullName string `json:"full_name" validate:"max=255"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest accepts the OAuth2 password grant as a form or as JSON.
// Scope is a space-separated list.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Scope    string `json:"scope" form:"scope"`
}

// UpdateUserRequest only touches the fields that are present.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	Password *string `json:"password" validate:"omitempty,min=1"`
	Disabled *bool   `json:"disabled"`
}

// Register handles POST /users
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		FullName: strings.TrimSpace(req.FullName),
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// Login handles POST /token
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Scopes:   strings.Fields(req.Scope),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: out.AccessToken.Token,
		TokenType:   out.AccessToken.TokenType,
		ExpiresIn:   int64(time.Until(out.AccessToken.ExpiresAt).Round(time.Second).Seconds()),
	})
}

// Logout handles POST /logout
func (h *UserHandler) Logout(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessionUC.Logout(c.Request().Context(), claims); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Acknowledge(c)
}

// Me handles GET /users/me
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetActiveUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// ListUsers handles GET /users?limit=&offset=
func (h *UserHandler) ListUsers(c echo.Context) error {
	limit, err := util.ParseIntDefault(c.QueryParam("limit"), 0)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("limit must be an integer"))
	}
	offset, err := util.ParseIntDefault(c.QueryParam("offset"), 0)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("offset must be an integer"))
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(users, toUserResponse))
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateUser handles PUT /users/:id. Only an active caller may update, and
// only itself.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	actorID, err := h.activeCaller(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), actorID, id, &usecase.UpdateUserInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Disabled: req.Disabled,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, toUserResponse(user))
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c echo.Context) error {
	actorID, err := h.activeCaller(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), actorID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Acknowledge(c)
}

func (h *UserHandler) activeCaller(c echo.Context) (int64, error) {
	userID, err := callerID(c)
	if err != nil {
		return 0, err
	}
	if _, err := h.userUC.GetActiveUser(c.Request().Context(), userID); err != nil {
		return 0, err
	}

	return userID, nil
}
