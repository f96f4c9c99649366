package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"grainauth/internal/delivery/api/response"
	"grainauth/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Logger *slog.Logger
}

// HealthHandler reports liveness together with database reachability.
type HealthHandler struct {
	db      *gorm.DB
	logger  *slog.Logger
	started time.Time
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		db:      params.DB,
		logger:  params.Logger,
		started: time.Now(),
	}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// Check handles GET /health
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	body := HealthResponse{
		Status:   "ok",
		Database: "ok",
		Uptime:   util.FormatDuration(time.Since(h.started)),
	}

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Warn("Health check failed", slog.Any("error", err))
		body.Status = "degraded"
		body.Database = "unreachable"

		return response.Success(c, http.StatusServiceUnavailable, body)
	}

	return response.Success(c, http.StatusOK, body)
}
