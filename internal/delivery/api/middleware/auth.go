package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"grainauth/internal/delivery/api/response"
	deliverycontext "grainauth/internal/delivery/context"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthMiddleware authenticates bearer tokens and enforces token scopes.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Authenticate rejects requests without a valid, unrevoked bearer token for
// an existing user. The verified claims are stored on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request())
		if !ok {
			return domainerrors.ErrUnauthorized.WithDetails("missing bearer token")
		}

		claims, err := m.sessionUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireScope must run after Authenticate.
func (m *AuthMiddleware) RequireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := deliverycontext.GetClaims(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if !claims.HasScope(scope) {
				c.Response().Header().Set(response.HeaderWWWAuthenticate, `Bearer scope="`+scope+`"`)
				m.logger.Warn("Missing token scope",
					slog.Int64("user_id", claims.UserID),
					slog.String("scope", scope),
				)

				return domainerrors.ErrInsufficientScope.WithDetails(scope)
			}

			return next(c)
		}
	}
}

func bearerToken(req *http.Request) (string, bool) {
	header := req.Header.Get(echo.HeaderAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
