package handler

import (
	deliverycontext "grainauth/internal/delivery/context"
	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/util"

	"github.com/labstack/echo/v4"
)

// pathID reads the ":id" path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return id, nil
}

// callerID returns the authenticated user's id.
func callerID(c echo.Context) (int64, error) {
	claims, err := callerClaims(c)
	if err != nil {
		return 0, err
	}

	return claims.UserID, nil
}

func callerClaims(c echo.Context) (*entity.TokenClaims, error) {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}

// bindAndValidate binds the request into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}
