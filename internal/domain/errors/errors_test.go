package errors

import (
	"net/http"
	"testing"

	"grainauth/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrUserNotFound.WithDetails("user 7")
	assert.True(t, errors.Is(detailed, ErrUserNotFound))
	assert.False(t, errors.Is(detailed, ErrTarifNotFound))

	wrapped := errors.Wrap(ErrReferentialIntegrity.WithDetails("tarif 1 has 2 subscriptions"), "delete tarif")
	assert.True(t, errors.Is(wrapped, ErrReferentialIntegrity))

	appErr, ok := errors.AsType[AppError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "tarif 1 has 2 subscriptions", appErr.Details())
}

func TestBaseError_WithCause(t *testing.T) {
	cause := errors.New("duplicate key value")
	err := ErrUsernameTaken.WithCause(cause)

	assert.True(t, errors.Is(err, ErrUsernameTaken))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "username already registered: duplicate key value", err.Error())
	assert.Equal(t, "username already registered", err.Message())
	assert.Empty(t, ErrUsernameTaken.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert payment")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert payment", err.Details())
	assert.True(t, errors.Is(err, cause))
}
