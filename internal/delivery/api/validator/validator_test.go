package validator

import (
	"encoding/json"
	"testing"

	domainerrors "grainauth/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentRequest struct {
	Amount   json.Number `json:"amount" validate:"required,money"`
	Currency string      `json:"currency" validate:"required,currency"`
	Email    string      `json:"email" validate:"omitempty,email"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     paymentRequest
		wantErr string
	}{
		{name: "valid", req: paymentRequest{Amount: "10.50", Currency: "usd"}},
		{name: "integer amount", req: paymentRequest{Amount: "10", Currency: "USD"}},
		{name: "three decimals", req: paymentRequest{Amount: "10.505", Currency: "USD"}, wantErr: "amount must be a decimal amount"},
		{name: "exponent", req: paymentRequest{Amount: "1e3", Currency: "USD"}, wantErr: "amount must be a decimal amount"},
		{name: "missing amount", req: paymentRequest{Currency: "USD"}, wantErr: "amount is required"},
		{name: "bad currency", req: paymentRequest{Amount: "1", Currency: "US1"}, wantErr: "currency must be a three-letter currency code"},
		{name: "bad email", req: paymentRequest{Amount: "1", Currency: "USD", Email: "nope"}, wantErr: "email must be a valid email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tt.wantErr)
		})
	}
}
