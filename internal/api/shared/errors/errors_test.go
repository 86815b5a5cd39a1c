package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apierrors "github.com/feral-file/ff-market/internal/api/shared/errors"
	"github.com/feral-file/ff-market/internal/domain"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    apierrors.ErrorCode
		message string
		details string
	}{
		{
			name:    "wrapped validation sentinel",
			err:     fmt.Errorf("%w: %q", domain.ErrInvalidAmount, "2.5.1"),
			status:  http.StatusUnprocessableEntity,
			code:    apierrors.ErrCodeValidationFailed,
			message: domain.ErrInvalidAmount.Error(),
			details: `invalid amount: "2.5.1"`,
		},
		{
			name:    "self purchase",
			err:     domain.ErrSelfPurchase,
			status:  http.StatusConflict,
			code:    apierrors.ErrCodeConflict,
			message: domain.ErrSelfPurchase.Error(),
			details: domain.ErrSelfPurchase.Error(),
		},
		{
			name:    "not admin",
			err:     fmt.Errorf("failed to update fee: %w", domain.ErrNotAdmin),
			status:  http.StatusForbidden,
			code:    apierrors.ErrCodeForbidden,
			message: domain.ErrNotAdmin.Error(),
		},
		{
			name:    "not connected",
			err:     domain.ErrNotConnected,
			status:  http.StatusUnauthorized,
			code:    apierrors.ErrCodeUnauthorized,
			message: domain.ErrNotConnected.Error(),
		},
		{
			name:    "missing asset",
			err:     fmt.Errorf("%w: 123", domain.ErrAssetNotFound),
			status:  http.StatusNotFound,
			code:    apierrors.ErrCodeNotFound,
			message: domain.ErrAssetNotFound.Error(),
		},
		{
			name:    "user rejected through provider code",
			err:     &domain.ProviderError{Code: domain.ProviderErrorUserRejected, Message: "denied"},
			status:  http.StatusBadRequest,
			code:    apierrors.ErrCodeWalletError,
			message: domain.ErrUserRejected.Error(),
		},
		{
			name:    "revert with reason",
			err:     fmt.Errorf("failed to buy: %w", &domain.RevertError{TxHash: "0xabc", Reason: "Listing not active"}),
			status:  http.StatusBadGateway,
			code:    apierrors.ErrCodeChainError,
			message: domain.ErrRemoteRevert.Error(),
			details: "Listing not active",
		},
		{
			name:    "api error passes through",
			err:     apierrors.NewDatabaseError("Failed to list assets"),
			status:  http.StatusInternalServerError,
			code:    apierrors.ErrCodeDatabaseError,
			message: "Failed to list assets",
		},
		{
			name:    "unknown error hides details",
			err:     errors.New("connection refused"),
			status:  http.StatusInternalServerError,
			code:    apierrors.ErrCodeInternalError,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := apierrors.FromError(tt.err)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.message, apiErr.Message)
			if tt.details != "" {
				assert.Equal(t, tt.details, apiErr.Details)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := apierrors.NewValidationError("price is required")
	assert.JSONEq(t, `{"code":"validation_failed","message":"Validation failed","details":"price is required"}`, err.Error())
}
