package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-market/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest        ErrorCode = "bad_request"
	ErrCodeNotFound          ErrorCode = "not_found"
	ErrCodeValidationFailed  ErrorCode = "validation_failed"
	ErrCodeUnauthorized      ErrorCode = "unauthorized"
	ErrCodeForbidden         ErrorCode = "forbidden"
	ErrCodeConflict          ErrorCode = "conflict"
	ErrCodeWalletError       ErrorCode = "wallet_error"
	ErrCodeInsufficientFunds ErrorCode = "insufficient_funds"
	ErrCodeRateLimited       ErrorCode = "rate_limited"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeChainError    ErrorCode = "chain_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	// Status is the HTTP status the error is served with
	Status int `json:"-"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Response is the envelope every error is served in
type Response struct {
	Error *APIError `json:"error"`
}

func newError(status int, code ErrorCode, message string, details []string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
		Status:  status,
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return newError(http.StatusBadRequest, ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(http.StatusNotFound, ErrCodeNotFound, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newError(http.StatusUnprocessableEntity, ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newError(http.StatusUnauthorized, ErrCodeUnauthorized, message, details)
}

func NewForbiddenError(message string, details ...string) *APIError {
	return newError(http.StatusForbidden, ErrCodeForbidden, message, details)
}

func NewConflictError(message string, details ...string) *APIError {
	return newError(http.StatusConflict, ErrCodeConflict, message, details)
}

func NewRateLimitedError(message string, details ...string) *APIError {
	return newError(http.StatusTooManyRequests, ErrCodeRateLimited, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(http.StatusInternalServerError, ErrCodeInternalError, message, details)
}

func NewDatabaseError(message string, details ...string) *APIError {
	return newError(http.StatusInternalServerError, ErrCodeDatabaseError, message, details)
}

func NewChainError(message string, details ...string) *APIError {
	return newError(http.StatusBadGateway, ErrCodeChainError, message, details)
}

type sentinelMapping struct {
	sentinel error
	status   int
	code     ErrorCode
}

var sentinelMappings = []sentinelMapping{
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity, ErrCodeValidationFailed},
	{domain.ErrInvalidAddress, http.StatusUnprocessableEntity, ErrCodeValidationFailed},
	{domain.ErrInvalidFee, http.StatusUnprocessableEntity, ErrCodeValidationFailed},
	{domain.ErrInvalidInput, http.StatusUnprocessableEntity, ErrCodeValidationFailed},
	{domain.ErrInvalidMedia, http.StatusUnprocessableEntity, ErrCodeValidationFailed},

	{domain.ErrAssetNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrListingNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrOfferNotFound, http.StatusNotFound, ErrCodeNotFound},

	{domain.ErrNotConnected, http.StatusUnauthorized, ErrCodeUnauthorized},
	{domain.ErrNotOwner, http.StatusForbidden, ErrCodeForbidden},
	{domain.ErrNotAdmin, http.StatusForbidden, ErrCodeForbidden},
	{domain.ErrNotOfferer, http.StatusForbidden, ErrCodeForbidden},

	{domain.ErrSelfPurchase, http.StatusConflict, ErrCodeConflict},
	{domain.ErrSelfOffer, http.StatusConflict, ErrCodeConflict},
	{domain.ErrListingInactive, http.StatusConflict, ErrCodeConflict},
	{domain.ErrOfferInactive, http.StatusConflict, ErrCodeConflict},
	{domain.ErrDuplicateRequest, http.StatusConflict, ErrCodeConflict},

	{domain.ErrNoProviderFound, http.StatusBadRequest, ErrCodeWalletError},
	{domain.ErrUserRejected, http.StatusBadRequest, ErrCodeWalletError},
	{domain.ErrNetworkMismatch, http.StatusBadRequest, ErrCodeWalletError},
	{domain.ErrUnrecognizedChain, http.StatusBadRequest, ErrCodeWalletError},
	{domain.ErrInsufficientFunds, http.StatusBadRequest, ErrCodeInsufficientFunds},

	{domain.ErrRemoteRevert, http.StatusBadGateway, ErrCodeChainError},
	{domain.ErrEventNotFound, http.StatusBadGateway, ErrCodeChainError},
}

// FromError converts err into the API error it is served as. Domain sentinels keep their
// message in Message and the full chain in Details; anything else is an internal error.
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	for _, m := range sentinelMappings {
		if !errors.Is(err, m.sentinel) {
			continue
		}
		details := []string{err.Error()}
		var revert *domain.RevertError
		if errors.As(err, &revert) && revert.Reason != "" {
			details = []string{revert.Reason}
		}
		return newError(m.status, m.code, m.sentinel.Error(), details)
	}

	return NewInternalError("Internal server error")
}
