package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProviderFound is returned when no signer backend is configured for the requested wallet kind
	ErrNoProviderFound = errors.New("no wallet provider found")

	// ErrUserRejected is returned when the signer declines to sign a transaction
	ErrUserRejected = errors.New("user rejected the request")

	// ErrNetworkMismatch is returned when the provider is on the wrong chain and could not be switched
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrUnrecognizedChain is returned by a provider asked to switch to a chain it does not know
	ErrUnrecognizedChain = errors.New("unrecognized chain")

	// ErrRemoteRevert is returned when a contract call reverted or did not report success
	ErrRemoteRevert = errors.New("transaction reverted")

	// ErrInsufficientFunds is returned when the payer cannot cover value plus gas
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrMirrorWriteFailure marks a database write that failed after a successful chain call
	ErrMirrorWriteFailure = errors.New("mirror write failed")

	// ErrNotConnected is returned when a workflow requires a connected session
	ErrNotConnected = errors.New("wallet not connected")

	// ErrInvalidAmount is returned for malformed, negative or over-precise amounts
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidAddress is returned for malformed addresses
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidFee is returned for fees outside 0..MAX_FEE_BASIS_POINTS
	ErrInvalidFee = errors.New("invalid fee")

	// ErrSelfPurchase is returned when a buyer tries to buy their own asset
	ErrSelfPurchase = errors.New("cannot buy your own asset")

	// ErrSelfOffer is returned when an owner tries to make an offer on their own asset
	ErrSelfOffer = errors.New("cannot make an offer on your own asset")

	// ErrListingInactive is returned when the contract reports a listing as no longer active
	ErrListingInactive = errors.New("listing is not active")

	// ErrNotOwner is returned when the caller does not own the asset
	ErrNotOwner = errors.New("caller does not own the asset")

	// ErrNotAdmin is returned when a non-admin address attempts an admin operation
	ErrNotAdmin = errors.New("caller is not the administrator")

	// ErrAssetNotFound is returned when an asset is not found
	ErrAssetNotFound = errors.New("asset not found")

	// ErrListingNotFound is returned when a listing is not found
	ErrListingNotFound = errors.New("listing not found")

	// ErrOfferNotFound is returned when an offer is not found
	ErrOfferNotFound = errors.New("offer not found")

	// ErrEventNotFound is returned when an expected event is missing from a receipt
	ErrEventNotFound = errors.New("event not found in receipt")

	// ErrSubscriptionFailed is returned when subscription to events fails
	ErrSubscriptionFailed = errors.New("subscription failed")

	// ErrInvalidInput is returned for requests missing required fields
	ErrInvalidInput = errors.New("invalid input")

	// ErrOfferInactive is returned when the contract reports an offer as no longer active
	ErrOfferInactive = errors.New("offer is not active")

	// ErrNotOfferer is returned when someone other than the offeror tries to cancel an offer
	ErrNotOfferer = errors.New("caller did not make the offer")

	// ErrDuplicateRequest is returned when a workflow request with the same idempotency key was already recorded
	ErrDuplicateRequest = errors.New("duplicate request")

	// ErrInvalidMedia is returned when the uploaded media is empty or of an unsupported type
	ErrInvalidMedia = errors.New("invalid media")
)

// RevertError carries the revert reason reported by the contract, if any
type RevertError struct {
	TxHash string
	Reason string
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", ErrRemoteRevert.Error(), e.TxHash)
	}
	return fmt.Sprintf("%s: %s", ErrRemoteRevert.Error(), e.Reason)
}

func (e *RevertError) Unwrap() error {
	return ErrRemoteRevert
}

// ProviderError mirrors the numeric error codes wallet providers report (EIP-1193)
type ProviderError struct {
	Code    int
	Message string
}

const (
	// ProviderErrorUserRejected is reported when the user declines a request
	ProviderErrorUserRejected = 4001
	// ProviderErrorUnrecognizedChain is reported when switching to a chain the provider does not know
	ProviderErrorUnrecognizedChain = 4902
)

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	switch e.Code {
	case ProviderErrorUserRejected:
		return ErrUserRejected
	case ProviderErrorUnrecognizedChain:
		return ErrUnrecognizedChain
	default:
		return nil
	}
}
