package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/feral-file/ff-market/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-market/internal/api/shared/errors"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/price"
)

// ConnectSessionRequest represents the request body for connecting a wallet
type ConnectSessionRequest struct {
	WalletKind domain.WalletKind `json:"wallet_kind"`
}

// Validate validates the request body
func (r *ConnectSessionRequest) Validate() error {
	if r.WalletKind == "" {
		return apierrors.NewValidationError("wallet_kind is required")
	}
	if !domain.IsValidWalletKind(r.WalletKind) {
		return apierrors.NewValidationError(fmt.Sprintf("unsupported wallet_kind: %s", r.WalletKind))
	}
	return nil
}

// MintRequest holds the text fields of the multipart mint form
type MintRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
}

// Validate validates the form fields
func (r *MintRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return apierrors.NewValidationError("name is required")
	}
	if len(r.Name) > constants.MAX_NAME_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("name must be at most %d characters", constants.MAX_NAME_LENGTH))
	}
	if len(r.Description) > constants.MAX_DESCRIPTION_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("description must be at most %d characters", constants.MAX_DESCRIPTION_LENGTH))
	}
	return nil
}

// PriceRequest is the body of the list and make-offer requests. Price is in human units.
type PriceRequest struct {
	Price string `json:"price"`
}

// Validate checks the price is a positive amount with at most 18 fractional digits
func (r *PriceRequest) Validate() error {
	if r.Price == "" {
		return apierrors.NewValidationError("price is required")
	}
	v, err := price.ParseHuman(r.Price)
	if err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	if v.Sign() <= 0 {
		return apierrors.NewValidationError("price must be greater than zero")
	}
	return nil
}

// TransferRequest represents the request body for transferring an asset
type TransferRequest struct {
	To string `json:"to"`
}

// Validate validates the request body
func (r *TransferRequest) Validate() error {
	if r.To == "" {
		return apierrors.NewValidationError("to is required")
	}
	if !domain.IsValidAddress(r.To) || domain.IsZeroAddress(r.To) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid address: %s", r.To))
	}
	return nil
}

// FavoriteRequest represents the request body for adding or removing a favorite
type FavoriteRequest struct {
	UserAddress string `json:"user_address"`
	AssetID     string `json:"asset_id"`
}

// Validate validates the request body
func (r *FavoriteRequest) Validate() error {
	if !domain.IsValidAddress(r.UserAddress) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid user_address: %s", r.UserAddress))
	}
	if _, err := uuid.Parse(r.AssetID); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("invalid asset_id: %s", r.AssetID))
	}
	return nil
}

// FeeSettingsRequest represents the admin fee update. At least one field must be set.
type FeeSettingsRequest struct {
	FeeBasisPoints *uint64 `json:"fee_basis_points"`
	FeeRecipient   *string `json:"fee_recipient"`
}

// Validate validates the request body
func (r *FeeSettingsRequest) Validate() error {
	if r.FeeBasisPoints == nil && r.FeeRecipient == nil {
		return apierrors.NewValidationError("fee_basis_points or fee_recipient is required")
	}
	if r.FeeBasisPoints != nil && *r.FeeBasisPoints > domain.MAX_FEE_BASIS_POINTS {
		return apierrors.NewValidationError(fmt.Sprintf("fee_basis_points must be between 0 and %d", domain.MAX_FEE_BASIS_POINTS))
	}
	if r.FeeRecipient != nil && (!domain.IsValidAddress(*r.FeeRecipient) || domain.IsZeroAddress(*r.FeeRecipient)) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid fee_recipient: %s", *r.FeeRecipient))
	}
	return nil
}
