package marketplace

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/price"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
)

type listArgs struct {
	AssetID  string `json:"asset_id"`
	TokenID  string `json:"token_id"`
	PriceWei string `json:"price_wei"`
}

// List approves the marketplace for the token when it is not already approved, lists it
// and mirrors the listing in minor units
func (s *service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	signer, actor, err := s.signer()
	if err != nil {
		return nil, err
	}

	amount, err := positivePrice(input.Price)
	if err != nil {
		return nil, err
	}

	asset, err := s.loadAsset(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}
	tokenID, err := parseChainID("token id", asset.ChainTokenID)
	if err != nil {
		return nil, err
	}

	owner, err := s.chain.OwnerOf(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if !domain.SameAddress(owner, actor) {
		return nil, fmt.Errorf("%w: token %s is owned by %s", domain.ErrNotOwner, asset.ChainTokenID, owner)
	}

	r, err := s.begin(ctx, schema.IntentKindList, signer, input.RequestID, listArgs{
		AssetID:  asset.ID.String(),
		TokenID:  asset.ChainTokenID,
		PriceWei: amount.String(),
	})
	if err != nil {
		return nil, err
	}

	marketplace := s.chain.Contracts().Marketplace.Hex()
	approved, err := s.chain.GetApproved(ctx, tokenID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	if !domain.SameAddress(approved, marketplace) {
		if _, err := r.submit(ctx, func() (*types.Transaction, error) {
			return s.chain.Approve(ctx, signer, marketplace, tokenID)
		}); err != nil {
			return nil, err
		}
	}

	receipt, err := r.submit(ctx, func() (*types.Transaction, error) {
		return s.chain.List(ctx, signer, asset.ContractAddress, tokenID, amount)
	})
	if err != nil {
		return nil, err
	}
	r.confirm(ctx)

	result := &ListResult{}
	listed := r.receiptEvent(ctx, receipt, domain.EventTypeListed)
	if listed == nil {
		result.Outcome = r.outcome(false)
		r.succeed(ctx)
		return result, nil
	}
	result.ChainListingID = listed.ListingID

	synced := r.mirror(ctx, func(tx store.Store) error {
		listing, err := tx.CreateListing(ctx, store.CreateListingInput{
			ChainListingID:  listed.ListingID,
			AssetID:         asset.ID,
			SellerAddress:   actor,
			PriceMinorUnits: amount.String(),
		})
		if err != nil {
			return err
		}
		result.Listing = listing

		_, _, err = tx.CreateTransaction(ctx, store.CreateTransactionInput{
			AssetID:         uuidPtr(asset.ID),
			FromAddress:     actor,
			ToAddress:       marketplace,
			Kind:            schema.TransactionKindListing,
			PriceMinorUnits: strPtr(amount.String()),
			ChainTxHash:     strPtr(r.txHash),
			LogIndex:        logIndex(listed),
		})
		return err
	})
	if !synced {
		result.Listing = nil
	}

	result.Outcome = r.outcome(synced)
	r.succeed(ctx)
	return result, nil
}

// positivePrice converts a human price into minor units and rejects zero
func positivePrice(human string) (*big.Int, error) {
	amount, err := price.ParseHuman(human)
	if err != nil {
		return nil, err
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than zero", domain.ErrInvalidAmount)
	}
	return amount, nil
}

// parseChainID parses a decimal contract identifier such as a token or listing id
func parseChainID(label, id string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(id, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, label, id)
	}
	return v, nil
}
