package marketplace

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
)

type buyArgs struct {
	ChainListingID string `json:"chain_listing_id"`
	PriceWei       string `json:"price_wei"`
}

// Buy reloads the listing from the marketplace contract right before paying so a stale
// price or an already sold listing is never paid for. The mirror is only read to find the
// chain listing id and the asset.
func (s *service) Buy(ctx context.Context, input BuyInput) (*BuyResult, error) {
	signer, actor, err := s.signer()
	if err != nil {
		return nil, err
	}

	listing, err := s.store.GetListingByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrListingNotFound
	}
	asset, err := s.loadAsset(ctx, listing.AssetID)
	if err != nil {
		return nil, err
	}

	chainListingID, err := parseChainID("listing id", listing.ChainListingID)
	if err != nil {
		return nil, err
	}
	onChain, err := s.chain.GetListing(ctx, chainListingID)
	if err != nil {
		return nil, err
	}
	if !onChain.Active {
		return nil, fmt.Errorf("%w: listing %s", domain.ErrListingInactive, listing.ChainListingID)
	}
	if domain.SameAddress(onChain.Seller, actor) || domain.SameAddress(asset.OwnerAddress, actor) {
		return nil, domain.ErrSelfPurchase
	}

	balance, err := s.chain.BalanceAt(ctx, actor)
	if err != nil {
		return nil, err
	}
	if balance.Cmp(onChain.Price) < 0 {
		return nil, fmt.Errorf("%w: balance %s below price %s", domain.ErrInsufficientFunds, balance, onChain.Price)
	}

	r, err := s.begin(ctx, schema.IntentKindBuy, signer, input.RequestID, buyArgs{
		ChainListingID: listing.ChainListingID,
		PriceWei:       onChain.Price.String(),
	})
	if err != nil {
		return nil, err
	}

	receipt, err := r.submit(ctx, func() (*types.Transaction, error) {
		return s.chain.Buy(ctx, signer, chainListingID, onChain.Price, s.cfg.BuyGasLimit)
	})
	if err != nil {
		return nil, err
	}
	r.confirm(ctx)

	sold := r.receiptEvent(ctx, receipt, domain.EventTypeSold)
	synced := r.mirror(ctx, func(tx store.Store) error {
		if _, err := tx.DeactivateListingByChainID(ctx, listing.ChainListingID); err != nil {
			return err
		}

		updated, err := tx.UpdateAssetOwner(ctx, asset.ID, onChain.Seller, actor)
		if err != nil {
			return err
		}
		if !updated {
			logger.WarnCtx(ctx, "Asset owner was not the seller, owner left unchanged",
				zap.String("assetID", asset.ID.String()),
				zap.String("seller", onChain.Seller))
		}

		_, _, err = tx.CreateTransaction(ctx, store.CreateTransactionInput{
			AssetID:         uuidPtr(asset.ID),
			FromAddress:     onChain.Seller,
			ToAddress:       actor,
			Kind:            schema.TransactionKindSale,
			PriceMinorUnits: strPtr(onChain.Price.String()),
			ChainTxHash:     strPtr(r.txHash),
			LogIndex:        logIndex(sold),
		})
		return err
	})

	r.succeed(ctx)
	return &BuyResult{
		Outcome:         r.outcome(synced),
		AssetID:         asset.ID,
		PriceMinorUnits: onChain.Price.String(),
	}, nil
}
