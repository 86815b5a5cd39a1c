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

type offerArgs struct {
	AssetID      string `json:"asset_id,omitempty"`
	TokenID      string `json:"token_id,omitempty"`
	ChainOfferID string `json:"chain_offer_id,omitempty"`
	PriceWei     string `json:"price_wei,omitempty"`
}

// MakeOffer escrows price on the offer book for the asset
func (s *service) MakeOffer(ctx context.Context, input MakeOfferInput) (*OfferResult, error) {
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
	if domain.SameAddress(owner, actor) || domain.SameAddress(asset.OwnerAddress, actor) {
		return nil, domain.ErrSelfOffer
	}

	balance, err := s.chain.BalanceAt(ctx, actor)
	if err != nil {
		return nil, err
	}
	if balance.Cmp(amount) < 0 {
		return nil, fmt.Errorf("%w: balance %s below offer %s", domain.ErrInsufficientFunds, balance, amount)
	}

	r, err := s.begin(ctx, schema.IntentKindMakeOffer, signer, input.RequestID, offerArgs{
		AssetID:  asset.ID.String(),
		TokenID:  asset.ChainTokenID,
		PriceWei: amount.String(),
	})
	if err != nil {
		return nil, err
	}

	receipt, err := r.submit(ctx, func() (*types.Transaction, error) {
		return s.chain.MakeOffer(ctx, signer, asset.ContractAddress, tokenID, amount)
	})
	if err != nil {
		return nil, err
	}
	r.confirm(ctx)

	result := &OfferResult{}
	made := r.receiptEvent(ctx, receipt, domain.EventTypeOfferMade)
	if made == nil {
		result.Outcome = r.outcome(false)
		r.succeed(ctx)
		return result, nil
	}
	result.ChainOfferID = made.OfferID

	synced := r.mirror(ctx, func(tx store.Store) error {
		offer, err := tx.CreateOffer(ctx, store.CreateOfferInput{
			ChainOfferID:    made.OfferID,
			AssetID:         asset.ID,
			OffererAddress:  actor,
			PriceMinorUnits: amount.String(),
		})
		if err != nil {
			return err
		}
		result.Offer = offer

		_, _, err = tx.CreateTransaction(ctx, store.CreateTransactionInput{
			AssetID:         uuidPtr(asset.ID),
			FromAddress:     actor,
			ToAddress:       owner,
			Kind:            schema.TransactionKindOffer,
			PriceMinorUnits: strPtr(amount.String()),
			ChainTxHash:     strPtr(r.txHash),
			LogIndex:        logIndex(made),
		})
		return err
	})
	if !synced {
		result.Offer = nil
	}

	result.Outcome = r.outcome(synced)
	r.succeed(ctx)
	return result, nil
}

// AcceptOffer accepts an offer on an asset the caller owns in the mirror. The offer is
// re-read from the offer book first; ownership is settled by the contract.
func (s *service) AcceptOffer(ctx context.Context, input AcceptOfferInput) (*Outcome, error) {
	signer, actor, err := s.signer()
	if err != nil {
		return nil, err
	}

	offer, err := s.loadOffer(ctx, input.OfferID)
	if err != nil {
		return nil, err
	}
	asset, err := s.loadAsset(ctx, offer.AssetID)
	if err != nil {
		return nil, err
	}
	if !domain.SameAddress(asset.OwnerAddress, actor) {
		return nil, domain.ErrNotOwner
	}

	chainOfferID, err := parseChainID("offer id", offer.ChainOfferID)
	if err != nil {
		return nil, err
	}
	onChain, err := s.chain.GetOffer(ctx, chainOfferID)
	if err != nil {
		return nil, err
	}
	if !onChain.Active {
		return nil, fmt.Errorf("%w: offer %s", domain.ErrOfferInactive, offer.ChainOfferID)
	}

	r, err := s.begin(ctx, schema.IntentKindAcceptOffer, signer, input.RequestID, offerArgs{
		AssetID:      asset.ID.String(),
		ChainOfferID: offer.ChainOfferID,
		PriceWei:     onChain.Amount.String(),
	})
	if err != nil {
		return nil, err
	}

	receipt, err := r.submit(ctx, func() (*types.Transaction, error) {
		return s.chain.AcceptOffer(ctx, signer, chainOfferID)
	})
	if err != nil {
		return nil, err
	}
	r.confirm(ctx)

	accepted := r.receiptEvent(ctx, receipt, domain.EventTypeOfferAccepted)
	synced := r.mirror(ctx, func(tx store.Store) error {
		if _, err := tx.DeactivateOfferByChainID(ctx, offer.ChainOfferID); err != nil {
			return err
		}

		updated, err := tx.UpdateAssetOwner(ctx, asset.ID, actor, onChain.Offeror)
		if err != nil {
			return err
		}
		if !updated {
			logger.WarnCtx(ctx, "Asset owner changed before the offer was accepted, owner left unchanged",
				zap.String("assetID", asset.ID.String()))
		}

		if _, err := tx.DeactivateActiveListingsForAsset(ctx, asset.ID); err != nil {
			return err
		}

		_, _, err = tx.CreateTransaction(ctx, store.CreateTransactionInput{
			AssetID:         uuidPtr(asset.ID),
			FromAddress:     actor,
			ToAddress:       onChain.Offeror,
			Kind:            schema.TransactionKindOfferAccepted,
			PriceMinorUnits: strPtr(onChain.Amount.String()),
			ChainTxHash:     strPtr(r.txHash),
			LogIndex:        logIndex(accepted),
		})
		return err
	})

	outcome := r.outcome(synced)
	r.succeed(ctx)
	return &outcome, nil
}

// CancelOffer withdraws the caller's offer. An offer that is already inactive in the
// mirror or on the offer book is left as is and reported as a successful no-op.
func (s *service) CancelOffer(ctx context.Context, input CancelOfferInput) (*CancelOfferResult, error) {
	signer, actor, err := s.signer()
	if err != nil {
		return nil, err
	}

	offer, err := s.loadOffer(ctx, input.OfferID)
	if err != nil {
		return nil, err
	}
	if !offer.Active {
		return &CancelOfferResult{Outcome: Outcome{MirrorSynced: true}, AlreadyInactive: true}, nil
	}
	if !domain.SameAddress(offer.OffererAddress, actor) {
		return nil, domain.ErrNotOfferer
	}

	chainOfferID, err := parseChainID("offer id", offer.ChainOfferID)
	if err != nil {
		return nil, err
	}
	onChain, err := s.chain.GetOffer(ctx, chainOfferID)
	if err != nil {
		return nil, err
	}
	if !onChain.Active {
		synced := true
		if _, err := s.store.DeactivateOfferByChainID(ctx, offer.ChainOfferID); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("%w: %w", domain.ErrMirrorWriteFailure, err),
				zap.String("chainOfferID", offer.ChainOfferID))
			synced = false
		}
		return &CancelOfferResult{Outcome: Outcome{MirrorSynced: synced}, AlreadyInactive: true}, nil
	}

	r, err := s.begin(ctx, schema.IntentKindCancelOffer, signer, input.RequestID, offerArgs{
		AssetID:      offer.AssetID.String(),
		ChainOfferID: offer.ChainOfferID,
	})
	if err != nil {
		return nil, err
	}

	receipt, err := r.submit(ctx, func() (*types.Transaction, error) {
		return s.chain.CancelOffer(ctx, signer, chainOfferID)
	})
	if err != nil {
		return nil, err
	}
	r.confirm(ctx)

	cancelled := r.receiptEvent(ctx, receipt, domain.EventTypeOfferCancelled)
	synced := r.mirror(ctx, func(tx store.Store) error {
		if _, err := tx.DeactivateOfferByChainID(ctx, offer.ChainOfferID); err != nil {
			return err
		}

		_, _, err := tx.CreateTransaction(ctx, store.CreateTransactionInput{
			AssetID:         uuidPtr(offer.AssetID),
			FromAddress:     actor,
			ToAddress:       s.chain.Contracts().OfferBook.Hex(),
			Kind:            schema.TransactionKindOfferCancelled,
			PriceMinorUnits: strPtr(offer.PriceMinorUnits),
			ChainTxHash:     strPtr(r.txHash),
			LogIndex:        logIndex(cancelled),
		})
		return err
	})

	r.succeed(ctx)
	return &CancelOfferResult{Outcome: r.outcome(synced)}, nil
}
