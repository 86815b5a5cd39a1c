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

type transferArgs struct {
	AssetID string `json:"asset_id"`
	TokenID string `json:"token_id"`
	To      string `json:"to"`
}

// Transfer sends the asset to another address and withdraws its active listing from the mirror
func (s *service) Transfer(ctx context.Context, input TransferInput) (*Outcome, error) {
	signer, actor, err := s.signer()
	if err != nil {
		return nil, err
	}

	if !domain.IsValidAddress(input.To) || domain.IsZeroAddress(input.To) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, input.To)
	}
	if domain.SameAddress(input.To, actor) {
		return nil, fmt.Errorf("%w: cannot transfer to yourself", domain.ErrInvalidAddress)
	}
	to := domain.NormalizeAddress(input.To)

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

	r, err := s.begin(ctx, schema.IntentKindTransfer, signer, input.RequestID, transferArgs{
		AssetID: asset.ID.String(),
		TokenID: asset.ChainTokenID,
		To:      to,
	})
	if err != nil {
		return nil, err
	}

	receipt, err := r.submit(ctx, func() (*types.Transaction, error) {
		return s.chain.TransferFrom(ctx, signer, actor, to, tokenID)
	})
	if err != nil {
		return nil, err
	}
	r.confirm(ctx)

	transferred := r.receiptEvent(ctx, receipt, domain.EventTypeTransfer)
	synced := r.mirror(ctx, func(tx store.Store) error {
		updated, err := tx.UpdateAssetOwner(ctx, asset.ID, actor, to)
		if err != nil {
			return err
		}
		if !updated {
			logger.WarnCtx(ctx, "Mirror owner was not the sender, owner left unchanged",
				zap.String("assetID", asset.ID.String()))
		}

		if _, err := tx.DeactivateActiveListingsForAsset(ctx, asset.ID); err != nil {
			return err
		}

		_, _, err = tx.CreateTransaction(ctx, store.CreateTransactionInput{
			AssetID:     uuidPtr(asset.ID),
			FromAddress: actor,
			ToAddress:   to,
			Kind:        schema.TransactionKindTransfer,
			ChainTxHash: strPtr(r.txHash),
			LogIndex:    logIndex(transferred),
		})
		return err
	})

	outcome := r.outcome(synced)
	r.succeed(ctx)
	return &outcome, nil
}
