package marketplace

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
)

type mintArgs struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MediaURI    string `json:"media_uri"`
}

// Mint uploads media, mints a token pointing at it and mirrors the new asset.
// The media stays uploaded when a later step fails.
func (s *service) Mint(ctx context.Context, input MintInput) (*MintResult, error) {
	signer, actor, err := s.signer()
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	uploaded, err := s.uploader.Upload(ctx, actor, input.Media)
	if err != nil {
		return nil, err
	}

	r, err := s.begin(ctx, schema.IntentKindMint, signer, input.RequestID, mintArgs{
		Name:        name,
		Description: input.Description,
		MediaURI:    uploaded.URL,
	})
	if err != nil {
		return nil, err
	}

	receipt, err := r.submit(ctx, func() (*types.Transaction, error) {
		return s.chain.Mint(ctx, signer, actor, uploaded.URL)
	})
	if err != nil {
		return nil, err
	}
	r.confirm(ctx)

	result := &MintResult{MediaURL: uploaded.URL}
	minted := r.receiptEvent(ctx, receipt, domain.EventTypeMinted)
	if minted == nil {
		result.Outcome = r.outcome(false)
		r.succeed(ctx)
		return result, nil
	}
	result.TokenID = minted.TokenID

	synced := r.mirror(ctx, func(tx store.Store) error {
		asset, err := tx.CreateAsset(ctx, store.CreateAssetInput{
			ChainTokenID:    minted.TokenID,
			ContractAddress: s.chain.Contracts().Collection.Hex(),
			OwnerAddress:    actor,
			Name:            name,
			Description:     input.Description,
			MediaURI:        uploaded.URL,
			MetadataURI:     uploaded.URL,
		})
		if err != nil {
			return err
		}
		result.Asset = asset

		_, _, err = tx.CreateTransaction(ctx, store.CreateTransactionInput{
			AssetID:     uuidPtr(asset.ID),
			FromAddress: domain.ETHEREUM_ZERO_ADDRESS,
			ToAddress:   actor,
			Kind:        schema.TransactionKindMint,
			ChainTxHash: strPtr(r.txHash),
			LogIndex:    logIndex(minted),
		})
		return err
	})
	if !synced {
		result.Asset = nil
	}

	logger.InfoCtx(ctx, "Minted asset",
		zap.String("tokenID", minted.TokenID),
		zap.String("owner", actor),
		zap.String("txHash", r.txHash))

	result.Outcome = r.outcome(synced)
	r.succeed(ctx)
	return result, nil
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
