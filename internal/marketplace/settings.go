package marketplace

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/store/schema"
)

// SETTINGS_CACHE_KEY stores the last marketplace settings read from the contract
const SETTINGS_CACHE_KEY = "marketplace_settings"

type feeArgs struct {
	FeeBasisPoints *uint64 `json:"fee_basis_points,omitempty"`
	FeeRecipient   *string `json:"fee_recipient,omitempty"`
}

// UpdateFeeSettings changes the marketplace fee and/or fee recipient. Only the configured
// administrator may call it; the contract's owner check remains the final authority.
func (s *service) UpdateFeeSettings(ctx context.Context, input FeeSettingsInput) (*FeeSettingsResult, error) {
	signer, actor, err := s.signer()
	if err != nil {
		return nil, err
	}
	if s.cfg.AdminAddress == "" || !domain.SameAddress(actor, s.cfg.AdminAddress) {
		return nil, domain.ErrNotAdmin
	}

	if input.FeeBasisPoints == nil && input.FeeRecipient == nil {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
	}
	if input.FeeBasisPoints != nil && *input.FeeBasisPoints > domain.MAX_FEE_BASIS_POINTS {
		return nil, fmt.Errorf("%w: %d basis points", domain.ErrInvalidFee, *input.FeeBasisPoints)
	}
	var recipient *string
	if input.FeeRecipient != nil {
		if !domain.IsValidAddress(*input.FeeRecipient) || domain.IsZeroAddress(*input.FeeRecipient) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, *input.FeeRecipient)
		}
		normalized := domain.NormalizeAddress(*input.FeeRecipient)
		recipient = &normalized
	}

	r, err := s.begin(ctx, schema.IntentKindUpdateFee, signer, input.RequestID, feeArgs{
		FeeBasisPoints: input.FeeBasisPoints,
		FeeRecipient:   recipient,
	})
	if err != nil {
		return nil, err
	}

	result := &FeeSettingsResult{IntentID: r.intent.ID}
	if input.FeeBasisPoints != nil {
		if _, err := r.submit(ctx, func() (*types.Transaction, error) {
			return s.chain.SetFee(ctx, signer, *input.FeeBasisPoints)
		}); err != nil {
			return nil, err
		}
		result.TxHashes = append(result.TxHashes, r.txHash)
	}
	if recipient != nil {
		if _, err := r.submit(ctx, func() (*types.Transaction, error) {
			return s.chain.SetFeeRecipient(ctx, signer, *recipient)
		}); err != nil {
			return nil, err
		}
		result.TxHashes = append(result.TxHashes, r.txHash)
	}
	r.confirm(ctx)
	r.succeed(ctx)

	settings, err := s.GetSettings(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to refresh marketplace settings", zap.Error(err))
	}
	result.Settings = settings

	return result, nil
}

// GetSettings reads the marketplace settings from the contract and caches them. When the
// contract cannot be reached the cached copy is returned instead.
func (s *service) GetSettings(ctx context.Context) (*domain.MarketplaceSettings, error) {
	settings, chainErr := s.chain.MarketplaceSettings(ctx)
	if chainErr == nil {
		if raw, err := s.json.Marshal(settings); err == nil {
			if err := s.store.SetKeyValue(ctx, SETTINGS_CACHE_KEY, string(raw)); err != nil {
				logger.WarnCtx(ctx, "Failed to cache marketplace settings", zap.Error(err))
			}
		}
		return settings, nil
	}

	cached, err := s.store.GetKeyValue(ctx, SETTINGS_CACHE_KEY)
	if err != nil || cached == "" {
		return nil, fmt.Errorf("failed to read marketplace settings: %w", chainErr)
	}

	var fallback domain.MarketplaceSettings
	if err := s.json.Unmarshal([]byte(cached), &fallback); err != nil {
		return nil, fmt.Errorf("failed to read marketplace settings: %w", chainErr)
	}

	logger.WarnCtx(ctx, "Serving cached marketplace settings", zap.Error(chainErr))
	return &fallback, nil
}
