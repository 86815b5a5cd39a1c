package workflows

import (
	"context"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/metadata"
	"github.com/feral-file/ff-market/internal/metrics"
	"github.com/feral-file/ff-market/internal/providers/ethereum"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
)

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// ApplyChainEvent records the event in the chain event ledger and applies it to the mirror
	// in one database transaction. An event already in the ledger is a no-op.
	ApplyChainEvent(ctx context.Context, event *domain.MarketplaceEvent) (*ApplyResult, error)

	// SyncAssetOwner sets the mirrored owner of an asset to the owner reported by the collection
	SyncAssetOwner(ctx context.Context, assetID uuid.UUID) error

	// MarkIntentsReconciled marks the confirmed intents of a transaction as reconciled
	MarkIntentsReconciled(ctx context.Context, txHash string) (int64, error)
}

// ApplyResult reports what ApplyChainEvent did
type ApplyResult struct {
	// Applied is false when the event was already in the ledger
	Applied bool `json:"applied"`
	// DriftAssetID is set when the mirrored owner did not match the event's previous owner
	DriftAssetID *uuid.UUID `json:"drift_asset_id,omitempty"`
}

// ErrTypeInvalidEvent is the application error type of events that can never be applied
const ErrTypeInvalidEvent = "InvalidEvent"

// executor is the concrete implementation of Executor
type executor struct {
	store    store.Store
	chain    ethereum.EthereumClient
	metadata metadata.Resolver
	json     adapter.JSON
}

// NewExecutor creates a new executor instance. A nil metadata resolver leaves
// tokens minted outside the marketplace with only their token URI.
func NewExecutor(store store.Store, chain ethereum.EthereumClient, metadataResolver metadata.Resolver, jsonAdapter adapter.JSON) Executor {
	return &executor{
		store:    store,
		chain:    chain,
		metadata: metadataResolver,
		json:     jsonAdapter,
	}
}

// prefetched holds the reads an event needs from outside the database transaction
type prefetched struct {
	mintIntent    *mintPayload
	tokenMetadata *metadata.TokenMetadata
	txEvents      []domain.MarketplaceEvent
	chainListing  *domain.ChainListing
	chainOffer    *domain.ChainOffer
	chainOwner    string
}

// mintPayload is the subset of a mint intent's payload restored onto the asset
type mintPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MediaURI    string `json:"media_uri"`
}

// ApplyChainEvent records the event in the ledger and applies it to the mirror
func (e *executor) ApplyChainEvent(ctx context.Context, event *domain.MarketplaceEvent) (*ApplyResult, error) {
	if event == nil || !event.Valid() {
		return nil, temporal.NewNonRetryableApplicationError("invalid marketplace event", ErrTypeInvalidEvent, domain.ErrInvalidInput)
	}

	pre, err := e.prefetch(ctx, event)
	if err != nil {
		metrics.EventsApplied.WithLabelValues(string(event.EventType), "error").Inc()
		return nil, err
	}

	payload, err := e.json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	result := &ApplyResult{}
	applied, err := e.store.ApplyChainEvent(ctx, store.CreateChainEventInput{
		Chain:       string(event.Chain),
		TxHash:      event.TxHash,
		LogIndex:    int64(event.LogIndex), //nolint:gosec,G115 // log indexes are small
		BlockNumber: event.BlockNumber,
		EventName:   string(event.EventType),
		Payload:     payload,
	}, func(tx store.Store) error {
		return e.apply(ctx, tx, event, pre, result)
	})
	if err != nil {
		metrics.EventsApplied.WithLabelValues(string(event.EventType), "error").Inc()
		return nil, err
	}

	result.Applied = applied
	if !applied {
		metrics.EventsApplied.WithLabelValues(string(event.EventType), "duplicate").Inc()
		logger.InfoCtx(ctx, "Event already applied", zap.String("eventID", event.ID()))
		return result, nil
	}

	metrics.EventsApplied.WithLabelValues(string(event.EventType), "applied").Inc()
	logger.InfoCtx(ctx, "Event applied to mirror",
		zap.String("eventID", event.ID()),
		zap.String("type", string(event.EventType)))

	return result, nil
}

// prefetch performs the chain and intent reads an event needs so the database
// transaction never waits on RPC
func (e *executor) prefetch(ctx context.Context, event *domain.MarketplaceEvent) (*prefetched, error) {
	pre := &prefetched{}

	switch event.EventType {
	case domain.EventTypeMinted:
		intent, err := e.store.GetIntentByTxHash(ctx, schema.IntentKindMint, event.TxHash)
		if err != nil {
			return nil, fmt.Errorf("failed to get mint intent: %w", err)
		}
		if intent != nil {
			var payload mintPayload
			if err := e.json.Unmarshal(intent.Payload, &payload); err != nil {
				logger.WarnCtx(ctx, "Ignoring unreadable mint intent payload",
					zap.String("intentID", intent.ID), zap.Error(err))
			} else {
				pre.mintIntent = &payload
			}
		}
		if pre.mintIntent == nil && e.metadata != nil && event.TokenURI != "" {
			md, err := e.metadata.Resolve(ctx, event.TokenURI)
			if err != nil {
				// the asset keeps its token URI; metadata hosts can be down for good
				logger.WarnCtx(ctx, "Failed to resolve token metadata",
					zap.String("tokenURI", event.TokenURI), zap.Error(err))
			} else {
				pre.tokenMetadata = md
			}
		}

	case domain.EventTypeTransfer:
		events, err := e.chain.GetTransactionEvents(ctx, event.TxHash)
		if err != nil {
			return nil, err
		}
		pre.txEvents = events

	case domain.EventTypeSold:
		listing, err := e.store.GetListingByChainID(ctx, event.ListingID)
		if err != nil {
			return nil, fmt.Errorf("failed to get listing: %w", err)
		}
		if listing == nil {
			id, err := parseUint(event.ListingID)
			if err != nil {
				return nil, err
			}
			if pre.chainListing, err = e.chain.GetListing(ctx, id); err != nil {
				return nil, err
			}
		}

	case domain.EventTypeOfferMade:
		asset, err := e.store.GetAssetByToken(ctx, domain.NormalizeAddress(event.NFTAddress), event.TokenID)
		if err != nil {
			return nil, fmt.Errorf("failed to get asset: %w", err)
		}
		if asset == nil {
			id, err := parseUint(event.TokenID)
			if err != nil {
				return nil, err
			}
			if pre.chainOwner, err = e.chain.OwnerOf(ctx, id); err != nil {
				return nil, err
			}
		}

	case domain.EventTypeOfferAccepted:
		offer, err := e.store.GetOfferByChainID(ctx, event.OfferID)
		if err != nil {
			return nil, fmt.Errorf("failed to get offer: %w", err)
		}
		if offer == nil {
			id, err := parseUint(event.OfferID)
			if err != nil {
				return nil, err
			}
			if pre.chainOffer, err = e.chain.GetOffer(ctx, id); err != nil {
				return nil, err
			}
		}
	}

	return pre, nil
}

// apply runs inside the ledger transaction
func (e *executor) apply(ctx context.Context, tx store.Store, event *domain.MarketplaceEvent, pre *prefetched, result *ApplyResult) error {
	switch event.EventType {
	case domain.EventTypeMinted:
		return e.applyMinted(ctx, tx, event, pre)
	case domain.EventTypeTransfer:
		return e.applyTransfer(ctx, tx, event, pre, result)
	case domain.EventTypeListed:
		return e.applyListed(ctx, tx, event)
	case domain.EventTypeSold:
		return e.applySold(ctx, tx, event, pre, result)
	case domain.EventTypeOfferMade:
		return e.applyOfferMade(ctx, tx, event, pre)
	case domain.EventTypeOfferAccepted:
		return e.applyOfferAccepted(ctx, tx, event, pre, result)
	case domain.EventTypeOfferCancelled:
		return e.applyOfferCancelled(ctx, tx, event)
	default:
		return temporal.NewNonRetryableApplicationError("unknown event type "+string(event.EventType), ErrTypeInvalidEvent, nil)
	}
}

func (e *executor) applyMinted(ctx context.Context, tx store.Store, event *domain.MarketplaceEvent, pre *prefetched) error {
	owner := domain.NormalizeAddress(*event.ToAddress)
	input := store.CreateAssetInput{
		ChainTokenID:    event.TokenID,
		ContractAddress: domain.NormalizeAddress(event.ContractAddress),
		OwnerAddress:    owner,
		MediaURI:        event.TokenURI,
		MetadataURI:     event.TokenURI,
	}
	if pre.mintIntent != nil {
		input.Name = pre.mintIntent.Name
		input.Description = pre.mintIntent.Description
		if pre.mintIntent.MediaURI != "" {
			input.MediaURI = pre.mintIntent.MediaURI
		}
	} else if md := pre.tokenMetadata; md != nil {
		input.Name = md.Name
		input.Description = md.Description
		if media := md.MediaURI(); media != "" {
			input.MediaURI = media
		}
	}

	asset, err := tx.CreateAsset(ctx, input)
	if err != nil {
		return err
	}

	return e.record(ctx, tx, event, asset.ID, domain.ETHEREUM_ZERO_ADDRESS, owner, schema.TransactionKindMint, nil)
}

func (e *executor) applyTransfer(ctx context.Context, tx store.Store, event *domain.MarketplaceEvent, pre *prefetched, result *ApplyResult) error {
	from := *event.FromAddress
	if domain.IsZeroAddress(from) {
		// the minted event carries the mint
		return nil
	}
	from = domain.NormalizeAddress(from)
	to := domain.NormalizeAddress(*event.ToAddress)
	collection := domain.NormalizeAddress(event.ContractAddress)

	asset, err := tx.GetAssetByToken(ctx, collection, event.TokenID)
	if err != nil {
		return err
	}
	if asset == nil {
		asset, err = tx.CreateAsset(ctx, store.CreateAssetInput{
			ChainTokenID:    event.TokenID,
			ContractAddress: collection,
			OwnerAddress:    to,
		})
		if err != nil {
			return err
		}
	} else if err := e.moveOwner(ctx, tx, asset, from, to, result); err != nil {
		return err
	}

	if _, err := tx.DeactivateActiveListingsForAsset(ctx, asset.ID); err != nil {
		return err
	}

	// sales and accepted offers record their own row for the same token movement
	for _, sibling := range pre.txEvents {
		if sibling.EventType == domain.EventTypeSold || sibling.EventType == domain.EventTypeOfferAccepted {
			return nil
		}
	}

	return e.record(ctx, tx, event, asset.ID, from, to, schema.TransactionKindTransfer, nil)
}

func (e *executor) applyListed(ctx context.Context, tx store.Store, event *domain.MarketplaceEvent) error {
	seller := domain.NormalizeAddress(*event.FromAddress)
	asset, err := e.assetFor(ctx, tx, event.NFTAddress, event.TokenID, seller)
	if err != nil {
		return err
	}

	if _, err := tx.CreateListing(ctx, store.CreateListingInput{
		ChainListingID:  event.ListingID,
		AssetID:         asset.ID,
		SellerAddress:   seller,
		PriceMinorUnits: event.Price,
	}); err != nil {
		return err
	}

	return e.record(ctx, tx, event, asset.ID, seller, domain.NormalizeAddress(event.ContractAddress), schema.TransactionKindListing, &event.Price)
}

func (e *executor) applySold(ctx context.Context, tx store.Store, event *domain.MarketplaceEvent, pre *prefetched, result *ApplyResult) error {
	buyer := domain.NormalizeAddress(*event.ToAddress)

	var seller, nft, tokenID string
	listing, err := tx.GetListingByChainID(ctx, event.ListingID)
	if err != nil {
		return err
	}
	var asset *schema.Asset
	if listing != nil {
		seller = listing.SellerAddress
		if asset, err = tx.GetAssetByID(ctx, listing.AssetID); err != nil {
			return err
		}
	} else if pre.chainListing != nil {
		seller = domain.NormalizeAddress(pre.chainListing.Seller)
		nft = pre.chainListing.NFT
		tokenID = pre.chainListing.TokenID.String()
		if asset, err = e.assetFor(ctx, tx, nft, tokenID, buyer); err != nil {
			return err
		}
	}
	if asset == nil {
		logger.WarnCtx(ctx, "Sold event for an unknown listing", zap.String("listingID", event.ListingID))
		return nil
	}

	if _, err := tx.DeactivateListingByChainID(ctx, event.ListingID); err != nil {
		return err
	}
	if seller != "" {
		if err := e.moveOwner(ctx, tx, asset, seller, buyer, result); err != nil {
			return err
		}
	}

	return e.record(ctx, tx, event, asset.ID, seller, buyer, schema.TransactionKindSale, &event.Price)
}

func (e *executor) applyOfferMade(ctx context.Context, tx store.Store, event *domain.MarketplaceEvent, pre *prefetched) error {
	offeror := domain.NormalizeAddress(*event.FromAddress)
	owner := pre.chainOwner
	asset, err := tx.GetAssetByToken(ctx, domain.NormalizeAddress(event.NFTAddress), event.TokenID)
	if err != nil {
		return err
	}
	if asset == nil {
		if owner == "" {
			return fmt.Errorf("owner of token %s was not prefetched", event.TokenID)
		}
		if asset, err = e.assetFor(ctx, tx, event.NFTAddress, event.TokenID, domain.NormalizeAddress(owner)); err != nil {
			return err
		}
	}

	if _, err := tx.CreateOffer(ctx, store.CreateOfferInput{
		ChainOfferID:    event.OfferID,
		AssetID:         asset.ID,
		OffererAddress:  offeror,
		PriceMinorUnits: event.Price,
	}); err != nil {
		return err
	}

	return e.record(ctx, tx, event, asset.ID, offeror, asset.OwnerAddress, schema.TransactionKindOffer, &event.Price)
}

func (e *executor) applyOfferAccepted(ctx context.Context, tx store.Store, event *domain.MarketplaceEvent, pre *prefetched, result *ApplyResult) error {
	seller := domain.NormalizeAddress(*event.FromAddress)

	var offeror string
	offer, err := tx.GetOfferByChainID(ctx, event.OfferID)
	if err != nil {
		return err
	}
	if offer != nil {
		offeror = offer.OffererAddress
	} else if pre.chainOffer != nil {
		offeror = domain.NormalizeAddress(pre.chainOffer.Offeror)
	}
	if offeror == "" {
		logger.WarnCtx(ctx, "Offer accepted for an unknown offer", zap.String("offerID", event.OfferID))
		return nil
	}

	asset, err := e.assetFor(ctx, tx, event.NFTAddress, event.TokenID, offeror)
	if err != nil {
		return err
	}

	if _, err := tx.DeactivateOfferByChainID(ctx, event.OfferID); err != nil {
		return err
	}
	if err := e.moveOwner(ctx, tx, asset, seller, offeror, result); err != nil {
		return err
	}
	if _, err := tx.DeactivateActiveListingsForAsset(ctx, asset.ID); err != nil {
		return err
	}

	return e.record(ctx, tx, event, asset.ID, seller, offeror, schema.TransactionKindOfferAccepted, &event.Price)
}

func (e *executor) applyOfferCancelled(ctx context.Context, tx store.Store, event *domain.MarketplaceEvent) error {
	offer, err := tx.GetOfferByChainID(ctx, event.OfferID)
	if err != nil {
		return err
	}
	if _, err := tx.DeactivateOfferByChainID(ctx, event.OfferID); err != nil {
		return err
	}
	if offer == nil {
		return nil
	}

	return e.record(ctx, tx, event, offer.AssetID, offer.OffererAddress,
		domain.NormalizeAddress(event.ContractAddress), schema.TransactionKindOfferCancelled, &offer.PriceMinorUnits)
}

// assetFor returns the mirrored asset of a collection token, creating a bare row owned by
// owner when the mint was never mirrored
func (e *executor) assetFor(ctx context.Context, tx store.Store, nft, tokenID, owner string) (*schema.Asset, error) {
	collection := domain.NormalizeAddress(nft)
	asset, err := tx.GetAssetByToken(ctx, collection, tokenID)
	if err != nil || asset != nil {
		return asset, err
	}
	return tx.CreateAsset(ctx, store.CreateAssetInput{
		ChainTokenID:    tokenID,
		ContractAddress: collection,
		OwnerAddress:    owner,
	})
}

// moveOwner applies a conditional owner change. A mirror that already shows the new owner
// is fine; any other mismatch is flagged as drift.
func (e *executor) moveOwner(ctx context.Context, tx store.Store, asset *schema.Asset, from, to string, result *ApplyResult) error {
	if domain.SameAddress(asset.OwnerAddress, to) {
		return nil
	}
	updated, err := tx.UpdateAssetOwner(ctx, asset.ID, from, to)
	if err != nil {
		return err
	}
	if !updated {
		logger.WarnCtx(ctx, "Mirrored owner drifted from chain",
			zap.String("assetID", asset.ID.String()),
			zap.String("mirrorOwner", asset.OwnerAddress),
			zap.String("expectedOwner", from))
		id := asset.ID
		result.DriftAssetID = &id
	}
	return nil
}

// record appends the transaction row of an event
func (e *executor) record(ctx context.Context, tx store.Store, event *domain.MarketplaceEvent, assetID uuid.UUID, from, to string, kind schema.TransactionKind, price *string) error {
	txHash := event.TxHash
	logIndex := int64(event.LogIndex) //nolint:gosec,G115 // log indexes are small
	_, _, err := tx.CreateTransaction(ctx, store.CreateTransactionInput{
		AssetID:         &assetID,
		FromAddress:     from,
		ToAddress:       to,
		Kind:            kind,
		PriceMinorUnits: price,
		ChainTxHash:     &txHash,
		LogIndex:        &logIndex,
	})
	return err
}

// SyncAssetOwner sets the mirrored owner to the collection's owner
func (e *executor) SyncAssetOwner(ctx context.Context, assetID uuid.UUID) error {
	asset, err := e.store.GetAssetByID(ctx, assetID)
	if err != nil {
		return fmt.Errorf("failed to get asset: %w", err)
	}
	if asset == nil {
		return temporal.NewNonRetryableApplicationError("asset not found", ErrTypeInvalidEvent, domain.ErrAssetNotFound)
	}

	tokenID, err := parseUint(asset.ChainTokenID)
	if err != nil {
		return err
	}
	owner, err := e.chain.OwnerOf(ctx, tokenID)
	if err != nil {
		return err
	}
	owner = domain.NormalizeAddress(owner)
	if domain.SameAddress(owner, asset.OwnerAddress) {
		return nil
	}

	updated, err := e.store.UpdateAssetOwner(ctx, asset.ID, asset.OwnerAddress, owner)
	if err != nil {
		return fmt.Errorf("failed to sync asset owner: %w", err)
	}
	if !updated {
		// a concurrent write moved it; retry with the fresh row
		return fmt.Errorf("asset %s owner changed while syncing", asset.ID)
	}

	logger.InfoCtx(ctx, "Repaired mirrored owner",
		zap.String("assetID", asset.ID.String()),
		zap.String("from", asset.OwnerAddress),
		zap.String("to", owner))
	return nil
}

// MarkIntentsReconciled marks the confirmed intents of a transaction reconciled
func (e *executor) MarkIntentsReconciled(ctx context.Context, txHash string) (int64, error) {
	count, err := e.store.MarkIntentsReconciled(ctx, txHash)
	if err != nil {
		return 0, fmt.Errorf("failed to mark intents reconciled: %w", err)
	}
	if count > 0 {
		metrics.IntentsReconciled.Add(float64(count))
	}
	return count, nil
}

func parseUint(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, temporal.NewNonRetryableApplicationError("invalid chain id "+s, ErrTypeInvalidEvent, domain.ErrInvalidInput)
	}
	return v, nil
}
