package sweeper

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/metrics"
	"github.com/feral-file/ff-market/internal/providers/ethereum"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
)

const abandonedIntentError = "abandoned before submission"

// DriftSweeperConfig holds configuration for the drift sweeper
type DriftSweeperConfig struct {
	Interval       time.Duration // Pause between passes
	BatchSize      int           // Rows read per page
	WorkerPoolSize int           // Concurrent contract reads
	QueueSize      int
	StaleIntentAge time.Duration // Age after which pending and submitted intents are settled
}

// SweepReport counts what one pass changed
type SweepReport struct {
	ListingsChecked     int
	ListingsDeactivated int32
	OffersChecked       int
	OffersDeactivated   int32
	AssetsChecked       int
	OwnersRepaired      int32
	IntentsSettled      int32
	Errors              int32
}

// DriftSweeper compares the mirror with the contracts
type DriftSweeper interface {
	Sweeper
	// Sweep runs one pass: stale listings and offers are deactivated, owners re-read from the
	// collection and stuck intents settled from their receipts
	Sweep(ctx context.Context) (*SweepReport, error)
}

type driftSweeper struct {
	config    DriftSweeperConfig
	store     store.Store
	chain     ethereum.EthereumClient
	clock     adapter.Clock
	running   atomic.Bool
	stopOnce  sync.Once
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewDriftSweeper creates a new drift sweeper
func NewDriftSweeper(config DriftSweeperConfig, st store.Store, chain ethereum.EthereumClient, clock adapter.Clock) DriftSweeper {
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 8
	}
	if config.QueueSize <= 0 {
		config.QueueSize = config.BatchSize
	}
	if config.Interval <= 0 {
		config.Interval = 5 * time.Minute
	}
	if config.StaleIntentAge <= 0 {
		config.StaleIntentAge = 15 * time.Minute
	}
	return &driftSweeper{
		config:    config,
		store:     st,
		chain:     chain,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (s *driftSweeper) Name() string {
	return "drift-sweeper"
}

// Start runs a pass every interval until the context is cancelled or Stop is called
func (s *driftSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting drift sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	for {
		if _, err := s.Sweep(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Drift sweeper stopping due to context cancellation")
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Drift sweeper stop requested")
			return nil
		case <-s.clock.After(s.config.Interval):
		}
	}
}

// Stop signals the loop and waits for the current pass to finish
func (s *driftSweeper) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping drift sweeper")
	s.stopOnce.Do(func() { close(s.stopChan) })

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Drift sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Drift sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

func (s *driftSweeper) Sweep(ctx context.Context) (*SweepReport, error) {
	start := s.clock.Now()
	report := &SweepReport{}

	listings, err := s.activeListings(ctx)
	if err != nil {
		metrics.SweeperRuns.WithLabelValues("error").Inc()
		return nil, err
	}
	offers, err := s.activeOffers(ctx)
	if err != nil {
		metrics.SweeperRuns.WithLabelValues("error").Inc()
		return nil, err
	}
	assets, err := s.assets(ctx)
	if err != nil {
		metrics.SweeperRuns.WithLabelValues("error").Inc()
		return nil, err
	}
	report.ListingsChecked = len(listings)
	report.OffersChecked = len(offers)
	report.AssetsChecked = len(assets)

	pool := pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.QueueSize),
		pond.WithContext(ctx),
	)

	var listingsDeactivated, offersDeactivated, ownersRepaired, failures atomic.Int32
	for _, l := range listings {
		pool.Submit(func() {
			changed, err := s.checkListing(ctx, l)
			if err != nil {
				failures.Add(1)
				logger.ErrorCtx(ctx, err, zap.String("chainListingID", l.ChainListingID))
				return
			}
			if changed {
				listingsDeactivated.Add(1)
			}
		})
	}
	for _, o := range offers {
		pool.Submit(func() {
			changed, err := s.checkOffer(ctx, o)
			if err != nil {
				failures.Add(1)
				logger.ErrorCtx(ctx, err, zap.String("chainOfferID", o.ChainOfferID))
				return
			}
			if changed {
				offersDeactivated.Add(1)
			}
		})
	}
	for _, a := range assets {
		pool.Submit(func() {
			changed, err := s.checkOwner(ctx, a)
			if err != nil {
				failures.Add(1)
				logger.ErrorCtx(ctx, err, zap.String("assetID", a.ID.String()))
				return
			}
			if changed {
				ownersRepaired.Add(1)
			}
		})
	}
	pool.StopAndWait()

	settled, err := s.settleIntents(ctx)
	if err != nil {
		failures.Add(1)
		logger.ErrorCtx(ctx, err)
	}

	report.ListingsDeactivated = listingsDeactivated.Load()
	report.OffersDeactivated = offersDeactivated.Load()
	report.OwnersRepaired = ownersRepaired.Load()
	report.IntentsSettled = settled
	report.Errors = failures.Load()

	if ctx.Err() != nil {
		metrics.SweeperRuns.WithLabelValues("cancelled").Inc()
		return report, ctx.Err()
	}

	result := "ok"
	if report.Errors > 0 {
		result = "partial"
	}
	metrics.SweeperRuns.WithLabelValues(result).Inc()

	duration := s.clock.Since(start)
	metrics.SweeperDuration.Observe(duration.Seconds())

	logger.InfoCtx(ctx, "Drift sweep completed",
		zap.Duration("duration", duration),
		zap.Int("listings_checked", report.ListingsChecked),
		zap.Int32("listings_deactivated", report.ListingsDeactivated),
		zap.Int("offers_checked", report.OffersChecked),
		zap.Int32("offers_deactivated", report.OffersDeactivated),
		zap.Int("assets_checked", report.AssetsChecked),
		zap.Int32("owners_repaired", report.OwnersRepaired),
		zap.Int32("intents_settled", report.IntentsSettled),
		zap.Int32("errors", report.Errors),
	)

	return report, nil
}

// checkListing deactivates the mirror listing when the marketplace no longer lists it
func (s *driftSweeper) checkListing(ctx context.Context, l schema.Listing) (bool, error) {
	id, ok := new(big.Int).SetString(l.ChainListingID, 10)
	if !ok {
		return false, fmt.Errorf("invalid chain listing id %q", l.ChainListingID)
	}
	onChain, err := s.chain.GetListing(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to read listing: %w", err)
	}
	if onChain.Active {
		return false, nil
	}

	changed, err := s.store.DeactivateListing(ctx, l.ID)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate listing: %w", err)
	}
	if changed {
		metrics.SweeperDeactivated.WithLabelValues("listing").Inc()
		logger.InfoCtx(ctx, "Deactivated drifted listing", zap.String("chainListingID", l.ChainListingID))
	}
	return changed, nil
}

// checkOffer deactivates the mirror offer when the offer book no longer holds it
func (s *driftSweeper) checkOffer(ctx context.Context, o schema.Offer) (bool, error) {
	id, ok := new(big.Int).SetString(o.ChainOfferID, 10)
	if !ok {
		return false, fmt.Errorf("invalid chain offer id %q", o.ChainOfferID)
	}
	onChain, err := s.chain.GetOffer(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to read offer: %w", err)
	}
	if onChain.Active {
		return false, nil
	}

	changed, err := s.store.DeactivateOffer(ctx, o.ID)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate offer: %w", err)
	}
	if changed {
		metrics.SweeperDeactivated.WithLabelValues("offer").Inc()
		logger.InfoCtx(ctx, "Deactivated drifted offer", zap.String("chainOfferID", o.ChainOfferID))
	}
	return changed, nil
}

// checkOwner moves the mirror owner to the collection's owner. Listings of the previous
// owner can no longer be bought and are deactivated with it.
func (s *driftSweeper) checkOwner(ctx context.Context, a schema.Asset) (bool, error) {
	tokenID, ok := new(big.Int).SetString(a.ChainTokenID, 10)
	if !ok {
		return false, fmt.Errorf("invalid chain token id %q", a.ChainTokenID)
	}
	owner, err := s.chain.OwnerOf(ctx, tokenID)
	if err != nil {
		return false, fmt.Errorf("failed to read owner: %w", err)
	}
	owner = domain.NormalizeAddress(owner)
	if owner == a.OwnerAddress {
		return false, nil
	}

	var moved bool
	err = s.store.WithTx(ctx, func(tx store.Store) error {
		ok, err := tx.UpdateAssetOwner(ctx, a.ID, a.OwnerAddress, owner)
		if err != nil || !ok {
			return err
		}
		moved = true
		if _, err := tx.DeactivateActiveListingsForAsset(ctx, a.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to repair owner: %w", err)
	}
	if moved {
		metrics.SweeperDeactivated.WithLabelValues("owner").Inc()
		logger.InfoCtx(ctx, "Repaired drifted owner",
			zap.String("assetID", a.ID.String()),
			zap.String("from", a.OwnerAddress),
			zap.String("to", owner),
		)
	}
	return moved, nil
}

// settleIntents closes intents a crashed workflow left behind. Submitted intents take the
// outcome of their receipt; pending intents never reached the chain and are failed.
func (s *driftSweeper) settleIntents(ctx context.Context) (int32, error) {
	olderThan := s.clock.Now().Add(-s.config.StaleIntentAge)
	var settled int32

	submitted, err := s.store.ListStaleIntents(ctx, schema.IntentStatusSubmitted, olderThan, s.config.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list submitted intents: %w", err)
	}
	for _, intent := range submitted {
		if intent.ChainTxHash == nil {
			continue
		}
		status, err := s.chain.TransactionStatus(ctx, *intent.ChainTxHash)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to read transaction status", zap.Error(err), zap.String("intentID", intent.ID))
			continue
		}

		var next schema.IntentStatus
		var errMsg *string
		switch status {
		case domain.TxStatusSucceeded:
			next = schema.IntentStatusConfirmed
		case domain.TxStatusReverted:
			next = schema.IntentStatusFailed
			msg := domain.ErrRemoteRevert.Error()
			errMsg = &msg
		default:
			continue
		}
		if err := s.store.UpdateIntentStatus(ctx, intent.ID, next, intent.ChainTxHash, errMsg); err != nil {
			return settled, fmt.Errorf("failed to settle intent %s: %w", intent.ID, err)
		}
		settled++
	}

	pending, err := s.store.ListStaleIntents(ctx, schema.IntentStatusPending, olderThan, s.config.BatchSize)
	if err != nil {
		return settled, fmt.Errorf("failed to list pending intents: %w", err)
	}
	for _, intent := range pending {
		msg := abandonedIntentError
		if err := s.store.UpdateIntentStatus(ctx, intent.ID, schema.IntentStatusFailed, nil, &msg); err != nil {
			return settled, fmt.Errorf("failed to settle intent %s: %w", intent.ID, err)
		}
		settled++
	}

	if settled > 0 {
		metrics.SweeperDeactivated.WithLabelValues("intent").Add(float64(settled))
	}
	return settled, nil
}

// activeListings reads every active listing page by page. The full set is loaded before
// any row is deactivated so offsets stay stable.
func (s *driftSweeper) activeListings(ctx context.Context) ([]schema.Listing, error) {
	var all []schema.Listing
	for offset := uint64(0); ; offset += uint64(s.config.BatchSize) {
		page, err := retry(ctx, func() ([]schema.Listing, error) {
			return s.store.ListActiveListings(ctx, s.config.BatchSize, offset)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list active listings: %w", err)
		}
		all = append(all, page...)
		if len(page) < s.config.BatchSize {
			return all, nil
		}
	}
}

func (s *driftSweeper) activeOffers(ctx context.Context) ([]schema.Offer, error) {
	var all []schema.Offer
	for offset := uint64(0); ; offset += uint64(s.config.BatchSize) {
		page, err := retry(ctx, func() ([]schema.Offer, error) {
			return s.store.ListActiveOffers(ctx, s.config.BatchSize, offset)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list active offers: %w", err)
		}
		all = append(all, page...)
		if len(page) < s.config.BatchSize {
			return all, nil
		}
	}
}

func (s *driftSweeper) assets(ctx context.Context) ([]schema.Asset, error) {
	var all []schema.Asset
	for offset := uint64(0); ; offset += uint64(s.config.BatchSize) {
		page, err := retry(ctx, func() ([]store.AssetWithMarket, error) {
			rows, _, err := s.store.ListAssets(ctx, store.AssetFilter{
				Sort:   store.AssetSortOldest,
				Limit:  s.config.BatchSize,
				Offset: offset,
			})
			return rows, err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list assets: %w", err)
		}
		for _, row := range page {
			all = append(all, row.Asset)
		}
		if len(page) < s.config.BatchSize {
			return all, nil
		}
	}
}

// retry runs a store read with a short exponential backoff
func retry[T any](ctx context.Context, op func() (T, error)) (T, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 10 * time.Second

	return backoff.RetryWithData(op, backoff.WithContext(b, ctx))
}
