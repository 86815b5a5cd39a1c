package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
)

// ReconcileEvent applies a contract event to the mirror. Replays of the same event are
// absorbed by the chain event ledger.
func (w *workerCore) ReconcileEvent(ctx workflow.Context, event *domain.MarketplaceEvent) error {
	if event == nil || !event.Valid() {
		return temporal.NewNonRetryableApplicationError("invalid marketplace event", ErrTypeInvalidEvent, domain.ErrInvalidInput)
	}

	logger.InfoWf(ctx, "Reconciling marketplace event",
		zap.String("eventID", event.ID()),
		zap.String("type", string(event.EventType)),
		zap.Uint64("block", event.BlockNumber),
	)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: w.config.ActivityTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        time.Second,
			BackoffCoefficient:     2.0,
			MaximumInterval:        time.Minute,
			MaximumAttempts:        w.config.MaxAttempts,
			NonRetryableErrorTypes: []string{ErrTypeInvalidEvent},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Step 1: apply the event inside the ledger transaction
	var result ApplyResult
	err := workflow.ExecuteActivity(ctx, w.executor.ApplyChainEvent, event).Get(ctx, &result)
	if err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to apply chain event"),
			zap.Error(err),
			zap.String("eventID", event.ID()),
		)
		return err
	}

	// Step 2: the mirror disagreed with the chain about the previous owner
	if result.DriftAssetID != nil {
		err := workflow.ExecuteActivity(ctx, w.executor.SyncAssetOwner, *result.DriftAssetID).Get(ctx, nil)
		if err != nil {
			// the sweeper repairs owners too, the event itself is applied
			logger.WarnWf(ctx, "Failed to sync asset owner",
				zap.Error(err),
				zap.String("assetID", result.DriftAssetID.String()),
			)
		}
	}

	// Step 3: close the outbox entries of the transaction
	var reconciled int64
	err = workflow.ExecuteActivity(ctx, w.executor.MarkIntentsReconciled, event.TxHash).Get(ctx, &reconciled)
	if err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to mark intents reconciled"),
			zap.Error(err),
			zap.String("txHash", event.TxHash),
		)
		return err
	}

	logger.InfoWf(ctx, "Marketplace event reconciled",
		zap.String("eventID", event.ID()),
		zap.Bool("applied", result.Applied),
		zap.Int64("intentsReconciled", reconciled),
	)

	return nil
}
