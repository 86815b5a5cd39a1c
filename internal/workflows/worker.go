package workflows

import (
	"time"

	"go.temporal.io/sdk/workflow"

	"github.com/feral-file/ff-market/internal/domain"
)

// WorkerCore defines the workflows that apply contract events to the mirror
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// ReconcileEvent applies one contract event to the mirror and marks the intents of its
	// transaction reconciled
	ReconcileEvent(ctx workflow.Context, event *domain.MarketplaceEvent) error
}

type WorkerCoreConfig struct {
	// ActivityTimeout bounds a single activity attempt
	ActivityTimeout time.Duration
	// MaxAttempts is the retry budget of each activity
	MaxAttempts int32
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	if config.ActivityTimeout <= 0 {
		config.ActivityTimeout = 2 * time.Minute
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 5
	}
	return &workerCore{
		executor: executor,
		config:   config,
	}
}
