package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/metrics"
	natsstream "github.com/feral-file/ff-market/internal/providers/jetstream"
	"github.com/feral-file/ff-market/internal/providers/temporal"
	"github.com/feral-file/ff-market/internal/workflows"
)

// Config holds the configuration for the event bridge
type Config struct {
	URL                string
	StreamName         string
	ConsumerName       string
	MaxReconnects      int
	ReconnectWait      time.Duration
	ConnectionName     string
	AckWaitTimeout     time.Duration
	MaxDeliver         int
	MaxAckPending      int
	TemporalTaskQueue  string
	WorkflowRunTimeout time.Duration
}

// Bridge defines the interface for the event bridge
type Bridge interface {
	// Run consumes the event stream until the context is cancelled or the connection closes
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc           adapter.NatsConn
	js           adapter.JetStream
	orchestrator temporal.TemporalOrchestrator
	json         adapter.JSON
	config       Config

	closeOnce sync.Once
	closed    chan struct{}
}

// NewBridge connects to NATS and returns a bridge forwarding events to the reconcile workflow
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	orchestrator temporal.TemporalOrchestrator,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	if cfg.WorkflowRunTimeout <= 0 {
		cfg.WorkflowRunTimeout = 30 * time.Minute
	}

	b := &bridge{
		orchestrator: orchestrator,
		json:         jsonAdapter,
		config:       cfg,
		closed:       make(chan struct{}),
	}

	connCfg := natsstream.Config{
		URL:            cfg.URL,
		StreamName:     cfg.StreamName,
		MaxReconnects:  cfg.MaxReconnects,
		ReconnectWait:  cfg.ReconnectWait,
		ConnectionName: cfg.ConnectionName,
	}
	nc, js, err := natsJS.Connect(cfg.URL, natsstream.ConnectionOptions(connCfg, b.markClosed)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	// The stream may not exist yet when the bridge starts before any emitter
	if err := js.EnsureStream(context.Background(), natsstream.StreamConfig(connCfg)); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	b.nc = nc
	b.js = js
	return b, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting event bridge", zap.String("stream", b.config.StreamName), zap.String("consumer", b.config.ConsumerName))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		MaxAckPending: b.config.MaxAckPending,
		FilterSubject: natsstream.SUBJECT_PREFIX + ".>",
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.InfoCtx(ctx, "Consumer created/retrieved",
		zap.String("consumer", consumerInfo.Name),
		zap.Uint64("pending", consumerInfo.NumPending),
	)

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.InfoCtx(ctx, "Started consuming messages")

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Shutting down event bridge")
			return ctx.Err()
		case <-b.closed:
			return errors.New("nats connection closed")
		case msg := <-msgChan:
			go b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage forwards a single message and settles it: Term for poison messages,
// Nak when the workflow could not be started, Ack otherwise
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	var deliveries uint64
	if metadata, err := msg.Metadata(); err == nil && metadata != nil {
		deliveries = metadata.NumDelivered
	}

	var event domain.MarketplaceEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal event"))
		b.settle(ctx, msg.Term, "terminated")
		return
	}

	if !event.Valid() {
		logger.WarnCtx(ctx, "Dropping invalid marketplace event",
			zap.String("type", string(event.EventType)),
			zap.String("txHash", event.TxHash),
		)
		b.settle(ctx, msg.Term, "terminated")
		return
	}

	logger.InfoCtx(ctx, "Received event",
		zap.String("chain", string(event.Chain)),
		zap.String("eventType", string(event.EventType)),
		zap.String("txHash", event.TxHash),
		zap.Uint("logIndex", event.LogIndex),
		zap.Uint64("deliveryCount", deliveries),
	)

	duplicate, err := b.forwardToWorker(ctx, &event)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to forward event to worker"))
		b.settle(ctx, msg.Nak, "nak")
		return
	}

	if duplicate {
		b.settle(ctx, msg.Ack, "duplicate")
		return
	}
	b.settle(ctx, msg.Ack, "forwarded")
}

func (b *bridge) settle(ctx context.Context, fn func() error, result string) {
	if err := fn(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to settle message"), zap.String("result", result))
	}
	metrics.BridgeMessages.WithLabelValues(result).Inc()
}

// WorkflowID is the reconcile workflow id of an event. Redelivered messages map to the same
// workflow so a running or finished reconciliation is not started twice.
func WorkflowID(event *domain.MarketplaceEvent) string {
	return "reconcile-" + event.ID()
}

// forwardToWorker starts the reconcile workflow of the event. It reports duplicate when a
// workflow with the same id already ran.
func (b *bridge) forwardToWorker(ctx context.Context, event *domain.MarketplaceEvent) (bool, error) {
	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})

	opt := client.StartWorkflowOptions{
		ID:                    WorkflowID(event),
		TaskQueue:             b.config.TemporalTaskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
		WorkflowRunTimeout:    b.config.WorkflowRunTimeout,
	}
	_, err := b.orchestrator.ExecuteWorkflow(ctx, opt, w.ReconcileEvent, event)
	if err != nil {
		var started *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &started) {
			logger.InfoCtx(ctx, "Reconcile workflow already started", zap.String("workflowID", opt.ID))
			return true, nil
		}
		return false, fmt.Errorf("failed to execute workflow: %w", err)
	}

	logger.InfoCtx(ctx, "Event forwarded to worker",
		zap.String("workflowID", opt.ID),
		zap.String("eventType", string(event.EventType)),
	)

	return false, nil
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc != nil {
		b.nc.Close()
	}
	b.markClosed()
}

func (b *bridge) markClosed() {
	b.closeOnce.Do(func() { close(b.closed) })
}
