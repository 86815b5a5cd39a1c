package marketplace

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/metrics"
	"github.com/feral-file/ff-market/internal/store/schema"
)

// Phase is a user-visible workflow phase
type Phase string

const (
	PhaseSubmitted  Phase = "submitted"
	PhaseConfirming Phase = "confirming"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

// StatusUpdate is a transient notification about a running workflow
type StatusUpdate struct {
	IntentID string            `json:"intent_id"`
	Workflow schema.IntentKind `json:"workflow"`
	Phase    Phase             `json:"phase"`
	TxHash   string            `json:"tx_hash,omitempty"`
	Error    string            `json:"error,omitempty"`
	At       time.Time         `json:"at"`
}

// StatusReporter receives workflow phase changes
//
//go:generate mockgen -source=reporter.go -destination=../mocks/status_reporter.go -package=mocks -mock_names=StatusReporter=MockStatusReporter
type StatusReporter interface {
	Report(ctx context.Context, update StatusUpdate)
}

type logReporter struct{}

// NewLogReporter returns a reporter that logs and counts phase changes
func NewLogReporter() StatusReporter {
	return logReporter{}
}

func (logReporter) Report(ctx context.Context, update StatusUpdate) {
	metrics.WorkflowPhases.WithLabelValues(string(update.Workflow), string(update.Phase)).Inc()

	fields := []zap.Field{
		zap.String("intentID", update.IntentID),
		zap.String("workflow", string(update.Workflow)),
		zap.String("phase", string(update.Phase)),
	}
	if update.TxHash != "" {
		fields = append(fields, zap.String("txHash", update.TxHash))
	}

	if update.Phase == PhaseFailed {
		logger.WarnCtx(ctx, "Workflow failed", append(fields, zap.String("error", update.Error))...)
		return
	}
	logger.InfoCtx(ctx, "Workflow status", fields...)
}

// Reporters fans a status update out to several reporters
type Reporters []StatusReporter

func (r Reporters) Report(ctx context.Context, update StatusUpdate) {
	for _, reporter := range r {
		reporter.Report(ctx, update)
	}
}
