package marketplace

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/metrics"
	"github.com/feral-file/ff-market/internal/providers/ethereum"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/store/schema"
)

// run tracks one workflow execution and its outbox intent
type run struct {
	s      *service
	kind   schema.IntentKind
	intent *schema.Intent
	from   common.Address
	txHash string
}

// idempotencyDocument is hashed into the intent's idempotency key
type idempotencyDocument struct {
	Kind      schema.IntentKind `json:"kind"`
	Actor     string            `json:"actor"`
	RequestID string            `json:"request_id"`
	Args      interface{}       `json:"args"`
}

// begin appends a pending intent to the outbox. A request id that was already used by the
// same actor for the same workflow and arguments yields ErrDuplicateRequest, unless that
// intent failed, in which case the store reopens it and the workflow runs again.
func (s *service) begin(ctx context.Context, kind schema.IntentKind, signer ethereum.Signer, requestID string, args interface{}) (*run, error) {
	actor := strings.ToLower(signer.Address().Hex())
	id := ulid.MustNew(ulid.Timestamp(s.clock.Now()), ulid.DefaultEntropy()).String()
	if requestID == "" {
		requestID = id
	}

	key, err := s.hasher.Digest(idempotencyDocument{
		Kind:      kind,
		Actor:     actor,
		RequestID: requestID,
		Args:      args,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to derive idempotency key: %w", err)
	}

	payload, err := s.json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal intent payload: %w", err)
	}

	intent, created, err := s.store.CreateIntent(ctx, store.CreateIntentInput{
		ID:             id,
		Kind:           kind,
		IdempotencyKey: key,
		ActorAddress:   actor,
		Payload:        payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record intent: %w", err)
	}
	if !created {
		return nil, fmt.Errorf("%w: intent %s", domain.ErrDuplicateRequest, intent.ID)
	}

	logger.DebugCtx(ctx, "Intent recorded", zap.String("intentID", intent.ID), zap.String("kind", string(kind)))

	return &run{s: s, kind: kind, intent: intent, from: signer.Address()}, nil
}

// submit sends one chain transaction and waits for a successful receipt. A send failure or
// a revert marks the intent failed; every error is returned unchanged.
func (r *run) submit(ctx context.Context, send func() (*types.Transaction, error)) (*types.Receipt, error) {
	tx, err := send()
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	r.txHash = tx.Hash().Hex()
	r.setStatus(ctx, schema.IntentStatusSubmitted, nil)
	r.report(ctx, PhaseSubmitted, "")
	r.report(ctx, PhaseConfirming, "")

	receipt, err := r.s.chain.WaitForReceipt(ctx, r.from, tx)
	if err != nil {
		if errors.Is(err, domain.ErrRemoteRevert) {
			return nil, r.fail(ctx, err)
		}
		// the transaction may still be mined, so the intent stays submitted and the
		// sweeper settles it from its receipt
		r.report(ctx, PhaseFailed, err.Error())
		return nil, err
	}
	return receipt, nil
}

// confirm records that every chain step succeeded
func (r *run) confirm(ctx context.Context) {
	r.setStatus(ctx, schema.IntentStatusConfirmed, nil)
}

// fail marks the intent failed, reports it and returns err
func (r *run) fail(ctx context.Context, err error) error {
	msg := err.Error()
	r.setStatus(ctx, schema.IntentStatusFailed, &msg)
	r.report(ctx, PhaseFailed, msg)
	return err
}

// succeed reports the end of the workflow
func (r *run) succeed(ctx context.Context) {
	r.report(ctx, PhaseSucceeded, "")
}

// mirror applies the mirror writes in one database transaction. A failure is logged as
// a mirror write failure and never returned; the event pipeline repairs the rows later.
func (r *run) mirror(ctx context.Context, apply func(store.Store) error) bool {
	err := r.s.store.WithTx(ctx, apply)
	if err == nil {
		return true
	}

	metrics.MirrorWriteFailures.WithLabelValues(string(r.kind)).Inc()
	logger.ErrorCtx(ctx, errors.Join(domain.ErrMirrorWriteFailure, err),
		zap.String("intentID", r.intent.ID),
		zap.String("kind", string(r.kind)),
		zap.String("txHash", r.txHash))
	return false
}

func (r *run) outcome(synced bool) Outcome {
	return Outcome{IntentID: r.intent.ID, TxHash: r.txHash, MirrorSynced: synced}
}

// setStatus updates the outbox row. Outbox failures are logged so they never mask the
// chain result.
func (r *run) setStatus(ctx context.Context, status schema.IntentStatus, errMsg *string) {
	var txHash *string
	if r.txHash != "" {
		txHash = &r.txHash
	}
	if err := r.s.store.UpdateIntentStatus(ctx, r.intent.ID, status, txHash, errMsg); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to update intent status: %w", err),
			zap.String("intentID", r.intent.ID),
			zap.String("status", string(status)))
	}
}

func (r *run) report(ctx context.Context, phase Phase, errMsg string) {
	r.s.reporter.Report(ctx, StatusUpdate{
		IntentID: r.intent.ID,
		Workflow: r.kind,
		Phase:    phase,
		TxHash:   r.txHash,
		Error:    errMsg,
		At:       r.s.clock.Now(),
	})
}

// receiptEvent finds an event in the receipt. A missing event after a successful chain
// call is logged; the event pipeline still sees the chain effect.
func (r *run) receiptEvent(ctx context.Context, receipt *types.Receipt, eventType domain.EventType) *domain.MarketplaceEvent {
	event, err := ethereum.FindReceiptEvent(r.s.cfg.Chain, receipt, eventType)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("intentID", r.intent.ID))
		return nil
	}
	return event
}

func logIndex(event *domain.MarketplaceEvent) *int64 {
	if event == nil {
		return nil
	}
	idx := int64(event.LogIndex) //nolint:gosec,G115 // log indexes are small
	return &idx
}

func strPtr(s string) *string {
	return &s
}
