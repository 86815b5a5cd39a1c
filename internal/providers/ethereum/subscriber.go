package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/messaging"
)

// SubscriberConfig holds the configuration for contract event subscription
type SubscriberConfig struct {
	ChainID          domain.Chain
	CatchUpBatchSize uint64        // blocks per FilterLogs call while catching up
	MaxReconnectWait time.Duration // upper bound of the reconnect backoff
}

type ethSubscriber struct {
	client EthereumClient
	cfg    SubscriberConfig
}

// NewSubscriber creates a new contract event subscriber
func NewSubscriber(cfg SubscriberConfig, client EthereumClient) messaging.Subscriber {
	if cfg.CatchUpBatchSize == 0 {
		cfg.CatchUpBatchSize = 5_000
	}
	if cfg.MaxReconnectWait <= 0 {
		cfg.MaxReconnectWait = 30 * time.Second
	}
	return &ethSubscriber{client: client, cfg: cfg}
}

// SubscribeEvents replays events from fromBlock up to the chain head and then follows
// new logs. A dropped subscription is re-established with exponential backoff and
// resumes from the last block seen, so handlers may observe an event twice.
func (s *ethSubscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	next := fromBlock

	b := backoff.NewExponentialBackOff()
	b.MaxInterval = s.cfg.MaxReconnectWait
	b.MaxElapsedTime = 0

	for {
		progressed, err := s.follow(ctx, next, handler, func(block uint64) { next = block })
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if progressed {
			b.Reset()
		}

		wait := b.NextBackOff()
		logger.WarnCtx(ctx, "Ethereum subscription dropped, reconnecting",
			zap.Error(err),
			zap.Uint64("fromBlock", next),
			zap.Duration("wait", wait))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// follow catches up from fromBlock and then streams logs until the subscription fails.
// mark records the block the next attempt should resume from.
func (s *ethSubscriber) follow(ctx context.Context, fromBlock uint64, handler messaging.EventHandler, mark func(uint64)) (bool, error) {
	progressed := false

	if fromBlock > 0 {
		latest, err := s.GetLatestBlock(ctx)
		if err != nil {
			return false, err
		}

		for from := fromBlock; from <= latest; from += s.cfg.CatchUpBatchSize {
			to := min(from+s.cfg.CatchUpBatchSize-1, latest)
			events, err := s.client.GetMarketplaceEvents(ctx, from, to)
			if err != nil {
				return progressed, fmt.Errorf("failed to catch up blocks %d-%d: %w", from, to, err)
			}
			for i := range events {
				s.handle(ctx, &events[i], handler)
			}
			mark(to + 1)
			progressed = true
		}
		fromBlock = latest + 1
	}

	query := ethereum.FilterQuery{
		Addresses: s.client.Contracts().Addresses(),
		Topics:    [][]common.Hash{eventSignatures()},
	}
	if fromBlock > 0 {
		query.FromBlock = new(big.Int).SetUint64(fromBlock)
	}

	logs := make(chan types.Log)
	sub, err := s.client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return progressed, fmt.Errorf("%w: %v", domain.ErrSubscriptionFailed, err)
	}
	defer func() {
		logger.InfoCtx(ctx, "Unsubscribing from ethereum events logs")
		sub.Unsubscribe()
	}()

	logger.InfoCtx(ctx, "Subscribed to marketplace contract events",
		zap.String("chain", string(s.cfg.ChainID)),
		zap.Uint64("fromBlock", fromBlock))

	for {
		select {
		case <-ctx.Done():
			return progressed, ctx.Err()
		case err := <-sub.Err():
			return progressed, fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			event, err := s.client.ParseEventLog(ctx, vLog)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error parsing log"))
				continue
			}
			if event == nil {
				continue
			}

			s.handle(ctx, event, handler)
			mark(vLog.BlockNumber)
			progressed = true
		}
	}
}

func (s *ethSubscriber) handle(ctx context.Context, event *domain.MarketplaceEvent, handler messaging.EventHandler) {
	if !event.Valid() {
		logger.WarnCtx(ctx, "Skipping invalid marketplace event",
			zap.String("id", event.ID()),
			zap.String("type", string(event.EventType)))
		return
	}
	if err := handler(event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Error handling event"), zap.String("id", event.ID()))
	}
}

// GetLatestBlock returns the latest block number
func (s *ethSubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	number, err := s.client.LatestBlock(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return number, nil
}

// Close closes the connection
func (s *ethSubscriber) Close() {
	if s.client == nil {
		return
	}

	s.client.Close()
	logger.Info("Ethereum WebSocket connection closed")
}
