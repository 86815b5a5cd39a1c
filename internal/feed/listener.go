package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/metrics"
)

// Listener delivers Postgres notifications of one channel
//
//go:generate mockgen -source=listener.go -destination=../mocks/feed_listener.go -package=mocks -mock_names=Listener=MockFeedListener
type Listener interface {
	// Listen blocks until ctx is done. onConnect runs after every successful LISTEN, before
	// the notifications of that connection are delivered to onNotify.
	Listen(ctx context.Context, onConnect func(ctx context.Context), onNotify func(ctx context.Context, payload string)) error
}

// ListenerConfig holds the notification connection settings
type ListenerConfig struct {
	DSN     string
	Channel string
	// MaxWait caps the reconnect backoff
	MaxWait time.Duration
}

type pgListener struct {
	cfg    ListenerConfig
	dialer adapter.PGNotifyDialer
	clock  adapter.Clock
}

// NewPGListener creates a listener holding a single dedicated connection
func NewPGListener(cfg ListenerConfig, dialer adapter.PGNotifyDialer, clock adapter.Clock) Listener {
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = 30 * time.Second
	}
	return &pgListener{cfg: cfg, dialer: dialer, clock: clock}
}

func (l *pgListener) Listen(ctx context.Context, onConnect func(ctx context.Context), onNotify func(ctx context.Context, payload string)) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = l.cfg.MaxWait
	b.MaxElapsedTime = 0

	for {
		err := l.session(ctx, b, onConnect, onNotify)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		wait := b.NextBackOff()
		metrics.FeedReconnects.Inc()
		logger.WarnCtx(ctx, "Feed listener disconnected, reconnecting",
			zap.Error(err),
			zap.String("channel", l.cfg.Channel),
			zap.Duration("retryIn", wait),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(wait):
		}
	}
}

// session runs one connection until it fails
func (l *pgListener) session(ctx context.Context, b backoff.BackOff, onConnect func(ctx context.Context), onNotify func(ctx context.Context, payload string)) error {
	conn, err := l.dialer.Connect(ctx, l.cfg.DSN)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = conn.Close(closeCtx)
	}()

	if err := conn.Listen(ctx, l.cfg.Channel); err != nil {
		return err
	}
	b.Reset()
	logger.InfoCtx(ctx, "Listening for transaction inserts", zap.String("channel", l.cfg.Channel))

	onConnect(ctx)

	for {
		payload, err := conn.WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			return fmt.Errorf("failed to wait for notification: %w", err)
		}
		onNotify(ctx, payload)
	}
}
