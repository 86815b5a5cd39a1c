package jetstream

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/domain"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/messaging"
)

// SUBJECT_PREFIX is the root of every marketplace event subject
const SUBJECT_PREFIX = "market.events"

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// DuplicateWindow is how long JetStream remembers message ids for deduplication
	DuplicateWindow time.Duration
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON

	closeOnce sync.Once
	closed    chan struct{}
}

// ConnectionOptions returns the nats options shared by the publisher and the bridge.
// onClosed runs once the connection is permanently closed.
func ConnectionOptions(cfg Config, onClosed func()) []nats.Option {
	return []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
			if onClosed != nil {
				onClosed()
			}
		}),
	}
}

// StreamConfig describes the stream holding marketplace events
func StreamConfig(cfg Config) jetstream.StreamConfig {
	window := cfg.DuplicateWindow
	if window <= 0 {
		window = 2 * time.Hour
	}
	return jetstream.StreamConfig{
		Name:       cfg.StreamName,
		Subjects:   []string{SUBJECT_PREFIX + ".>"},
		Storage:    jetstream.FileStorage,
		Retention:  jetstream.LimitsPolicy,
		Duplicates: window,
	}
}

// NewPublisher connects to NATS, ensures the event stream exists and returns a publisher
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	p := &publisher{
		streamName: cfg.StreamName,
		json:       jsonAdapter,
		closed:     make(chan struct{}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, ConnectionOptions(cfg, p.markClosed)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	if err := js.EnsureStream(ctx, StreamConfig(cfg)); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	p.nc = nc
	p.js = js
	return p, nil
}

// PublishEvent publishes a marketplace event to NATS JetStream. The event id is used as
// the message id so a replayed block range is dropped by the stream's duplicate window.
func (p *publisher) PublishEvent(ctx context.Context, event *domain.MarketplaceEvent) error {
	logger.DebugCtx(ctx, "Publishing NATS event", zap.String("id", event.ID()), zap.String("type", string(event.EventType)))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	_, err = p.js.Publish(ctx, Subject(event), data, jetstream.WithMsgID(event.ID()))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Subject builds the NATS subject of an event.
// Format: market.events.{chain}.{event_type}, e.g. market.events.eip155_42000.sold
func Subject(event *domain.MarketplaceEvent) string {
	chain := strings.ReplaceAll(string(event.Chain), ":", "_")
	return fmt.Sprintf("%s.%s.%s", SUBJECT_PREFIX, chain, event.EventType)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
	p.markClosed()
}

func (p *publisher) markClosed() {
	p.closeOnce.Do(func() { close(p.closed) })
}

// CloseChan returns a channel closed once the connection is gone
func (p *publisher) CloseChan() <-chan struct{} {
	return p.closed
}
