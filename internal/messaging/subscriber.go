package messaging

import (
	"context"

	"github.com/feral-file/ff-market/internal/domain"
)

// EventHandler is called when a new marketplace event is received
type EventHandler func(event *domain.MarketplaceEvent) error

// Subscriber defines the interface for subscribing to marketplace contract events
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEvents subscribes to collection, marketplace and offer book events
	// starting at fromBlock (0 for latest) and calls handler for each decoded event
	SubscribeEvents(ctx context.Context, fromBlock uint64, handler EventHandler) error

	// GetLatestBlock returns the latest block number
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Close closes the connection and cleans up resources
	Close()
}
