package feed

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/api/shared/dto"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/marketplace"
	"github.com/feral-file/ff-market/internal/metrics"
	"github.com/feral-file/ff-market/internal/store"
	"github.com/feral-file/ff-market/internal/wallet"
)

// Config holds hub settings
type Config struct {
	ClientBufferSize int
	HistoryLimit     int
	DedupeSize       int
}

// Hub fans transaction inserts, workflow status and session changes out to websocket clients
type Hub struct {
	cfg      Config
	store    store.Store
	listener Listener

	mu      sync.RWMutex
	clients map[uuid.UUID]*Client

	seen    *lru.Cache[uuid.UUID, struct{}]
	lastSeq atomic.Int64
	// seeded is set once lastSeq reflects the table as of the first connection
	seeded atomic.Bool
}

// Client is one feed subscriber
type Client struct {
	ID uuid.UUID

	send      chan Message
	done      chan struct{}
	closeOnce sync.Once
	// transactions at or below minSeq were already delivered as history
	minSeq atomic.Int64
}

// Messages returns the client's outbound queue
func (c *Client) Messages() <-chan Message {
	return c.send
}

// Done is closed when the hub drops the client
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Wants reports whether msg is new to the client
func (c *Client) Wants(msg Message) bool {
	return msg.Transaction == nil || msg.Transaction.Seq > c.minSeq.Load()
}

func (c *Client) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// NewHub creates a hub. listener may be nil when only status and session messages are served.
func NewHub(cfg Config, st store.Store, listener Listener) (*Hub, error) {
	if cfg.ClientBufferSize <= 0 {
		cfg.ClientBufferSize = 64
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 50
	}
	if cfg.DedupeSize <= 0 {
		cfg.DedupeSize = 1024
	}

	seen, err := lru.New[uuid.UUID, struct{}](cfg.DedupeSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create dedupe cache: %w", err)
	}

	return &Hub{
		cfg:      cfg,
		store:    st,
		listener: listener,
		clients:  make(map[uuid.UUID]*Client),
		seen:     seen,
	}, nil
}

// Run listens for transaction inserts until ctx is done
func (h *Hub) Run(ctx context.Context) error {
	if h.listener == nil {
		<-ctx.Done()
		return ctx.Err()
	}
	return h.listener.Listen(ctx, h.onConnect, h.handleNotification)
}

// Register adds a client and returns up to limit recent transactions. Live transactions
// already covered by the returned history are not delivered again.
func (h *Hub) Register(ctx context.Context, limit int) (*Client, []dto.TransactionResponse, error) {
	client := &Client{
		ID:   uuid.New(),
		send: make(chan Message, h.cfg.ClientBufferSize),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()
	metrics.FeedClients.Inc()

	history, err := h.History(ctx, limit)
	if err != nil {
		h.Unregister(client)
		return nil, nil, err
	}
	for _, tx := range history {
		if tx.Seq > client.minSeq.Load() {
			client.minSeq.Store(tx.Seq)
		}
	}

	return client, history, nil
}

// Unregister removes a client. Safe to call more than once.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	_, ok := h.clients[client.ID]
	delete(h.clients, client.ID)
	h.mu.Unlock()

	if ok {
		metrics.FeedClients.Dec()
	}
	client.close()
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// History returns the latest transactions, capped at the configured history limit
func (h *Hub) History(ctx context.Context, limit int) ([]dto.TransactionResponse, error) {
	if limit <= 0 || limit > h.cfg.HistoryLimit {
		limit = h.cfg.HistoryLimit
	}
	items, err := h.store.ListRecentFeedItems(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed history: %w", err)
	}
	return dto.MapTransactions(items), nil
}

// Report implements marketplace.StatusReporter
func (h *Hub) Report(_ context.Context, update marketplace.StatusUpdate) {
	h.broadcast(Message{Type: MessageTypeStatus, Status: &update})
}

// PublishSession broadcasts a wallet session change
func (h *Hub) PublishSession(state wallet.SessionState) {
	h.broadcast(Message{Type: MessageTypeSession, Session: &state})
}

func (h *Hub) handleNotification(ctx context.Context, payload string) {
	id, err := uuid.Parse(payload)
	if err != nil {
		logger.WarnCtx(ctx, "Ignoring malformed feed notification", zap.String("payload", payload))
		return
	}
	if h.seen.Contains(id) {
		return
	}

	item, err := h.store.GetTransactionFeedItem(ctx, id)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to load transaction: %w", err), zap.String("id", payload))
		return
	}
	if item == nil {
		logger.WarnCtx(ctx, "Notified transaction not found", zap.String("id", payload))
		return
	}

	h.publish(*item)
}

// onConnect records the feed position on the first connection and back-fills on every later one
func (h *Hub) onConnect(ctx context.Context) {
	if !h.seeded.Load() {
		h.seed(ctx)
		return
	}
	h.backfill(ctx)
}

// seed moves lastSeq to the newest row so a later reconnect replays only what was missed
func (h *Hub) seed(ctx context.Context) {
	items, err := h.store.ListRecentFeedItems(ctx, 1)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to read feed position: %w", err))
		return
	}
	for _, item := range items {
		h.advance(item.Seq)
	}
	h.seeded.Store(true)
}

// backfill replays rows inserted while the listener was disconnected
func (h *Hub) backfill(ctx context.Context) {
	after := h.lastSeq.Load()
	for {
		items, err := h.store.ListFeedItemsAfter(ctx, after, h.cfg.HistoryLimit)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to backfill feed: %w", err), zap.Int64("afterSeq", after))
			return
		}
		for _, item := range items {
			h.publish(item)
			after = item.Seq
		}
		if len(items) < h.cfg.HistoryLimit {
			return
		}
	}
}

// advance moves lastSeq forward, never back
func (h *Hub) advance(seq int64) {
	for {
		last := h.lastSeq.Load()
		if seq <= last || h.lastSeq.CompareAndSwap(last, seq) {
			return
		}
	}
}

func (h *Hub) publish(item store.TransactionFeedItem) {
	if found, _ := h.seen.ContainsOrAdd(item.ID, struct{}{}); found {
		return
	}
	h.advance(item.Seq)

	tx := dto.MapTransaction(item)
	h.broadcast(Message{Type: MessageTypeTransaction, Transaction: &tx})
	if toast := toastFor(&tx); toast != nil {
		h.broadcast(Message{Type: MessageTypeToast, Transaction: &tx, Toast: toast})
	}
}

// broadcast queues msg on every client. A client whose queue is full is dropped.
func (h *Hub) broadcast(msg Message) {
	var slow []*Client

	h.mu.RLock()
	for _, client := range h.clients {
		if !client.Wants(msg) {
			continue
		}
		select {
		case client.send <- msg:
			metrics.FeedDelivered.Inc()
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		logger.Warn("Dropping slow feed client", zap.String("clientID", client.ID.String()))
		metrics.FeedDroppedClients.Inc()
		h.Unregister(client)
	}
}
