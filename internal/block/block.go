package block

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/logger"
)

// Provider gives cached access to the chain head and to block timestamps.
// Every market event carries the timestamp of its block, and a batch of logs
// usually shares a handful of blocks, so timestamps are cached by number.
//
//go:generate mockgen -source=block.go -destination=../mocks/block_provider.go -package=mocks -mock_names=Provider=MockBlockProvider,Fetcher=MockBlockFetcher
type Provider interface {
	// GetLatestBlock returns the latest block number, potentially from cache
	GetLatestBlock(ctx context.Context) (uint64, error)

	// GetBlockTimestamp returns the timestamp of blockNumber, potentially from cache
	GetBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)
}

// Fetcher reads block information from the node
type Fetcher interface {
	FetchLatestBlock(ctx context.Context) (uint64, error)
	FetchBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)
}

// Config holds configuration for the Provider
type Config struct {
	// HeadTTL is how long the latest block number is served from cache
	HeadTTL time.Duration

	// StaleWindow is how long a cached head may still be served when the node is failing
	StaleWindow time.Duration

	// TimestampCacheSize bounds the number of block timestamps kept
	TimestampCacheSize int
}

const (
	defaultHeadTTL            = 2 * time.Second
	defaultStaleWindow        = 30 * time.Second
	defaultTimestampCacheSize = 4096
)

type head struct {
	number    uint64
	fetchedAt time.Time
}

type provider struct {
	fetcher Fetcher
	config  Config
	clock   adapter.Clock

	mu         sync.RWMutex
	head       *head
	group      singleflight.Group
	timestamps *lru.Cache[uint64, time.Time]
}

// NewProvider creates a Provider backed by fetcher. Zero config values take the defaults.
func NewProvider(fetcher Fetcher, config Config, clock adapter.Clock) (Provider, error) {
	if config.HeadTTL <= 0 {
		config.HeadTTL = defaultHeadTTL
	}
	if config.StaleWindow <= 0 {
		config.StaleWindow = defaultStaleWindow
	}
	if config.TimestampCacheSize <= 0 {
		config.TimestampCacheSize = defaultTimestampCacheSize
	}
	if config.StaleWindow < config.HeadTTL {
		config.StaleWindow = config.HeadTTL
	}

	timestamps, err := lru.New[uint64, time.Time](config.TimestampCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create timestamp cache: %w", err)
	}

	return &provider{
		fetcher:    fetcher,
		config:     config,
		clock:      clock,
		timestamps: timestamps,
	}, nil
}

func (p *provider) GetLatestBlock(ctx context.Context) (uint64, error) {
	p.mu.RLock()
	cached := p.head
	p.mu.RUnlock()

	now := p.clock.Now()
	if cached != nil && now.Sub(cached.fetchedAt) < p.config.HeadTTL {
		return cached.number, nil
	}

	v, err, _ := p.group.Do("head", func() (interface{}, error) {
		return p.fetcher.FetchLatestBlock(ctx)
	})
	if err != nil {
		if cached != nil && now.Sub(cached.fetchedAt) < p.config.StaleWindow {
			logger.WarnCtx(ctx, "Serving stale block head",
				zap.Error(err),
				zap.Uint64("block_number", cached.number))
			return cached.number, nil
		}
		return 0, fmt.Errorf("failed to fetch latest block: %w", err)
	}

	number := v.(uint64)
	p.mu.Lock()
	// a slower concurrent fetch must not move the head backwards
	if p.head == nil || number >= p.head.number {
		p.head = &head{number: number, fetchedAt: now}
	}
	p.mu.Unlock()

	return number, nil
}

func (p *provider) GetBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	if ts, ok := p.timestamps.Get(blockNumber); ok {
		return ts, nil
	}

	v, err, _ := p.group.Do(strconv.FormatUint(blockNumber, 10), func() (interface{}, error) {
		return p.fetcher.FetchBlockTimestamp(ctx, blockNumber)
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to fetch timestamp of block %d: %w", blockNumber, err)
	}

	ts := v.(time.Time)
	p.timestamps.Add(blockNumber, ts)
	logger.DebugCtx(ctx, "Cached block timestamp",
		zap.Uint64("block_number", blockNumber),
		zap.Time("timestamp", ts))

	return ts, nil
}
