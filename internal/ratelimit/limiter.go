package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-market/internal/adapter"
	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/logger"
)

// ErrClosed is returned by Allow after Close
var ErrClosed = errors.New("rate limiter is closed")

// Decision is the outcome of a single Allow call
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
	// Distributed reports whether Redis made the decision
	Distributed bool
}

// Limiter limits requests per client key
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow takes one token for key without blocking
	Allow(ctx context.Context, key string) (Decision, error)

	// Close stops the health monitor and releases the Redis connection
	Close() error
}

type limiter struct {
	config      config.RateLimitConfig
	redis       adapter.RedisClient
	distributed adapter.RedisRateLimiter
	clock       adapter.Clock

	mu    sync.Mutex
	local *lru.Cache[string, *rate.Limiter]

	redisAvailable atomic.Bool
	closed         atomic.Bool
	closeOnce      sync.Once
	done           chan struct{}
}

// NewLimiter creates a limiter. A nil rc keeps every limit in process memory.
func NewLimiter(cfg config.RateLimitConfig, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	local, err := lru.New[string, *rate.Limiter](cfg.LocalCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create local limiter cache: %w", err)
	}

	l := &limiter{
		config: cfg,
		redis:  rc,
		clock:  clock,
		local:  local,
		done:   make(chan struct{}),
	}

	if rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rc.Ping(ctx)
		cancel()
		if err != nil {
			logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
		}
		l.redisAvailable.Store(err == nil)
		l.distributed = rc.NewRateLimiter()

		go l.monitorRedisHealth()
	}

	logger.Info("Rate limiter initialized",
		zap.Int("requests_per_minute", cfg.RequestsPerMinute),
		zap.Int("burst", cfg.Burst),
		zap.Bool("distributed", rc != nil),
	)

	return l, nil
}

func (l *limiter) Allow(ctx context.Context, key string) (Decision, error) {
	if l.closed.Load() {
		return Decision{}, ErrClosed
	}

	if l.distributed != nil && l.redisAvailable.Load() {
		decision, err := l.allowDistributed(ctx, key)
		if err == nil {
			return decision, nil
		}
		if ctx.Err() != nil {
			return Decision{}, ctx.Err()
		}

		l.redisAvailable.Store(false)
		logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.String("key", key), zap.Error(err))
	}

	return l.allowLocal(key), nil
}

func (l *limiter) allowDistributed(ctx context.Context, key string) (Decision, error) {
	res, err := l.distributed.Allow(ctx, l.config.KeyPrefix+key, redis_rate.Limit{
		Rate:   l.config.RequestsPerMinute,
		Burst:  l.config.Burst,
		Period: time.Minute,
	})
	if err != nil {
		return Decision{}, err
	}

	return Decision{
		Allowed:     res.Allowed > 0,
		Remaining:   res.Remaining,
		RetryAfter:  max(res.RetryAfter, 0),
		Distributed: true,
	}, nil
}

// allowLocal applies the same GCRA-style budget with a token bucket held per key
func (l *limiter) allowLocal(key string) Decision {
	lim := l.localLimiter(key)
	now := l.clock.Now()

	r := lim.ReserveN(now, 1)
	if !r.OK() {
		return Decision{RetryAfter: time.Minute}
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Decision{RetryAfter: delay}
	}

	return Decision{Allowed: true, Remaining: int(lim.TokensAt(now))}
}

func (l *limiter) localLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.local.Get(key); ok {
		return lim
	}
	perSecond := rate.Limit(float64(l.config.RequestsPerMinute) / 60)
	lim := rate.NewLimiter(perSecond, l.config.Burst)
	l.local.Add(key, lim)
	return lim
}

// monitorRedisHealth re-enables the distributed limiter once Redis answers again
func (l *limiter) monitorRedisHealth() {
	for {
		select {
		case <-l.done:
			return
		case <-l.clock.After(l.config.HealthCheckInterval):
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := l.redis.Ping(ctx)
		cancel()

		wasAvailable := l.redisAvailable.Load()
		l.redisAvailable.Store(err == nil)

		if !wasAvailable && err == nil {
			logger.Info("Redis connection restored")
		}
	}
}

func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)

		if l.redis != nil {
			if closeErr := l.redis.Close(); closeErr != nil {
				logger.Warn("Error closing Redis connection", zap.Error(closeErr))
				err = closeErr
			}
		}
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimitConfig) error {
	if cfg.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMinute
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "ff:market:limiter:"
	}
	if cfg.LocalCacheSize <= 0 {
		cfg.LocalCacheSize = 10000
	}
	if cfg.HealthCheckInterval <= 0 {
		cfg.HealthCheckInterval = 10 * time.Second
	}
	return nil
}
