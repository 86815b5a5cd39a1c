package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-market/internal/config"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/mocks"
	"github.com/feral-file/ff-market/internal/ratelimit"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testLimiterMocks contains all the mocks needed for testing the limiter
type testLimiterMocks struct {
	ctrl             *gomock.Controller
	redisClient      *mocks.MockRedisClient
	redisRateLimiter *mocks.MockRedisRateLimiter
	clock            *mocks.MockClock
	tick             chan time.Time
	now              time.Time
}

func setupTestLimiter(t *testing.T) *testLimiterMocks {
	ctrl := gomock.NewController(t)

	tm := &testLimiterMocks{
		ctrl:             ctrl,
		redisClient:      mocks.NewMockRedisClient(ctrl),
		redisRateLimiter: mocks.NewMockRedisRateLimiter(ctrl),
		clock:            mocks.NewMockClock(ctrl),
		tick:             make(chan time.Time),
		now:              time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	tm.clock.EXPECT().After(gomock.Any()).Return(tm.tick).AnyTimes()
	tm.clock.EXPECT().Now().DoAndReturn(func() time.Time { return tm.now }).AnyTimes()

	return tm
}

func testConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		RedisAddr:         "localhost:6379",
		KeyPrefix:         "test:limiter:",
		RequestsPerMinute: 30,
		Burst:             10,
	}
}

func newDistributedLimiter(t *testing.T, tm *testLimiterMocks, pingErr error) ratelimit.Limiter {
	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(pingErr)
	tm.redisClient.EXPECT().NewRateLimiter().Return(tm.redisRateLimiter)
	tm.redisClient.EXPECT().Close().Return(nil)

	l, err := ratelimit.NewLimiter(testConfig(), tm.redisClient, tm.clock)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestNewLimiter_InvalidConfig(t *testing.T) {
	tm := setupTestLimiter(t)

	_, err := ratelimit.NewLimiter(config.RateLimitConfig{}, nil, tm.clock)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requests_per_minute")
}

func TestAllow_Distributed(t *testing.T) {
	tm := setupTestLimiter(t)
	l := newDistributedLimiter(t, tm, nil)

	limit := redis_rate.Limit{Rate: 30, Burst: 10, Period: time.Minute}
	gomock.InOrder(
		tm.redisRateLimiter.EXPECT().
			Allow(gomock.Any(), "test:limiter:client-1", limit).
			Return(&redis_rate.Result{Allowed: 1, Remaining: 9, RetryAfter: -1}, nil),
		tm.redisRateLimiter.EXPECT().
			Allow(gomock.Any(), "test:limiter:client-1", limit).
			Return(&redis_rate.Result{Allowed: 0, Remaining: 0, RetryAfter: 2 * time.Second}, nil),
	)

	d, err := l.Allow(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, ratelimit.Decision{Allowed: true, Remaining: 9, Distributed: true}, d)

	d, err = l.Allow(context.Background(), "client-1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 2*time.Second, d.RetryAfter)
	assert.True(t, d.Distributed)
}

func TestAllow_RedisErrorFallsBackToLocal(t *testing.T) {
	tm := setupTestLimiter(t)
	l := newDistributedLimiter(t, tm, nil)

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset")).
		Times(1)

	d, err := l.Allow(context.Background(), "client-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.False(t, d.Distributed)

	// Redis stays marked unavailable until the health check succeeds
	d, err = l.Allow(context.Background(), "client-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.False(t, d.Distributed)
}

func TestAllow_ContextCanceled(t *testing.T) {
	tm := setupTestLimiter(t)
	l := newDistributedLimiter(t, tm, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, context.Canceled)

	_, err := l.Allow(ctx, "client-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAllow_LocalOnly(t *testing.T) {
	tm := setupTestLimiter(t)

	cfg := testConfig()
	cfg.RequestsPerMinute = 60
	cfg.Burst = 2
	l, err := ratelimit.NewLimiter(cfg, nil, tm.clock)
	require.NoError(t, err)
	defer l.Close()

	d, err := l.Allow(context.Background(), "client-1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Remaining)

	d, _ = l.Allow(context.Background(), "client-1")
	assert.True(t, d.Allowed)

	d, _ = l.Allow(context.Background(), "client-1")
	assert.False(t, d.Allowed)
	assert.Equal(t, time.Second, d.RetryAfter)

	// Other clients keep their own budget
	d, _ = l.Allow(context.Background(), "client-2")
	assert.True(t, d.Allowed)

	tm.now = tm.now.Add(time.Second)
	d, _ = l.Allow(context.Background(), "client-1")
	assert.True(t, d.Allowed)
}

func TestMonitorRedisHealth_Restores(t *testing.T) {
	tm := setupTestLimiter(t)
	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused")).Times(1)
	tm.redisClient.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()
	tm.redisClient.EXPECT().NewRateLimiter().Return(tm.redisRateLimiter)
	tm.redisClient.EXPECT().Close().Return(nil)
	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&redis_rate.Result{Allowed: 1, Remaining: 5}, nil).
		AnyTimes()

	cfg := testConfig()
	cfg.Burst = 1000
	l, err := ratelimit.NewLimiter(cfg, tm.redisClient, tm.clock)
	require.NoError(t, err)
	defer l.Close()

	d, err := l.Allow(context.Background(), "client-1")
	require.NoError(t, err)
	assert.False(t, d.Distributed)

	tm.tick <- tm.now

	assert.Eventually(t, func() bool {
		d, err := l.Allow(context.Background(), "client-1")
		return err == nil && d.Distributed
	}, time.Second, 10*time.Millisecond)
}

func TestAllow_AfterClose(t *testing.T) {
	tm := setupTestLimiter(t)

	l, err := ratelimit.NewLimiter(testConfig(), nil, tm.clock)
	require.NoError(t, err)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	_, err = l.Allow(context.Background(), "client-1")
	assert.ErrorIs(t, err, ratelimit.ErrClosed)
}
