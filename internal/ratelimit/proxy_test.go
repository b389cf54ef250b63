package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/driftwave/release-radar/internal/config"
	"github.com/driftwave/release-radar/internal/logger"
	"github.com/driftwave/release-radar/internal/mocks"
	"github.com/driftwave/release-radar/internal/ratelimit"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testProxyMocks struct {
	ctrl             *gomock.Controller
	redisClient      *mocks.MockRedisClient
	redisRateLimiter *mocks.MockRedisRateLimiter
	clock            *mocks.MockClock
}

func setupTestProxy(t *testing.T) *testProxyMocks {
	ctrl := gomock.NewController(t)

	return &testProxyMocks{
		ctrl:             ctrl,
		redisClient:      mocks.NewMockRedisClient(ctrl),
		redisRateLimiter: mocks.NewMockRedisRateLimiter(ctrl),
		clock:            mocks.NewMockClock(ctrl),
	}
}

func tearDownTestProxy(tm *testProxyMocks) {
	tm.ctrl.Finish()
}

func testConfig(providers map[string]config.RateLimitConfig) config.RateLimiterConfig {
	return config.RateLimiterConfig{
		RedisAddr:               "localhost:6379",
		RedisKeyPrefix:          "test:limiter:",
		MaxWorkers:              10,
		MaxQueueSize:            100,
		EnableLocalFallback:     true,
		LocalFallbackMultiplier: 0.5,
		Providers:               providers,
	}
}

// setupProxyWithMocks creates a proxy with the common mock expectations
func setupProxyWithMocks(t *testing.T, tm *testProxyMocks, cfg config.RateLimiterConfig, redisAvailable bool) (ratelimit.Proxy, *time.Ticker) {
	statusCmd := redis.NewStatusCmd(context.Background())
	if redisAvailable {
		statusCmd.SetVal("PONG")
	} else {
		statusCmd.SetErr(errors.New("connection refused"))
	}
	tm.redisClient.EXPECT().
		Ping(gomock.Any()).
		Return(statusCmd)

	tm.redisClient.EXPECT().
		NewRateLimiter().
		Return(tm.redisRateLimiter)

	// Ticker for the health monitoring goroutine
	ticker := time.NewTicker(10 * time.Second)
	tm.clock.EXPECT().
		NewTicker(10 * time.Second).
		Return(ticker)

	proxy, err := ratelimit.NewProxy(cfg, tm.redisClient, tm.clock)
	assert.NoError(t, err)

	// Give the monitoring goroutine time to start
	time.Sleep(15 * time.Millisecond)

	return proxy, ticker
}

func TestNewProxy_Success(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"spotify": {
			RequestsPerSecond: 10,
			Burst:             20,
			MaxQueueTime:      5 * time.Minute,
		},
	})

	proxy, ticker := setupProxyWithMocks(t, tm, cfg, true)
	assert.NotNil(t, proxy)

	ticker.Stop()
	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestNewProxy_RedisUnavailable_FallbackEnabled(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"spotify": {
			RequestsPerSecond: 10,
			Burst:             20,
			MaxQueueTime:      5 * time.Minute,
		},
	})

	proxy, ticker := setupProxyWithMocks(t, tm, cfg, false)
	assert.NotNil(t, proxy)

	ticker.Stop()
	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestNewProxy_RedisUnavailable_FallbackDisabled(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"spotify": {RequestsPerSecond: 10, Burst: 20, MaxQueueTime: 5 * time.Minute},
	})
	cfg.EnableLocalFallback = false

	statusCmd := redis.NewStatusCmd(context.Background())
	statusCmd.SetErr(errors.New("connection refused"))
	tm.redisClient.EXPECT().
		Ping(gomock.Any()).
		Return(statusCmd)

	proxy, err := ratelimit.NewProxy(cfg, tm.redisClient, tm.clock)

	assert.Error(t, err)
	assert.Nil(t, proxy)
	assert.Contains(t, err.Error(), "redis unavailable and fallback disabled")
}

func TestNewProxy_InvalidConfig_NoRedisAddr(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := config.RateLimiterConfig{
		RedisAddr: "",
		Providers: map[string]config.RateLimitConfig{
			"spotify": {RequestsPerSecond: 10},
		},
	}

	proxy, err := ratelimit.NewProxy(cfg, tm.redisClient, tm.clock)

	assert.Error(t, err)
	assert.Nil(t, proxy)
	assert.Contains(t, err.Error(), "redis_addr is required")
}

func TestNewProxy_InvalidConfig_NoProviders(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := config.RateLimiterConfig{
		RedisAddr: "localhost:6379",
		Providers: map[string]config.RateLimitConfig{},
	}

	proxy, err := ratelimit.NewProxy(cfg, tm.redisClient, tm.clock)

	assert.Error(t, err)
	assert.Nil(t, proxy)
	assert.Contains(t, err.Error(), "at least one provider must be configured")
}

func TestNewProxy_InvalidConfig_InvalidRPS(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := config.RateLimiterConfig{
		RedisAddr: "localhost:6379",
		Providers: map[string]config.RateLimitConfig{
			"spotify": {RequestsPerSecond: 0},
		},
	}

	proxy, err := ratelimit.NewProxy(cfg, tm.redisClient, tm.clock)

	assert.Error(t, err)
	assert.Nil(t, proxy)
	assert.Contains(t, err.Error(), "requests_per_second must be positive")
}

func TestProxy_Request_Success(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"spotify": {
			RequestsPerSecond: 10,
			Burst:             20,
			MaxQueueTime:      5 * time.Minute,
		},
	})

	proxy, ticker := setupProxyWithMocks(t, tm, cfg, true)

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), "test:limiter:spotify", gomock.Any()).
		Return(&redis_rate.Result{
			Allowed:   1,
			Remaining: 9,
		}, nil)

	ctx := context.Background()
	result, err := proxy.Request(ctx, "spotify", func(ctx context.Context) (interface{}, error) {
		return "success", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "success", result)

	ticker.Stop()
	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestProxy_Request_UnknownProvider(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"spotify": {RequestsPerSecond: 10, Burst: 20},
	})

	proxy, ticker := setupProxyWithMocks(t, tm, cfg, true)

	ctx := context.Background()
	result, err := proxy.Request(ctx, "myspace", func(ctx context.Context) (interface{}, error) {
		return "success", nil
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "provider 'myspace' not configured")

	ticker.Stop()
	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestProxy_Request_ContextCanceled(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"spotify": {
			RequestsPerSecond: 10,
			Burst:             20,
			MaxQueueTime:      100 * time.Millisecond,
		},
	})

	proxy, ticker := setupProxyWithMocks(t, tm, cfg, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := proxy.Request(ctx, "spotify", func(ctx context.Context) (interface{}, error) {
		return "success", nil
	})

	assert.Error(t, err)
	assert.Nil(t, result)

	ticker.Stop()
	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestProxy_Request_RateLimitExceeded_WithRetryAfter(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"steam": {
			RequestsPerSecond: 2,
			Burst:             4,
			MaxQueueTime:      1 * time.Second,
		},
	})

	proxy, ticker := setupProxyWithMocks(t, tm, cfg, true)

	// First attempt is rejected with a retry hint, second is allowed
	gomock.InOrder(
		tm.redisRateLimiter.EXPECT().
			Allow(gomock.Any(), "test:limiter:steam", gomock.Any()).
			Return(&redis_rate.Result{
				Allowed:    0,
				Remaining:  0,
				RetryAfter: 50 * time.Millisecond,
			}, nil),
		tm.clock.EXPECT().
			After(gomock.Any()). // jittered wait
			DoAndReturn(func(d time.Duration) <-chan time.Time {
				ch := make(chan time.Time, 1)
				ch <- time.Now()
				return ch
			}),
		tm.redisRateLimiter.EXPECT().
			Allow(gomock.Any(), "test:limiter:steam", gomock.Any()).
			Return(&redis_rate.Result{
				Allowed:   1,
				Remaining: 1,
			}, nil),
	)

	ctx := context.Background()
	result, err := proxy.Request(ctx, "steam", func(ctx context.Context) (interface{}, error) {
		return "success", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "success", result)

	ticker.Stop()
	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestProxy_Request_RedisFailure_FallbackToLocal(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"deezer": {
			RequestsPerSecond: 10,
			Burst:             20,
			MaxQueueTime:      5 * time.Minute,
		},
	})

	proxy, ticker := setupProxyWithMocks(t, tm, cfg, true)

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), "test:limiter:deezer", gomock.Any()).
		Return(nil, errors.New("redis connection error"))

	ctx := context.Background()
	result, err := proxy.Request(ctx, "deezer", func(ctx context.Context) (interface{}, error) {
		return "success with fallback", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "success with fallback", result)

	ticker.Stop()
	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestProxy_Request_RequestFunctionError(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"rawg": {RequestsPerSecond: 2, Burst: 4},
	})

	proxy, ticker := setupProxyWithMocks(t, tm, cfg, true)

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&redis_rate.Result{Allowed: 1}, nil)

	ctx := context.Background()
	expectedError := errors.New("request failed")
	result, err := proxy.Request(ctx, "rawg", func(ctx context.Context) (interface{}, error) {
		return nil, expectedError
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, expectedError, err)

	ticker.Stop()
	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestProxy_Request_ProxyClosed(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"spotify": {RequestsPerSecond: 10, Burst: 20},
	})

	proxy, ticker := setupProxyWithMocks(t, tm, cfg, true)

	tm.redisClient.EXPECT().Close().Return(nil)
	ticker.Stop()
	_ = proxy.Close()

	ctx := context.Background()
	result, err := proxy.Request(ctx, "spotify", func(ctx context.Context) (interface{}, error) {
		return "success", nil
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "proxy is closed")
}

func TestProxy_Close_Multiple(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"spotify": {RequestsPerSecond: 10, Burst: 20},
	})

	proxy, ticker := setupProxyWithMocks(t, tm, cfg, true)

	// sync.Once keeps Close idempotent
	tm.redisClient.EXPECT().Close().Return(nil).Times(1)
	ticker.Stop()

	err1 := proxy.Close()
	err2 := proxy.Close()
	err3 := proxy.Close()

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NoError(t, err3)
}

func TestProxy_Request_Concurrent(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"spotify": {
			RequestsPerSecond: 10,
			Burst:             20,
			MaxQueueTime:      5 * time.Minute,
		},
	})
	cfg.MaxWorkers = 5

	proxy, ticker := setupProxyWithMocks(t, tm, cfg, true)

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&redis_rate.Result{Allowed: 1}, nil).
		MinTimes(3)

	ctx := context.Background()
	done := make(chan bool, 3)

	for i := range 3 {
		go func(id int) {
			result, err := proxy.Request(ctx, "spotify", func(ctx context.Context) (interface{}, error) {
				time.Sleep(10 * time.Millisecond)
				return id, nil
			})
			assert.NoError(t, err)
			assert.NotNil(t, result)
			done <- true
		}(i)
	}

	for range 3 {
		<-done
	}

	ticker.Stop()
	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestProxy_RedisFailure_NoFallback(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"steam": {
			RequestsPerSecond: 2,
			Burst:             4,
			MaxQueueTime:      5 * time.Minute,
		},
	})
	cfg.EnableLocalFallback = false

	proxy, ticker := setupProxyWithMocks(t, tm, cfg, true)

	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), "test:limiter:steam", gomock.Any()).
		Return(nil, errors.New("redis connection error"))

	ctx := context.Background()
	result, err := proxy.Request(ctx, "steam", func(ctx context.Context) (interface{}, error) {
		return "success", nil
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "redis rate limiter unavailable")

	ticker.Stop()
	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestProxy_Request_QueueTimeout(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"rawg": {
			RequestsPerSecond: 1,
			Burst:             1,
			MaxQueueTime:      50 * time.Millisecond,
		},
	})
	cfg.MaxWorkers = 1
	cfg.MaxQueueSize = 10

	proxy, ticker := setupProxyWithMocks(t, tm, cfg, true)

	// Always rate limited so the request waits past its queue budget
	tm.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&redis_rate.Result{
			Allowed:    0,
			Remaining:  0,
			RetryAfter: 1 * time.Second,
		}, nil).
		AnyTimes()

	tm.clock.EXPECT().
		After(gomock.Any()).
		DoAndReturn(func(d time.Duration) <-chan time.Time {
			// Never fires, the queue timeout has to cut the wait
			return make(chan time.Time)
		}).
		AnyTimes()

	ctx := context.Background()
	result, err := proxy.Request(ctx, "rawg", func(ctx context.Context) (interface{}, error) {
		return "success", nil
	})

	assert.Error(t, err)
	assert.Nil(t, result)

	ticker.Stop()
	tm.redisClient.EXPECT().Close().Return(nil).AnyTimes()
	_ = proxy.Close()
}

func TestProxy_Close_WithRedisError(t *testing.T) {
	tm := setupTestProxy(t)
	defer tearDownTestProxy(tm)

	cfg := testConfig(map[string]config.RateLimitConfig{
		"spotify": {RequestsPerSecond: 10, Burst: 20},
	})

	proxy, ticker := setupProxyWithMocks(t, tm, cfg, true)

	tm.redisClient.EXPECT().Close().Return(errors.New("close error"))
	ticker.Stop()

	err := proxy.Close()
	assert.Error(t, err)
}
