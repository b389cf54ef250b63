package sweeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwave/release-radar/internal/config"
	"github.com/driftwave/release-radar/internal/logger"
	"github.com/driftwave/release-radar/internal/mocks"
	"github.com/driftwave/release-radar/internal/sweeper"
)

// testSweeperMocks contains all the mocks needed for testing the sweeper
type testSweeperMocks struct {
	ctrl    *gomock.Controller
	store   *mocks.MockStore
	clock   *mocks.MockClock
	sweeper sweeper.Sweeper
}

// setupTestSweeper creates all the mocks and sweeper for testing
func setupTestSweeper(t *testing.T) *testSweeperMocks {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testSweeperMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}

	cfg := config.SweepConfig{
		BatchSize:     100,
		CycleInterval: time.Hour,
	}

	tm.sweeper = sweeper.NewReleaseExpirySweeper(cfg, tm.store, tm.clock)

	return tm
}

// tearDownTestSweeper cleans up the test mocks
func tearDownTestSweeper(mocks *testSweeperMocks) {
	mocks.ctrl.Finish()
}

// expectClock wires the standard clock expectations: a fixed Now and an After
// channel that fires after a brief real delay so Stop can interleave.
func expectClock(tm *testSweeperMocks, now time.Time) {
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(now).Return(time.Second).AnyTimes()
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		go func() {
			time.Sleep(50 * time.Millisecond)
			ch <- time.Now()
		}()
		return ch
	}).AnyTimes()
}

func TestReleaseExpirySweeper_Name(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	assert.Equal(t, "release-expiry-sweeper", tm.sweeper.Name())
}

func TestReleaseExpirySweeper_DeletesExpiredReleases(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	ctx := context.Background()
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	expectClock(tm, now)

	tm.store.EXPECT().
		DeleteExpiredReleases(gomock.Any(), now, 100).
		Return(int64(42), nil).
		MinTimes(1)

	go func() {
		time.Sleep(150 * time.Millisecond)
		_ = tm.sweeper.Stop(ctx)
	}()

	err := tm.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestReleaseExpirySweeper_DrainsFullBatches(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	ctx := context.Background()
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	expectClock(tm, now)

	// A full batch means more rows may remain, so the cycle keeps deleting
	// until a short batch comes back.
	gomock.InOrder(
		tm.store.EXPECT().
			DeleteExpiredReleases(gomock.Any(), now, 100).
			Return(int64(100), nil).
			Times(2),
		tm.store.EXPECT().
			DeleteExpiredReleases(gomock.Any(), now, 100).
			Return(int64(7), nil).
			Times(1),
		tm.store.EXPECT().
			DeleteExpiredReleases(gomock.Any(), now, 100).
			Return(int64(0), nil).
			AnyTimes(),
	)

	go func() {
		time.Sleep(150 * time.Millisecond)
		_ = tm.sweeper.Stop(ctx)
	}()

	err := tm.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestReleaseExpirySweeper_StoreErrorDoesNotStopLoop(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	ctx := context.Background()
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	expectClock(tm, now)

	gomock.InOrder(
		tm.store.EXPECT().
			DeleteExpiredReleases(gomock.Any(), now, 100).
			Return(int64(0), errors.New("connection reset")).
			Times(1),
		tm.store.EXPECT().
			DeleteExpiredReleases(gomock.Any(), now, 100).
			Return(int64(0), nil).
			MinTimes(1),
	)

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = tm.sweeper.Stop(ctx)
	}()

	err := tm.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestReleaseExpirySweeper_StartTwiceFails(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	ctx := context.Background()
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	expectClock(tm, now)

	tm.store.EXPECT().
		DeleteExpiredReleases(gomock.Any(), now, 100).
		Return(int64(0), nil).
		AnyTimes()

	started := make(chan struct{})
	go func() {
		close(started)
		_ = tm.sweeper.Start(ctx)
	}()

	<-started
	time.Sleep(50 * time.Millisecond)

	err := tm.sweeper.Start(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")

	_ = tm.sweeper.Stop(ctx)
}

func TestReleaseExpirySweeper_ContextCancellationStopsLoop(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	ctx, cancel := context.WithCancel(context.Background())
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	expectClock(tm, now)

	tm.store.EXPECT().
		DeleteExpiredReleases(gomock.Any(), now, 100).
		Return(int64(0), nil).
		AnyTimes()

	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	err := tm.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestReleaseExpirySweeper_StopWhenNotRunning(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	err := tm.sweeper.Stop(context.Background())
	require.NoError(t, err)
}
