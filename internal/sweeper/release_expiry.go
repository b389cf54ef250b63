package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/driftwave/release-radar/internal/adapter"
	"github.com/driftwave/release-radar/internal/config"
	"github.com/driftwave/release-radar/internal/logger"
	"github.com/driftwave/release-radar/internal/store"
)

// releaseExpirySweeper implements the Sweeper interface for purging expired releases
type releaseExpirySweeper struct {
	config    config.SweepConfig
	store     store.Store
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewReleaseExpirySweeper creates a new release expiry sweeper
func NewReleaseExpirySweeper(cfg config.SweepConfig, st store.Store, clock adapter.Clock) Sweeper {
	return &releaseExpirySweeper{
		config:    cfg,
		store:     st,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *releaseExpirySweeper) Name() string {
	return "release-expiry-sweeper"
}

// Start begins the sweeper's main loop. Each cycle deletes expired releases in
// batches until none remain, then sleeps for the configured interval.
func (s *releaseExpirySweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting release expiry sweeper",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Duration("cycle_interval", s.config.CycleInterval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Release expiry sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Release expiry sweeper stop requested")
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				logger.ErrorCtx(ctx, err)
			}
			// Sleep between cycles, interruptible by shutdown
			if !s.sleep(ctx, s.config.CycleInterval) {
				continue // Loop again so the select above observes the stop
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *releaseExpirySweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping release expiry sweeper")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Release expiry sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Release expiry sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle deletes expired releases in batches until the table is clean.
// The cutoff is captured once per cycle so releases expiring mid-cycle wait
// for the next one.
func (s *releaseExpirySweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	cutoff := startTime.UTC()

	var total int64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopChan:
			return nil
		default:
		}

		deleted, err := s.store.DeleteExpiredReleases(ctx, cutoff, s.config.BatchSize)
		if err != nil {
			return fmt.Errorf("failed to delete expired releases: %w", err)
		}

		total += deleted
		if deleted < int64(s.config.BatchSize) {
			break // Table is clean, nothing left past the cutoff
		}
	}

	if total > 0 {
		logger.InfoCtx(ctx, "Sweep cycle completed",
			zap.Int64("deleted", total),
			zap.Duration("duration", s.clock.Since(startTime)),
		)
	}

	return nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns true if the sleep completed.
func (s *releaseExpirySweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
