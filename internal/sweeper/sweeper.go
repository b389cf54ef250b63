package sweeper

import "context"

//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper_mocks.go -package=mocks -mock_names=Sweeper=MockSweeper

// Sweeper defines the interface for background maintenance loops
type Sweeper interface {
	// Start begins the sweeper's main loop (blocking)
	Start(ctx context.Context) error

	// Stop gracefully stops the sweeper
	Stop(ctx context.Context) error

	// Name returns the sweeper's name for logging
	Name() string
}
