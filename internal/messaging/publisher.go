package messaging

import (
	"context"

	"github.com/driftwave/release-radar/internal/domain"
)

// Publisher defines the interface for publishing scan events to the message
// broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishScanRequested publishes an on-demand scan request
	PublishScanRequested(ctx context.Context, event *domain.ScanRequested) error
	// PublishScanCompleted publishes the outcome of a finished scan run
	PublishScanCompleted(ctx context.Context, event *domain.ScanCompleted) error
	// Close closes the connection
	Close()
}
