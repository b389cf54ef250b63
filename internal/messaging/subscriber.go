package messaging

import (
	"context"

	"github.com/driftwave/release-radar/internal/domain"
)

// ScanRequestedHandler is called for each received scan request.
// Returning an error causes redelivery.
type ScanRequestedHandler func(ctx context.Context, event *domain.ScanRequested) error

// ScanCompletedHandler is called for each received scan completion.
// Returning an error causes redelivery.
type ScanCompletedHandler func(ctx context.Context, event *domain.ScanCompleted) error

// Subscriber defines the interface for consuming scan events from the
// message broker
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeScanRequested starts consuming scan requests
	SubscribeScanRequested(ctx context.Context, handler ScanRequestedHandler) error
	// SubscribeScanCompleted starts consuming scan completions
	SubscribeScanCompleted(ctx context.Context, handler ScanCompletedHandler) error
	// Close stops all consumers and closes the connection
	Close()
}
