// Package jetstream implements the messaging interfaces on NATS JetStream.
package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/driftwave/release-radar/internal/adapter"
	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/logger"
	"github.com/driftwave/release-radar/internal/messaging"
)

// Config holds the configuration for a NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWait        time.Duration
	MaxDeliver     int
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON
}

// NewPublisher connects to NATS and ensures the scan event stream exists
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	nc, js, err := connect(cfg, natsJS)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ensureStream(ctx, js, cfg.StreamName); err != nil {
		nc.Close()
		return nil, err
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		json:       jsonAdapter,
	}, nil
}

// PublishScanRequested publishes an on-demand scan request
func (p *publisher) PublishScanRequested(ctx context.Context, event *domain.ScanRequested) error {
	return p.publish(ctx, domain.SubjectScanRequested, event.EventID, event)
}

// PublishScanCompleted publishes the outcome of a finished scan run
func (p *publisher) PublishScanCompleted(ctx context.Context, event *domain.ScanCompleted) error {
	return p.publish(ctx, domain.SubjectScanCompleted, event.EventID, event)
}

func (p *publisher) publish(ctx context.Context, subject string, eventID string, event interface{}) error {
	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// The event ULID doubles as the broker-side dedup key
	_, err = p.js.Publish(ctx, subject, data, natsjs.WithMsgID(eventID))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.Debug("Published scan event",
		zap.String("subject", subject),
		zap.String("event_id", eventID),
	)

	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}
	p.nc.Close()
}

// connect dials NATS with reconnect handling shared by publisher and
// subscriber
func connect(cfg Config, natsJS adapter.NatsJetStream) (adapter.NatsConn, adapter.JetStream, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("Disconnected from NATS", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return nc, js, nil
}

// ensureStream creates or updates the stream holding all scan subjects
func ensureStream(ctx context.Context, js adapter.JetStream, streamName string) error {
	err := js.CreateOrUpdateStream(ctx, natsjs.StreamConfig{
		Name:      streamName,
		Subjects:  []string{"release.scan.>"},
		Retention: natsjs.WorkQueuePolicy,
		Storage:   natsjs.FileStorage,
		MaxAge:    24 * time.Hour,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream %s: %w", streamName, err)
	}
	return nil
}
