package jetstream

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	natsjs "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/driftwave/release-radar/internal/adapter"
	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/logger"
	"github.com/driftwave/release-radar/internal/messaging"
)

type subscriber struct {
	cfg  Config
	nc   adapter.NatsConn
	js   adapter.JetStream
	json adapter.JSON

	mu       sync.Mutex
	contexts []adapter.ConsumeContext
	closed   bool
}

// NewSubscriber connects to NATS and ensures the scan event stream exists
func NewSubscriber(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Subscriber, error) {
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

	return &subscriber{
		cfg:  cfg,
		nc:   nc,
		js:   js,
		json: jsonAdapter,
	}, nil
}

// SubscribeScanRequested starts consuming scan requests
func (s *subscriber) SubscribeScanRequested(ctx context.Context, handler messaging.ScanRequestedHandler) error {
	return s.subscribe(ctx, domain.SubjectScanRequested, func(msgCtx context.Context, data []byte) error {
		var event domain.ScanRequested
		if err := s.json.Unmarshal(data, &event); err != nil {
			return &malformedEventError{err: err}
		}
		return handler(msgCtx, &event)
	})
}

// SubscribeScanCompleted starts consuming scan completions
func (s *subscriber) SubscribeScanCompleted(ctx context.Context, handler messaging.ScanCompletedHandler) error {
	return s.subscribe(ctx, domain.SubjectScanCompleted, func(msgCtx context.Context, data []byte) error {
		var event domain.ScanCompleted
		if err := s.json.Unmarshal(data, &event); err != nil {
			return &malformedEventError{err: err}
		}
		return handler(msgCtx, &event)
	})
}

// malformedEventError marks payloads that can never be processed so the
// message is terminated instead of redelivered
type malformedEventError struct {
	err error
}

func (e *malformedEventError) Error() string {
	return fmt.Sprintf("malformed event payload: %v", e.err)
}

func (s *subscriber) subscribe(ctx context.Context, subject string, process func(ctx context.Context, data []byte) error) error {
	// One durable consumer per subject, named after the configured consumer
	// and the subject's last token
	durable := fmt.Sprintf("%s-%s", s.cfg.ConsumerName, subjectSuffix(subject))

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, s.cfg.StreamName, natsjs.ConsumerConfig{
		Durable:       durable,
		FilterSubject: subject,
		AckPolicy:     natsjs.AckExplicitPolicy,
		AckWait:       s.cfg.AckWait,
		MaxDeliver:    s.cfg.MaxDeliver,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer %s: %w", durable, err)
	}

	consumeCtx, err := consumer.Consume(func(msg adapter.Message) {
		if err := process(ctx, msg.Data()); err != nil {
			var malformed *malformedEventError
			if errors.As(err, &malformed) {
				logger.ErrorCtx(ctx, fmt.Errorf("terminating malformed message: %w", err),
					zap.String("subject", msg.Subject()),
				)
				if termErr := msg.Term(); termErr != nil {
					logger.Warn("failed to terminate message", zap.Error(termErr))
				}
				return
			}

			logger.ErrorCtx(ctx, fmt.Errorf("failed to process message, requesting redelivery: %w", err),
				zap.String("subject", msg.Subject()),
			)
			if nakErr := msg.Nak(); nakErr != nil {
				logger.Warn("failed to nak message", zap.Error(nakErr))
			}
			return
		}

		if ackErr := msg.Ack(); ackErr != nil {
			logger.Warn("failed to ack message", zap.Error(ackErr))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming %s: %w", subject, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		consumeCtx.Stop()
		return fmt.Errorf("subscriber is closed")
	}
	s.contexts = append(s.contexts, consumeCtx)

	logger.Info("Subscribed to scan events",
		zap.String("subject", subject),
		zap.String("durable", durable),
	)

	return nil
}

// Close stops all consumers and closes the connection
func (s *subscriber) Close() {
	s.mu.Lock()
	s.closed = true
	contexts := s.contexts
	s.contexts = nil
	s.mu.Unlock()

	for _, c := range contexts {
		c.Drain()
	}

	if s.nc != nil {
		s.nc.Close()
	}
}

func subjectSuffix(subject string) string {
	parts := strings.Split(subject, ".")
	return parts[len(parts)-1]
}
