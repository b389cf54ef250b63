package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/driftwave/release-radar/internal/adapter"
	"github.com/driftwave/release-radar/internal/config"
	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/logger"
	"github.com/driftwave/release-radar/internal/messaging/jetstream"
	"github.com/driftwave/release-radar/internal/notifier"
	"github.com/driftwave/release-radar/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadNotifierConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "notifier",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Notification Dispatcher")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()
	emailClient := adapter.NewSendGridClient(cfg.Email.SendGridAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

	// Initialize the dispatcher
	dispatcher := notifier.New(dataStore, emailClient, notifier.Config{
		DashboardURL: cfg.Email.DashboardURL,
	})

	// Subscribe to scan completions
	subscriber, err := jetstream.NewSubscriber(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		ConsumerName:   cfg.NATS.ConsumerName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
		AckWait:        cfg.NATS.AckWait,
		MaxDeliver:     cfg.NATS.MaxDeliver,
	}, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS subscriber", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer subscriber.Close()

	err = subscriber.SubscribeScanCompleted(ctx, func(msgCtx context.Context, event *domain.ScanCompleted) error {
		result, err := dispatcher.Dispatch(msgCtx, event)
		if err != nil {
			return err
		}
		logger.InfoCtx(msgCtx, "Dispatch finished",
			zap.String("run_id", event.RunID),
			zap.Int("users", result.Users),
			zap.Int("sent", result.Sent),
			zap.Int("skipped", result.Skipped),
			zap.Int("failed", result.Failed),
		)
		return nil
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to subscribe to scan completions", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Subscribed to scan completions", zap.String("stream", cfg.NATS.StreamName))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	cancel()

	// Give in-flight dispatches time to finish
	time.Sleep(time.Second)

	logger.Info("Notifier stopped")
}
