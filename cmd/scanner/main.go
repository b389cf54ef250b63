package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/driftwave/release-radar/internal/adapter"
	"github.com/driftwave/release-radar/internal/config"
	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/logger"
	"github.com/driftwave/release-radar/internal/messaging/jetstream"
	"github.com/driftwave/release-radar/internal/providers/games"
	"github.com/driftwave/release-radar/internal/providers/games/rawg"
	"github.com/driftwave/release-radar/internal/providers/games/steam"
	"github.com/driftwave/release-radar/internal/providers/music"
	"github.com/driftwave/release-radar/internal/providers/music/deezer"
	"github.com/driftwave/release-radar/internal/providers/music/spotify"
	"github.com/driftwave/release-radar/internal/ratelimit"
	"github.com/driftwave/release-radar/internal/scanner"
	"github.com/driftwave/release-radar/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadScannerConfig(*configFile, *envPath)
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
			"service": "scanner",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Release Scanner")

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
	httpClient := adapter.NewHTTPClient(cfg.Providers.HTTPTimeout)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	natsJS := adapter.NewNatsJetStream()
	redisClient := adapter.NewRedisClient(cfg.RateLimiter.RedisAddr, cfg.RateLimiter.RedisPassword, cfg.RateLimiter.RedisDB)

	// Initialize rate limiter proxy shared by all providers
	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimiter, redisClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
	}
	defer func() {
		if err := rateLimitProxy.Close(); err != nil {
			logger.Error(err, zap.String("component", "rate_limiter"))
		}
	}()

	// Initialize providers. Game providers are ordered by confidence: a
	// definite Steam status wins over RAWG in a status merge.
	musicProviders := []music.Provider{
		spotify.NewClient(
			httpClient,
			rateLimitProxy,
			clock,
			jsonAdapter,
			cfg.Providers.SpotifyURL,
			cfg.Providers.SpotifyTokenURL,
			cfg.Providers.SpotifyClientID,
			cfg.Providers.SpotifyClientSecret,
		),
		deezer.NewClient(httpClient, rateLimitProxy, jsonAdapter, cfg.Providers.DeezerURL),
	}
	gameProviders := []games.Provider{
		steam.NewClient(httpClient, rateLimitProxy, jsonAdapter, cfg.Providers.SteamStoreURL, cfg.Providers.SteamAPIURL),
		rawg.NewClient(httpClient, rateLimitProxy, clock, jsonAdapter, cfg.Providers.RAWGURL, cfg.Providers.RAWGAPIKey),
	}
	for _, p := range musicProviders {
		logger.InfoCtx(ctx, "Music provider configured",
			zap.String("provider", string(p.Name())),
			zap.Bool("enabled", p.Enabled()),
		)
	}
	for _, p := range gameProviders {
		logger.InfoCtx(ctx, "Game provider configured",
			zap.String("provider", string(p.Name())),
			zap.Bool("enabled", p.Enabled()),
		)
	}

	// Connect to NATS for scan completion publishing
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()

	// Initialize the scanner
	releaseScanner := scanner.New(dataStore, musicProviders, gameProviders, publisher, clock, scanner.Config{
		EntityDelay:      cfg.Scan.EntityDelay,
		ArtistWindow:     cfg.Scan.ArtistWindow,
		PatchNotesWindow: cfg.Scan.PatchNotesWindow,
		AdditionsWindow:  cfg.Scan.AdditionsWindow,
		ReleaseTTL:       cfg.Scan.ReleaseTTL,
	})

	// Subscribe to on-demand scan requests
	subscriber, err := jetstream.NewSubscriber(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		ConsumerName:   cfg.NATS.ConsumerName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName + "-sub",
		AckWait:        cfg.NATS.AckWait,
		MaxDeliver:     cfg.NATS.MaxDeliver,
	}, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS subscriber", zap.Error(err))
	}
	defer subscriber.Close()

	err = subscriber.SubscribeScanRequested(ctx, func(msgCtx context.Context, event *domain.ScanRequested) error {
		logger.InfoCtx(msgCtx, "Received scan request",
			zap.String("event_id", event.EventID),
			zap.String("user_id", event.UserID),
		)
		_, err := releaseScanner.Scan(msgCtx, scanner.Filter{
			UserID:     event.UserID,
			EntityID:   event.EntityID,
			EntityType: event.EntityType,
		})
		return err
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to subscribe to scan requests", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Subscribed to scan requests", zap.String("stream", cfg.NATS.StreamName))

	// Schedule periodic global scans
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Scan.Schedule, func() {
		if _, err := releaseScanner.Scan(ctx, scanner.Filter{}); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("component", "scheduled_scan"))
		}
	})
	if err != nil {
		logger.FatalCtx(ctx, "Invalid scan schedule", zap.Error(err), zap.String("schedule", cfg.Scan.Schedule))
	}
	scheduler.Start()
	logger.InfoCtx(ctx, "Scheduled periodic scans", zap.String("schedule", cfg.Scan.Schedule))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	cancel()

	// Wait for an in-flight scheduled scan to finish
	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(30 * time.Second):
		logger.Warn("Timed out waiting for scheduled scan to finish")
	}

	logger.Info("Scanner stopped")
}
