package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bodega-labs/chatwatch/internal/adapter"
	"github.com/bodega-labs/chatwatch/internal/config"
	"github.com/bodega-labs/chatwatch/internal/ingest"
	"github.com/bodega-labs/chatwatch/internal/logger"
	"github.com/bodega-labs/chatwatch/internal/media"
	"github.com/bodega-labs/chatwatch/internal/notify"
	"github.com/bodega-labs/chatwatch/internal/preference"
	"github.com/bodega-labs/chatwatch/internal/providers/jetstream"
	"github.com/bodega-labs/chatwatch/internal/store"
)

var (
	configPath = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "", "Path to env file directory")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadChatIngestConfig(*configPath, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags:      map[string]string{"service": "chat-ingest"},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting Chat Ingest")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.Info("Connected to database")

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(30 * time.Second)

	// Build services and warm caches
	service := ingest.NewService(dataStore)
	preferences := preference.NewStore(dataStore)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := service.WarmCache(ctx); err != nil {
		logger.Fatal("Failed to warm ingest caches", zap.Error(err))
	}
	if err := preferences.WarmCache(ctx); err != nil {
		logger.Fatal("Failed to warm preference cache", zap.Error(err))
	}

	// Cooldown-gated media delivery is optional; without a media source the
	// handler ingests only.
	var mediaClient media.Client
	var notifier notify.Notifier
	if cfg.Media.BaseURL != "" && cfg.Webhook.URL != "" {
		mediaClient = media.NewHTTPClient(httpClient, cfg.Media.BaseURL, cfg.Media.APIKey, cfg.Media.ResultLimit)
		notifier = notify.NewWebhookNotifier(httpClient, jsonAdapter, clock, cfg.Webhook.URL, cfg.Webhook.Secret)
	}

	handler := ingest.NewHandler(service, preferences, mediaClient, notifier)

	// Subscribe to the activity stream
	stream, err := jetstream.NewActivitySubscriber(
		jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			ConsumerName:   cfg.NATS.ConsumerName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			AckWait:        cfg.NATS.AckWait,
			MaxDeliver:     cfg.NATS.MaxDeliver,
		},
		natsJS,
		jsonAdapter,
	)
	if err != nil {
		logger.Fatal("Failed to create activity subscriber", zap.Error(err))
	}
	defer stream.Close()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		if err := handler.Run(ctx, stream); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.Error(err, zap.String("component", "ingest"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	logger.Info("Chat Ingest stopped")
}
