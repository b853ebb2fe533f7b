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
	"github.com/bodega-labs/chatwatch/internal/alert"
	"github.com/bodega-labs/chatwatch/internal/config"
	"github.com/bodega-labs/chatwatch/internal/logger"
	"github.com/bodega-labs/chatwatch/internal/notify"
	"github.com/bodega-labs/chatwatch/internal/providers/jetstream"
	"github.com/bodega-labs/chatwatch/internal/quotes"
	"github.com/bodega-labs/chatwatch/internal/store"
)

var (
	configPath = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "", "Path to env file directory")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAlertWatcherConfig(*configPath, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags:      map[string]string{"service": "alert-watcher"},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting Alert Watcher")

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
	httpClient := adapter.NewHTTPClient(cfg.QuoteSource.FetchTimeout)

	quoteClient := quotes.NewHTTPClient(httpClient, cfg.QuoteSource.BaseURL)
	notifier := notify.NewWebhookNotifier(httpClient, jsonAdapter, clock, cfg.Webhook.URL, cfg.Webhook.Secret)

	// Build the alert engine and warm its tracked-symbol mirror
	engine := alert.NewEngine(dataStore, quoteClient, notifier)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := engine.WarmTracked(ctx); err != nil {
		logger.Fatal("Failed to warm tracked symbols", zap.Error(err))
	}

	// Subscribe to the observation feed
	feed, err := jetstream.NewObservationSubscriber(
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
		logger.Fatal("Failed to create observation subscriber", zap.Error(err))
	}
	defer feed.Close()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		if err := engine.Run(ctx, feed); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.Error(err, zap.String("component", "alert-engine"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	logger.Info("Alert Watcher stopped")
}
