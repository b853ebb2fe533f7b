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
	"github.com/bodega-labs/chatwatch/internal/domain"
	"github.com/bodega-labs/chatwatch/internal/fetch"
	"github.com/bodega-labs/chatwatch/internal/logger"
	"github.com/bodega-labs/chatwatch/internal/poller"
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
	cfg, err := config.LoadQuotePollerConfig(*configPath, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags:      map[string]string{"service": "quote-poller"},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting Quote Poller")

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

	// Quote source and fetch engine
	quoteClient := quotes.NewHTTPClient(httpClient, cfg.QuoteSource.BaseURL)
	engine := fetch.NewEngine(quoteFetcher{quoteClient},
		fetch.WithPoolSize(cfg.Worker.WorkerPoolSize),
		fetch.WithQueueSize(cfg.Worker.WorkerQueueSize),
		fetch.WithPerKeyTimeout(cfg.QuoteSource.FetchTimeout))

	// Observation publisher
	publisher, err := jetstream.NewPublisher(
		jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		},
		natsJS,
		jsonAdapter,
	)
	if err != nil {
		logger.Fatal("Failed to create observation publisher", zap.Error(err))
	}
	defer publisher.Close()

	p := poller.NewPoller(dataStore, engine, publisher, clock, cfg.Poller.Interval)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		if err := p.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.Error(err, zap.String("component", "poller"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	logger.Info("Quote Poller stopped")
}

// quoteFetcher adapts the quote client to the fetch engine
type quoteFetcher struct {
	client quotes.Client
}

func (f quoteFetcher) Fetch(ctx context.Context, symbol string) (domain.Quote, error) {
	return f.client.GetQuote(ctx, symbol)
}
