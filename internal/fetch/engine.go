package fetch

import (
	"context"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/bodega-labs/chatwatch/internal/domain"
	"github.com/bodega-labs/chatwatch/internal/logger"
)

const (
	// DefaultPoolSize bounds concurrent upstream requests
	DefaultPoolSize = 20
	// DefaultPerKeyTimeout bounds one upstream request
	DefaultPerKeyTimeout = 10 * time.Second
)

// Fetcher retrieves one quote for one symbol from the upstream source
//
//go:generate mockgen -source=engine.go -destination=../mocks/fetcher.go -package=mocks -mock_names=Fetcher=MockFetcher
type Fetcher interface {
	Fetch(ctx context.Context, symbol string) (domain.Quote, error)
}

// Engine fans a batch of symbols out to a bounded worker pool and joins all
// results before returning. A failing symbol is logged and omitted from the
// result map; it never aborts the batch or disturbs other symbols.
type Engine struct {
	fetcher   Fetcher
	poolSize  int
	queueSize int
	timeout   time.Duration
}

// Option configures an Engine
type Option func(*Engine)

// WithPoolSize sets the number of concurrent workers
func WithPoolSize(n int) Option {
	return func(e *Engine) { e.poolSize = n }
}

// WithQueueSize sets the pending task queue size
func WithQueueSize(n int) Option {
	return func(e *Engine) { e.queueSize = n }
}

// WithPerKeyTimeout sets the timeout applied to each symbol's fetch
func WithPerKeyTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// NewEngine creates a fetch engine around an upstream fetcher
func NewEngine(fetcher Fetcher, opts ...Option) *Engine {
	e := &Engine{
		fetcher:   fetcher,
		poolSize:  DefaultPoolSize,
		queueSize: 2048,
		timeout:   DefaultPerKeyTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type fetchResult struct {
	symbol string
	quote  domain.Quote
	err    error
}

// FetchMany retrieves quotes for all symbols concurrently and blocks until
// every dispatched fetch has finished. The returned map holds one entry per
// symbol that fetched successfully; failed symbols are absent.
func (e *Engine) FetchMany(ctx context.Context, symbols []string) map[string]domain.Quote {
	if len(symbols) == 0 {
		return map[string]domain.Quote{}
	}

	pool := pond.NewPool(e.poolSize,
		pond.WithQueueSize(e.queueSize),
		pond.WithContext(ctx))

	results := make(chan fetchResult, len(symbols))
	for _, symbol := range symbols {
		pool.Submit(func() {
			fetchCtx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()

			quote, err := e.fetcher.Fetch(fetchCtx, symbol)
			results <- fetchResult{symbol: symbol, quote: quote, err: err}
		})
	}

	// Join barrier: every submitted fetch has pushed its result once
	// StopAndWait returns.
	pool.StopAndWait()
	close(results)

	quotes := make(map[string]domain.Quote, len(symbols))
	for res := range results {
		if res.err != nil {
			logger.WarnCtx(ctx, "quote fetch failed",
				zap.String("symbol", res.symbol),
				zap.Error(res.err))
			continue
		}
		quotes[res.symbol] = res.quote
	}
	return quotes
}
