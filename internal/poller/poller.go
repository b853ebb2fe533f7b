package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/bodega-labs/chatwatch/internal/adapter"
	"github.com/bodega-labs/chatwatch/internal/domain"
	"github.com/bodega-labs/chatwatch/internal/fetch"
	"github.com/bodega-labs/chatwatch/internal/logger"
	"github.com/bodega-labs/chatwatch/internal/messaging"
	"github.com/bodega-labs/chatwatch/internal/store"
	"github.com/bodega-labs/chatwatch/internal/store/schema"
)

// DefaultInterval is the gap between polling cycles
const DefaultInterval = 120 * time.Second

// Poller drives the quote observation loop: every interval it fetches the
// current quote for each tracked symbol, persists a tick for the valid ones
// and publishes each as an observation event for downstream alert
// evaluation. Invalid quotes (unknown symbols, upstream hiccups) are skipped
// for the cycle, never persisted.
type Poller struct {
	store     store.Store
	engine    *fetch.Engine
	publisher messaging.Publisher
	clock     adapter.Clock
	interval  time.Duration
}

// NewPoller creates a quote poller
func NewPoller(s store.Store, engine *fetch.Engine, publisher messaging.Publisher, clock adapter.Clock, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		store:     s,
		engine:    engine,
		publisher: publisher,
		clock:     clock,
		interval:  interval,
	}
}

// Run executes polling cycles until ctx is canceled
func (p *Poller) Run(ctx context.Context) error {
	logger.Info("Starting quote poller", zap.Duration("interval", p.interval))

	for {
		if err := p.Cycle(ctx); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "polling cycle failed"))
		}

		select {
		case <-ctx.Done():
			logger.Info("Shutting down quote poller")
			return ctx.Err()
		case <-p.clock.After(p.interval):
		}
	}
}

// Cycle runs one polling pass over the tracked symbols
func (p *Poller) Cycle(ctx context.Context) error {
	symbols, err := p.store.ListTrackedSymbols(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tracked symbols: %w", err)
	}
	if len(symbols) == 0 {
		return nil
	}

	quotes := p.engine.FetchMany(ctx, symbols)
	observedAt := p.clock.Now()

	var persisted int
	for _, symbol := range symbols {
		quote, ok := quotes[symbol]
		if !ok || !quote.Valid() {
			logger.DebugCtx(ctx, "skipping invalid quote", zap.String("symbol", symbol))
			continue
		}

		tick := &schema.QuoteTick{
			Symbol:    quote.Symbol,
			Price:     quote.Price,
			DayLow:    quote.DayLow,
			DayHigh:   quote.DayHigh,
			Timestamp: observedAt.Unix(),
		}
		if err := p.store.CreateQuoteTick(ctx, tick); err != nil {
			return fmt.Errorf("failed to persist tick for %s: %w", symbol, err)
		}
		persisted++

		event := &domain.ObservationEvent{
			EventID: ulid.MustNewDefault(observedAt).String(),
			Observation: domain.Observation{
				Symbol:     quote.Symbol,
				Price:      quote.Price,
				DayLow:     quote.DayLow,
				DayHigh:    quote.DayHigh,
				ObservedAt: observedAt,
			},
		}
		if err := p.publisher.PublishObservation(ctx, event); err != nil {
			// The tick is durable; downstream alerting misses this
			// observation and catches up on the next cycle.
			logger.ErrorCtx(ctx, err,
				zap.String("message", "failed to publish observation"),
				zap.String("symbol", symbol))
		}
	}

	logger.InfoCtx(ctx, "polling cycle complete",
		zap.Int("tracked", len(symbols)),
		zap.Int("persisted", persisted))
	return nil
}
