package alert

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/bodega-labs/chatwatch/internal/domain"
	"github.com/bodega-labs/chatwatch/internal/logger"
	"github.com/bodega-labs/chatwatch/internal/messaging"
	"github.com/bodega-labs/chatwatch/internal/notify"
	"github.com/bodega-labs/chatwatch/internal/quotes"
	"github.com/bodega-labs/chatwatch/internal/store"
	"github.com/bodega-labs/chatwatch/internal/store/schema"
)

// Params describes a new alert request
type Params struct {
	Symbol     string
	Low        float64
	High       float64
	ChannelID  int64
	IdentityID int64
	Note       string
}

// Engine evaluates open alerts against the observation feed. The durable
// alert collection is the source of truth; the in-memory tracked-symbol set
// is a mirror rebuilt from the store and kept current by Track. An alert is
// removed only after its violation message was delivered, so a failed
// delivery refires on the next out-of-bound observation.
type Engine struct {
	store    store.Store
	quotes   quotes.Client
	notifier notify.Notifier

	mu      sync.Mutex
	tracked map[string]struct{}
}

// NewEngine creates an alert engine with an empty tracked-symbol mirror;
// call WarmTracked before serving
func NewEngine(s store.Store, q quotes.Client, n notify.Notifier) *Engine {
	return &Engine{
		store:    s,
		quotes:   q,
		notifier: n,
		tracked:  make(map[string]struct{}),
	}
}

// WarmTracked rebuilds the tracked-symbol mirror from the store
func (e *Engine) WarmTracked(ctx context.Context) error {
	symbols, err := e.store.ListTrackedSymbols(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tracked symbols: %w", err)
	}

	tracked := make(map[string]struct{}, len(symbols))
	for _, symbol := range symbols {
		tracked[symbol] = struct{}{}
	}

	e.mu.Lock()
	e.tracked = tracked
	e.mu.Unlock()
	return nil
}

// IsTracked reports whether a symbol is currently tracked
func (e *Engine) IsTracked(symbol string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, ok := e.tracked[symbol]
	return ok
}

// Track adds a symbol to the tracked set. An untracked symbol is validated
// against the quote source first; a symbol the source cannot resolve is
// rejected with domain.ErrSymbolInvalid and nothing is written.
func (e *Engine) Track(ctx context.Context, symbol string) error {
	if e.IsTracked(symbol) {
		return nil
	}

	if err := e.validateSymbol(ctx, symbol); err != nil {
		return err
	}

	if err := e.store.AddTrackedSymbol(ctx, symbol); err != nil {
		return fmt.Errorf("failed to add tracked symbol: %w", err)
	}

	e.mu.Lock()
	e.tracked[symbol] = struct{}{}
	e.mu.Unlock()
	return nil
}

// AddAlert creates an alert, implicitly tracking its symbol. A symbol that
// fails validation rejects the whole request: no tracking entry, no alert
// row.
func (e *Engine) AddAlert(ctx context.Context, params Params) (*schema.Alert, error) {
	if err := e.Track(ctx, params.Symbol); err != nil {
		return nil, err
	}

	alert := &schema.Alert{
		Symbol:     params.Symbol,
		Low:        params.Low,
		High:       params.High,
		ChannelID:  params.ChannelID,
		IdentityID: params.IdentityID,
		Note:       params.Note,
	}
	if err := e.store.CreateAlert(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	logger.InfoCtx(ctx, "alert created",
		zap.String("symbol", alert.Symbol),
		zap.Float64("low", alert.Low),
		zap.Float64("high", alert.High),
		zap.Int64("channelID", alert.ChannelID))
	return alert, nil
}

// validateSymbol checks that the quote source can resolve the symbol to a
// usable price
func (e *Engine) validateSymbol(ctx context.Context, symbol string) error {
	quote, err := e.quotes.GetQuote(ctx, symbol)
	if err != nil {
		return fmt.Errorf("failed to validate symbol %s: %w", symbol, err)
	}
	if !quote.Valid() {
		return fmt.Errorf("%w: %s", domain.ErrSymbolInvalid, symbol)
	}
	return nil
}

// HandleObservation evaluates every open alert on the observed symbol. Each
// alert in violation gets one delivery attempt; delivery success retires the
// alert, delivery failure keeps it open for the next observation. A store
// failure aborts the pass so the feed redelivers the observation.
func (e *Engine) HandleObservation(ctx context.Context, obs domain.Observation) error {
	alerts, err := e.store.ListAlertsBySymbol(ctx, obs.Symbol)
	if err != nil {
		return fmt.Errorf("failed to list alerts for %s: %w", obs.Symbol, err)
	}

	for _, alert := range alerts {
		if obs.Price >= alert.Low && obs.Price <= alert.High {
			continue
		}

		text := violationMessage(alert, obs)
		if err := e.notifier.Send(ctx, alert.ChannelID, text); err != nil {
			// Keep the alert open; it refires on the next observation.
			logger.ErrorCtx(ctx, err,
				zap.String("message", "alert delivery failed, keeping alert open"),
				zap.Int64("alertID", alert.ID),
				zap.String("symbol", alert.Symbol))
			continue
		}

		if err := e.store.DeleteAlert(ctx, alert.ID); err != nil {
			// The violation was delivered but the alert survives; it may
			// deliver again. At-least-once is the accepted bias here.
			return fmt.Errorf("failed to retire alert %d: %w", alert.ID, err)
		}

		logger.InfoCtx(ctx, "alert fired and retired",
			zap.Int64("alertID", alert.ID),
			zap.String("symbol", alert.Symbol),
			zap.Float64("price", obs.Price))
	}

	return nil
}

// Run consumes the observation feed until ctx is canceled
func (e *Engine) Run(ctx context.Context, feed messaging.ObservationSubscriber) error {
	return feed.Run(ctx, func(ctx context.Context, event *domain.ObservationEvent) error {
		return e.HandleObservation(ctx, event.Observation)
	})
}

// violationMessage renders the delivery text for one violated alert
func violationMessage(alert schema.Alert, obs domain.Observation) string {
	direction := "above"
	bound := alert.High
	if obs.Price < alert.Low {
		direction = "below"
		bound = alert.Low
	}

	text := fmt.Sprintf("%s is %s %.2f at %.2f", alert.Symbol, direction, bound, obs.Price)
	if alert.Note != "" {
		text += " | " + alert.Note
	}
	return text
}
