package fetch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bodega-labs/chatwatch/internal/domain"
	"github.com/bodega-labs/chatwatch/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Initialize(logger.Config{Debug: true})
	m.Run()
}

// funcFetcher adapts a function to the Fetcher interface
type funcFetcher func(ctx context.Context, symbol string) (domain.Quote, error)

func (f funcFetcher) Fetch(ctx context.Context, symbol string) (domain.Quote, error) {
	return f(ctx, symbol)
}

func TestFetchManyAllSucceed(t *testing.T) {
	fetcher := funcFetcher(func(_ context.Context, symbol string) (domain.Quote, error) {
		return domain.Quote{Symbol: symbol, Price: 100, DayLow: 90, DayHigh: 110}, nil
	})

	engine := NewEngine(fetcher, WithPoolSize(4))
	quotes := engine.FetchMany(context.Background(), []string{"AAPL", "MSFT", "GME"})

	require.Len(t, quotes, 3)
	assert.Equal(t, "MSFT", quotes["MSFT"].Symbol)
	assert.Equal(t, float64(100), quotes["AAPL"].Price)
}

func TestFetchManyFailureIsolation(t *testing.T) {
	fetcher := funcFetcher(func(_ context.Context, symbol string) (domain.Quote, error) {
		if symbol == "BAD" {
			return domain.Quote{}, errors.New("upstream exploded")
		}
		return domain.Quote{Symbol: symbol, Price: 50}, nil
	})

	engine := NewEngine(fetcher, WithPoolSize(4))
	quotes := engine.FetchMany(context.Background(), []string{"AAPL", "BAD", "MSFT", "GME"})

	// The failing symbol is omitted, the other three all land.
	require.Len(t, quotes, 3)
	_, ok := quotes["BAD"]
	assert.False(t, ok)
	assert.Contains(t, quotes, "AAPL")
	assert.Contains(t, quotes, "MSFT")
	assert.Contains(t, quotes, "GME")
}

func TestFetchManyJoinBarrier(t *testing.T) {
	var inFlight atomic.Int32
	fetcher := funcFetcher(func(_ context.Context, symbol string) (domain.Quote, error) {
		inFlight.Add(1)
		defer inFlight.Add(-1)
		time.Sleep(10 * time.Millisecond)
		return domain.Quote{Symbol: symbol, Price: 1}, nil
	})

	engine := NewEngine(fetcher, WithPoolSize(8))
	symbols := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	quotes := engine.FetchMany(context.Background(), symbols)

	// No fetch may still be running once FetchMany returns.
	assert.Zero(t, inFlight.Load())
	assert.Len(t, quotes, len(symbols))
}

func TestFetchManyBoundsConcurrency(t *testing.T) {
	var mu sync.Mutex
	var current, peak int

	fetcher := funcFetcher(func(_ context.Context, symbol string) (domain.Quote, error) {
		mu.Lock()
		current++
		if current > peak {
			peak = current
		}
		mu.Unlock()

		time.Sleep(5 * time.Millisecond)

		mu.Lock()
		current--
		mu.Unlock()
		return domain.Quote{Symbol: symbol, Price: 1}, nil
	})

	engine := NewEngine(fetcher, WithPoolSize(2))
	engine.FetchMany(context.Background(), []string{"A", "B", "C", "D", "E", "F"})

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, 2)
}

func TestFetchManyEmptyBatch(t *testing.T) {
	fetcher := funcFetcher(func(_ context.Context, _ string) (domain.Quote, error) {
		t.Fatal("fetcher must not be called for an empty batch")
		return domain.Quote{}, nil
	})

	engine := NewEngine(fetcher)
	quotes := engine.FetchMany(context.Background(), nil)
	assert.Empty(t, quotes)
}

func TestFetchManyPerKeyTimeout(t *testing.T) {
	fetcher := funcFetcher(func(ctx context.Context, symbol string) (domain.Quote, error) {
		if symbol == "SLOW" {
			<-ctx.Done()
			return domain.Quote{}, ctx.Err()
		}
		return domain.Quote{Symbol: symbol, Price: 1}, nil
	})

	engine := NewEngine(fetcher, WithPoolSize(2), WithPerKeyTimeout(20*time.Millisecond))
	quotes := engine.FetchMany(context.Background(), []string{"SLOW", "FAST"})

	require.Len(t, quotes, 1)
	assert.Contains(t, quotes, "FAST")
}
