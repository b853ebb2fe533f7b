package analytics

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/bodega-labs/chatwatch/internal/domain"
	"github.com/bodega-labs/chatwatch/internal/store"
)

// DefaultBucketWidth is one week in seconds
const DefaultBucketWidth int64 = 60 * 60 * 24 * 7

// DefaultExclusion drops automated accounts from trend output
var DefaultExclusion = regexp.MustCompile(`bot`)

// Engine computes activity rollups over the durable store. All output is
// recomputed fresh per call; the engine holds no state beyond its
// configuration.
type Engine struct {
	store       store.Store
	bucketWidth int64
	exclude     *regexp.Regexp
}

// NewEngine creates an analytics engine with weekly buckets and the default
// automated-account exclusion
func NewEngine(s store.Store) *Engine {
	return &Engine{
		store:       s,
		bucketWidth: DefaultBucketWidth,
		exclude:     DefaultExclusion,
	}
}

// NewEngineWith creates an analytics engine with a custom bucket width and
// exclusion pattern; a nil pattern excludes nothing
func NewEngineWith(s store.Store, bucketWidth int64, exclude *regexp.Regexp) *Engine {
	return &Engine{
		store:       s,
		bucketWidth: bucketWidth,
		exclude:     exclude,
	}
}

// CharCountByUser returns the total character count per identity label for a
// channel, counting activity at or after fromTimestamp
func (e *Engine) CharCountByUser(ctx context.Context, channelID int64, fromTimestamp int64) (map[string]int64, error) {
	rows, err := e.store.CharCountByIdentity(ctx, channelID, fromTimestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to roll up char counts: %w", err)
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Name] = row.CharCount
	}
	return result, nil
}

// TrendByUser buckets a channel's activity into fixed-width windows per
// identity label, dropping excluded identities
func (e *Engine) TrendByUser(ctx context.Context, channelID int64, floorTimestamp int64) (map[string]domain.TimeBucketSeries, error) {
	rows, err := e.store.ListChannelActivitySince(ctx, channelID, floorTimestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel activity: %w", err)
	}

	return GroupByBucket(rows, e.bucketWidth, e.exclude), nil
}

// QuoteTrend returns the persisted tick series per symbol at or after
// fromTimestamp, ascending by observation time. Backend for trend rendering;
// symbols with no ticks in range are absent from the result.
func (e *Engine) QuoteTrend(ctx context.Context, symbols []string, fromTimestamp int64) (map[string][]domain.Observation, error) {
	history, err := e.store.QuoteHistory(ctx, symbols, fromTimestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to load quote history: %w", err)
	}

	result := make(map[string][]domain.Observation, len(history))
	for symbol, ticks := range history {
		series := make([]domain.Observation, 0, len(ticks))
		for _, tick := range ticks {
			series = append(series, domain.Observation{
				Symbol:     tick.Symbol,
				Price:      tick.Price,
				DayLow:     tick.DayLow,
				DayHigh:    tick.DayHigh,
				ObservedAt: time.Unix(tick.Timestamp, 0).UTC(),
			})
		}
		result[symbol] = series
	}
	return result, nil
}

// GroupByBucket accumulates char counts into fixed-width time buckets per
// identity label. Buckets are emitted ascending by bucket index; identities
// whose name matches the exclusion pattern are dropped. Pure function of its
// inputs.
func GroupByBucket(rows []store.ChannelActivityRow, bucketWidth int64, exclude *regexp.Regexp) map[string]domain.TimeBucketSeries {
	type bucketKey struct {
		name   string
		bucket int64
	}

	totals := make(map[bucketKey]int64)
	for _, row := range rows {
		if exclude != nil && exclude.MatchString(row.Name) {
			continue
		}
		key := bucketKey{name: row.Name, bucket: row.Timestamp / bucketWidth}
		totals[key] += row.CharCount
	}

	result := make(map[string]domain.TimeBucketSeries)
	for key, total := range totals {
		result[key.name] = append(result[key.name], domain.TimeBucket{Bucket: key.bucket, Value: total})
	}
	for name := range result {
		series := result[name]
		sort.Slice(series, func(i, j int) bool { return series[i].Bucket < series[j].Bucket })
		result[name] = series
	}
	return result
}
