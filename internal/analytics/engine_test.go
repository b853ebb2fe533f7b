package analytics

import (
	"context"
	"regexp"
	"testing"

	"github.com/bodega-labs/chatwatch/internal/domain"
	"github.com/bodega-labs/chatwatch/internal/store"
	"github.com/bodega-labs/chatwatch/internal/store/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(name string, timestamp, charCount int64) store.ChannelActivityRow {
	return store.ChannelActivityRow{
		Name:          name,
		Discriminator: "0001",
		Timestamp:     timestamp,
		CharCount:     charCount,
	}
}

func TestGroupByBucketWeekBoundaries(t *testing.T) {
	const week = int64(604800)
	rows := []store.ChannelActivityRow{
		row("alice", 0, 10),
		row("alice", 604800, 20),
		row("alice", 604801, 5),
	}

	result := GroupByBucket(rows, week, nil)

	require.Contains(t, result, "alice")
	assert.Equal(t, domain.TimeBucketSeries{
		{Bucket: 0, Value: 10},
		{Bucket: 1, Value: 25},
	}, result["alice"])
}

func TestGroupByBucketAscendingOrder(t *testing.T) {
	rows := []store.ChannelActivityRow{
		row("bob", 500, 1),
		row("bob", 100, 2),
		row("bob", 900, 3),
	}

	result := GroupByBucket(rows, 100, nil)

	series := result["bob"]
	require.Len(t, series, 3)
	assert.Equal(t, int64(1), series[0].Bucket)
	assert.Equal(t, int64(5), series[1].Bucket)
	assert.Equal(t, int64(9), series[2].Bucket)
}

func TestGroupByBucketExclusionPattern(t *testing.T) {
	rows := []store.ChannelActivityRow{
		row("alice", 0, 10),
		row("tradebot", 0, 99),
		row("robotics", 0, 7),
	}

	result := GroupByBucket(rows, 604800, regexp.MustCompile(`bot`))

	assert.Contains(t, result, "alice")
	assert.NotContains(t, result, "tradebot")
	assert.NotContains(t, result, "robotics")
}

func TestGroupByBucketMultipleIdentities(t *testing.T) {
	rows := []store.ChannelActivityRow{
		row("alice", 0, 10),
		row("bob", 0, 20),
		row("alice", 700000, 1),
	}

	result := GroupByBucket(rows, 604800, nil)

	require.Len(t, result, 2)
	assert.Len(t, result["alice"], 2)
	assert.Len(t, result["bob"], 1)
}

func TestEngineAgainstStore(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	alice, err := st.CreateIdentity(ctx, domain.IdentityKey{Name: "alice", Discriminator: "0001"})
	require.NoError(t, err)
	bot, err := st.CreateIdentity(ctx, domain.IdentityKey{Name: "newsbot", Discriminator: "0002"})
	require.NoError(t, err)

	require.NoError(t, st.CreateActivity(ctx, &schema.Activity{IdentityID: alice.ID, ChannelID: 1, Timestamp: 100, CharCount: 40}))
	require.NoError(t, st.CreateActivity(ctx, &schema.Activity{IdentityID: alice.ID, ChannelID: 1, Timestamp: 604900, CharCount: 2}))
	require.NoError(t, st.CreateActivity(ctx, &schema.Activity{IdentityID: bot.ID, ChannelID: 1, Timestamp: 100, CharCount: 999}))

	engine := NewEngine(st)

	trend, err := engine.TrendByUser(ctx, 1, 0)
	require.NoError(t, err)
	require.Contains(t, trend, "alice")
	assert.NotContains(t, trend, "newsbot")
	assert.Equal(t, domain.TimeBucketSeries{
		{Bucket: 0, Value: 40},
		{Bucket: 1, Value: 2},
	}, trend["alice"])

	counts, err := engine.CharCountByUser(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(42), counts["alice"])
	assert.Equal(t, int64(999), counts["newsbot"])
}

func TestQuoteTrend(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	require.NoError(t, st.CreateQuoteTick(ctx, &schema.QuoteTick{Symbol: "GME", Price: 120.5, DayLow: 110, DayHigh: 130, Timestamp: 1000}))
	require.NoError(t, st.CreateQuoteTick(ctx, &schema.QuoteTick{Symbol: "GME", Price: 125, DayLow: 110, DayHigh: 130, Timestamp: 2000}))
	require.NoError(t, st.CreateQuoteTick(ctx, &schema.QuoteTick{Symbol: "MSFT", Price: 300, DayLow: 295, DayHigh: 305, Timestamp: 500}))

	engine := NewEngine(st)

	trend, err := engine.QuoteTrend(ctx, []string{"GME", "MSFT", "UNKNOWN"}, 1000)
	require.NoError(t, err)

	require.Contains(t, trend, "GME")
	require.Len(t, trend["GME"], 2)
	assert.Equal(t, 120.5, trend["GME"][0].Price)
	assert.Equal(t, int64(1000), trend["GME"][0].ObservedAt.Unix())
	assert.Equal(t, 125.0, trend["GME"][1].Price)

	// MSFT's only tick predates the floor; unknown symbols are absent.
	assert.Empty(t, trend["MSFT"])
	assert.NotContains(t, trend, "UNKNOWN")
}
