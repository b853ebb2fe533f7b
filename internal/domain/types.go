package domain

import (
	"fmt"
	"time"
)

// QuoteUnknown is the sentinel for a quote field the source did not return.
// The upstream feed omits fields for unknown or delisted symbols; zero is a
// legal price, so absence must stay distinguishable from it.
const QuoteUnknown float64 = -1

// IdentityKey uniquely identifies a chat user across activity and preference
// records. Identities are created on first observation and immutable after.
type IdentityKey struct {
	Name          string `json:"name"`
	Discriminator string `json:"discriminator"`
}

func (k IdentityKey) String() string {
	return fmt.Sprintf("%s#%s", k.Name, k.Discriminator)
}

// ActivityKey is the composite dedup key for a single activity record.
type ActivityKey struct {
	IdentityID int64
	ChannelID  int64
	Timestamp  int64
}

// ActivityEvent is the wire envelope for one chat activity record as
// delivered by the chat-platform collaborator over the event stream.
type ActivityEvent struct {
	EventID   string      `json:"event_id"`
	User      IdentityKey `json:"user"`
	ChannelID int64       `json:"channel_id"`
	Timestamp int64       `json:"timestamp"`
	WordCount int         `json:"word_count"`
	CharCount int         `json:"char_count"`
}

// Quote is a single response from the external quote source. Any field the
// source omitted carries QuoteUnknown.
type Quote struct {
	Symbol  string  `json:"symbol"`
	Price   float64 `json:"price"`
	DayLow  float64 `json:"day_low"`
	DayHigh float64 `json:"day_high"`
}

// Valid reports whether the quote carries a usable price.
func (q Quote) Valid() bool {
	return q.Price != QuoteUnknown
}

// Observation is one ephemeral price observation for a tracked symbol.
type Observation struct {
	Symbol     string    `json:"symbol"`
	Price      float64   `json:"price"`
	DayLow     float64   `json:"day_low"`
	DayHigh    float64   `json:"day_high"`
	ObservedAt time.Time `json:"observed_at"`
}

// ObservationEvent is the wire envelope for the observation feed. Each
// notification carries exactly the latest observation for one symbol, not a
// backlog.
type ObservationEvent struct {
	EventID     string      `json:"event_id"`
	Observation Observation `json:"observation"`
}

// TimeBucket is one aggregated bucket of a per-identity activity series.
type TimeBucket struct {
	// Bucket is the bucket index: the record timestamp divided by the
	// bucket width, rounded toward zero.
	Bucket int64 `json:"bucket"`
	Value  int64 `json:"value"`
}

// TimeBucketSeries is an ascending-by-bucket series for one identity,
// recomputed fresh per request.
type TimeBucketSeries []TimeBucket
