package store

import (
	"context"

	"github.com/bodega-labs/chatwatch/internal/domain"
	"github.com/bodega-labs/chatwatch/internal/store/schema"
)

// CharCountRow is one row of the per-channel character-count rollup
type CharCountRow struct {
	Name          string
	Discriminator string
	CharCount     int64
}

// ChannelActivityRow is one activity row joined with its author identity,
// the input shape for trend aggregation
type ChannelActivityRow struct {
	Name          string
	Discriminator string
	Timestamp     int64
	CharCount     int64
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetIdentityByKey retrieves an identity by its (name, discriminator) key, nil when absent
	GetIdentityByKey(ctx context.Context, key domain.IdentityKey) (*schema.Identity, error)
	// CreateIdentity creates an identity for the key, or returns the existing
	// row when another writer got there first
	CreateIdentity(ctx context.Context, key domain.IdentityKey) (*schema.Identity, error)
	// ListIdentities retrieves all identities (cache warm-up)
	ListIdentities(ctx context.Context) ([]schema.Identity, error)

	// FindActivity retrieves an activity row by its dedup key, nil when absent
	FindActivity(ctx context.Context, key domain.ActivityKey) (*schema.Activity, error)
	// CreateActivity inserts an activity row; inserting an already-present
	// dedup key is a no-op
	CreateActivity(ctx context.Context, activity *schema.Activity) error
	// ListActivityKeys retrieves every dedup key in the store (cache warm-up)
	ListActivityKeys(ctx context.Context) ([]domain.ActivityKey, error)
	// GetLastActivityTimestamp returns the newest activity timestamp for a
	// channel, 0 when the channel has no activity
	GetLastActivityTimestamp(ctx context.Context, channelID int64) (int64, error)
	// CharCountByIdentity returns the total character count per identity for
	// a channel, counting activity at or after fromTimestamp
	CharCountByIdentity(ctx context.Context, channelID int64, fromTimestamp int64) ([]CharCountRow, error)
	// ListChannelActivitySince returns activity rows with author identity for
	// a channel, strictly after floorTimestamp, ascending by timestamp
	ListChannelActivitySince(ctx context.Context, channelID int64, floorTimestamp int64) ([]ChannelActivityRow, error)

	// GetPreference retrieves the preference row for an identity, nil when absent
	GetPreference(ctx context.Context, identityID int64) (*schema.Preference, error)
	// UpsertPreference creates or overwrites the preference row for an identity
	UpsertPreference(ctx context.Context, pref *schema.Preference) error
	// ListPreferences retrieves all preference rows (cache warm-up)
	ListPreferences(ctx context.Context) ([]schema.Preference, error)

	// ListTrackedSymbols retrieves the set of tracked symbols
	ListTrackedSymbols(ctx context.Context) ([]string, error)
	// AddTrackedSymbol adds a symbol to the tracked set; idempotent
	AddTrackedSymbol(ctx context.Context, symbol string) error

	// CreateAlert creates an alert row
	CreateAlert(ctx context.Context, alert *schema.Alert) error
	// ListOpenAlerts retrieves all open alerts
	ListOpenAlerts(ctx context.Context) ([]schema.Alert, error)
	// ListAlertsBySymbol retrieves open alerts for one symbol
	ListAlertsBySymbol(ctx context.Context, symbol string) ([]schema.Alert, error)
	// DeleteAlert removes an alert after its violation was delivered
	DeleteAlert(ctx context.Context, alertID int64) error

	// CreateQuoteTick appends a quote observation
	CreateQuoteTick(ctx context.Context, tick *schema.QuoteTick) error
	// QuoteHistory returns ticks per symbol at or after fromTimestamp,
	// ascending by timestamp
	QuoteHistory(ctx context.Context, symbols []string, fromTimestamp int64) (map[string][]schema.QuoteTick, error)
}
