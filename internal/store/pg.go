package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bodega-labs/chatwatch/internal/domain"
	"github.com/bodega-labs/chatwatch/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// GetIdentityByKey retrieves an identity by its (name, discriminator) key
func (s *pgStore) GetIdentityByKey(ctx context.Context, key domain.IdentityKey) (*schema.Identity, error) {
	var identity schema.Identity
	err := s.db.WithContext(ctx).
		Where("name = ? AND discriminator = ?", key.Name, key.Discriminator).
		First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}
	return &identity, nil
}

// CreateIdentity creates an identity for the key. A concurrent create for the
// same key loses the ON CONFLICT race and reloads the winner's row, so the
// unique constraint stays the final arbiter and the caller always gets one id.
func (s *pgStore) CreateIdentity(ctx context.Context, key domain.IdentityKey) (*schema.Identity, error) {
	identity := schema.Identity{
		Name:          key.Name,
		Discriminator: key.Discriminator,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "discriminator"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&identity).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	// ID == 0 means the row already existed, fetch it
	if identity.ID == 0 {
		if err := s.db.WithContext(ctx).
			Where("name = ? AND discriminator = ?", key.Name, key.Discriminator).
			First(&identity).Error; err != nil {
			return nil, fmt.Errorf("failed to get existing identity: %w", err)
		}
	}

	return &identity, nil
}

// ListIdentities retrieves all identities
func (s *pgStore) ListIdentities(ctx context.Context) ([]schema.Identity, error) {
	var identities []schema.Identity
	if err := s.db.WithContext(ctx).Find(&identities).Error; err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}
	return identities, nil
}

// FindActivity retrieves an activity row by its dedup key
func (s *pgStore) FindActivity(ctx context.Context, key domain.ActivityKey) (*schema.Activity, error) {
	var activity schema.Activity
	err := s.db.WithContext(ctx).
		Where("identity_id = ? AND channel_id = ? AND timestamp = ?", key.IdentityID, key.ChannelID, key.Timestamp).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find activity: %w", err)
	}
	return &activity, nil
}

// CreateActivity inserts an activity row, skipping duplicates on the
// (identity_id, channel_id, timestamp) unique index
func (s *pgStore) CreateActivity(ctx context.Context, activity *schema.Activity) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identity_id"}, {Name: "channel_id"}, {Name: "timestamp"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(activity).Error
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// ListActivityKeys retrieves every dedup key in the store
func (s *pgStore) ListActivityKeys(ctx context.Context) ([]domain.ActivityKey, error) {
	var keys []domain.ActivityKey
	err := s.db.WithContext(ctx).
		Model(&schema.Activity{}).
		Select("identity_id, channel_id, timestamp").
		Find(&keys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activity keys: %w", err)
	}
	return keys, nil
}

// GetLastActivityTimestamp returns the newest activity timestamp for a channel
func (s *pgStore) GetLastActivityTimestamp(ctx context.Context, channelID int64) (int64, error) {
	var activity schema.Activity
	err := s.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("timestamp DESC").
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get last activity timestamp: %w", err)
	}
	return activity.Timestamp, nil
}

// CharCountByIdentity returns the total character count per identity for a channel
func (s *pgStore) CharCountByIdentity(ctx context.Context, channelID int64, fromTimestamp int64) ([]CharCountRow, error) {
	var rows []CharCountRow
	err := s.db.WithContext(ctx).
		Model(&schema.Activity{}).
		Select("identities.name, identities.discriminator, SUM(activities.char_count) AS char_count").
		Joins("JOIN identities ON identities.id = activities.identity_id").
		Where("activities.channel_id = ? AND activities.timestamp >= ?", channelID, fromTimestamp).
		Group("identities.name, identities.discriminator").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to roll up char counts: %w", err)
	}
	return rows, nil
}

// ListChannelActivitySince returns activity rows with author identity for a channel
func (s *pgStore) ListChannelActivitySince(ctx context.Context, channelID int64, floorTimestamp int64) ([]ChannelActivityRow, error) {
	var rows []ChannelActivityRow
	err := s.db.WithContext(ctx).
		Model(&schema.Activity{}).
		Select("identities.name, identities.discriminator, activities.timestamp, activities.char_count").
		Joins("JOIN identities ON identities.id = activities.identity_id").
		Where("activities.channel_id = ? AND activities.timestamp > ?", channelID, floorTimestamp).
		Order("activities.timestamp ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list channel activity: %w", err)
	}
	return rows, nil
}

// GetPreference retrieves the preference row for an identity
func (s *pgStore) GetPreference(ctx context.Context, identityID int64) (*schema.Preference, error) {
	var pref schema.Preference
	err := s.db.WithContext(ctx).Where("identity_id = ?", identityID).First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	return &pref, nil
}

// UpsertPreference creates or overwrites the preference row for an identity
func (s *pgStore) UpsertPreference(ctx context.Context, pref *schema.Preference) error {
	if err := s.db.WithContext(ctx).Save(pref).Error; err != nil {
		return fmt.Errorf("failed to upsert preference: %w", err)
	}
	return nil
}

// ListPreferences retrieves all preference rows
func (s *pgStore) ListPreferences(ctx context.Context) ([]schema.Preference, error) {
	var prefs []schema.Preference
	if err := s.db.WithContext(ctx).Find(&prefs).Error; err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	return prefs, nil
}

// ListTrackedSymbols retrieves the set of tracked symbols
func (s *pgStore) ListTrackedSymbols(ctx context.Context) ([]string, error) {
	var symbols []string
	err := s.db.WithContext(ctx).
		Model(&schema.TrackedSymbol{}).
		Order("symbol ASC").
		Pluck("symbol", &symbols).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked symbols: %w", err)
	}
	return symbols, nil
}

// AddTrackedSymbol adds a symbol to the tracked set
func (s *pgStore) AddTrackedSymbol(ctx context.Context, symbol string) error {
	tracked := schema.TrackedSymbol{Symbol: symbol}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}},
		DoNothing: true,
	}).Create(&tracked).Error
	if err != nil {
		return fmt.Errorf("failed to add tracked symbol: %w", err)
	}
	return nil
}

// CreateAlert creates an alert row
func (s *pgStore) CreateAlert(ctx context.Context, alert *schema.Alert) error {
	if err := s.db.WithContext(ctx).Create(alert).Error; err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// ListOpenAlerts retrieves all open alerts
func (s *pgStore) ListOpenAlerts(ctx context.Context) ([]schema.Alert, error) {
	var alerts []schema.Alert
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

// ListAlertsBySymbol retrieves open alerts for one symbol
func (s *pgStore) ListAlertsBySymbol(ctx context.Context, symbol string) ([]schema.Alert, error) {
	var alerts []schema.Alert
	err := s.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("id ASC").
		Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts by symbol: %w", err)
	}
	return alerts, nil
}

// DeleteAlert removes an alert
func (s *pgStore) DeleteAlert(ctx context.Context, alertID int64) error {
	result := s.db.WithContext(ctx).Delete(&schema.Alert{}, alertID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete alert: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAlertNotFound
	}
	return nil
}

// CreateQuoteTick appends a quote observation
func (s *pgStore) CreateQuoteTick(ctx context.Context, tick *schema.QuoteTick) error {
	if err := s.db.WithContext(ctx).Create(tick).Error; err != nil {
		return fmt.Errorf("failed to create quote tick: %w", err)
	}
	return nil
}

// QuoteHistory returns ticks per symbol at or after fromTimestamp
func (s *pgStore) QuoteHistory(ctx context.Context, symbols []string, fromTimestamp int64) (map[string][]schema.QuoteTick, error) {
	result := make(map[string][]schema.QuoteTick)
	if len(symbols) == 0 {
		return result, nil
	}

	var ticks []schema.QuoteTick
	err := s.db.WithContext(ctx).
		Where("symbol IN ? AND timestamp >= ?", symbols, fromTimestamp).
		Order("timestamp ASC").
		Find(&ticks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get quote history: %w", err)
	}

	for _, tick := range ticks {
		result[tick.Symbol] = append(result[tick.Symbol], tick)
	}
	return result, nil
}
