package store

import (
	"context"
	"sort"
	"sync"

	"github.com/bodega-labs/chatwatch/internal/domain"
	"github.com/bodega-labs/chatwatch/internal/store/schema"
)

// MemoryStore is an in-memory Store implementation used by tests and local
// runs without Postgres. It mirrors the pg store's conflict semantics:
// duplicate identity or activity keys are absorbed, not surfaced.
type MemoryStore struct {
	mu          sync.RWMutex
	nextID      int64
	identities  map[domain.IdentityKey]*schema.Identity
	activities  map[domain.ActivityKey]*schema.Activity
	preferences map[int64]*schema.Preference
	symbols     map[string]struct{}
	alerts      map[int64]*schema.Alert
	ticks       []schema.QuoteTick
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:      1,
		identities:  make(map[domain.IdentityKey]*schema.Identity),
		activities:  make(map[domain.ActivityKey]*schema.Activity),
		preferences: make(map[int64]*schema.Preference),
		symbols:     make(map[string]struct{}),
		alerts:      make(map[int64]*schema.Alert),
	}
}

func (s *MemoryStore) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// GetIdentityByKey retrieves an identity by key, nil when absent
func (s *MemoryStore) GetIdentityByKey(_ context.Context, key domain.IdentityKey) (*schema.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	identity, ok := s.identities[key]
	if !ok {
		return nil, nil
	}
	identityCopy := *identity
	return &identityCopy, nil
}

// CreateIdentity creates an identity or returns the existing row for the key
func (s *MemoryStore) CreateIdentity(_ context.Context, key domain.IdentityKey) (*schema.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.identities[key]; ok {
		identityCopy := *existing
		return &identityCopy, nil
	}

	identity := &schema.Identity{
		ID:            s.allocID(),
		Name:          key.Name,
		Discriminator: key.Discriminator,
	}
	s.identities[key] = identity

	identityCopy := *identity
	return &identityCopy, nil
}

// ListIdentities retrieves all identities
func (s *MemoryStore) ListIdentities(_ context.Context) ([]schema.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]schema.Identity, 0, len(s.identities))
	for _, identity := range s.identities {
		result = append(result, *identity)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// FindActivity retrieves an activity row by dedup key, nil when absent
func (s *MemoryStore) FindActivity(_ context.Context, key domain.ActivityKey) (*schema.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activity, ok := s.activities[key]
	if !ok {
		return nil, nil
	}
	activityCopy := *activity
	return &activityCopy, nil
}

// CreateActivity inserts an activity row; duplicate dedup keys are a no-op
func (s *MemoryStore) CreateActivity(_ context.Context, activity *schema.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.ActivityKey{
		IdentityID: activity.IdentityID,
		ChannelID:  activity.ChannelID,
		Timestamp:  activity.Timestamp,
	}
	if _, exists := s.activities[key]; exists {
		return nil
	}

	activityCopy := *activity
	activityCopy.ID = s.allocID()
	s.activities[key] = &activityCopy
	return nil
}

// ListActivityKeys retrieves every dedup key in the store
func (s *MemoryStore) ListActivityKeys(_ context.Context) ([]domain.ActivityKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.ActivityKey, 0, len(s.activities))
	for key := range s.activities {
		result = append(result, key)
	}
	return result, nil
}

// GetLastActivityTimestamp returns the newest activity timestamp for a channel
func (s *MemoryStore) GetLastActivityTimestamp(_ context.Context, channelID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var last int64
	for key := range s.activities {
		if key.ChannelID == channelID && key.Timestamp > last {
			last = key.Timestamp
		}
	}
	return last, nil
}

// CharCountByIdentity returns the total character count per identity for a channel
func (s *MemoryStore) CharCountByIdentity(_ context.Context, channelID int64, fromTimestamp int64) ([]CharCountRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID := make(map[int64]*schema.Identity)
	for _, identity := range s.identities {
		byID[identity.ID] = identity
	}

	totals := make(map[int64]int64)
	for _, activity := range s.activities {
		if activity.ChannelID != channelID || activity.Timestamp < fromTimestamp {
			continue
		}
		totals[activity.IdentityID] += int64(activity.CharCount)
	}

	result := make([]CharCountRow, 0, len(totals))
	for identityID, total := range totals {
		identity, ok := byID[identityID]
		if !ok {
			continue
		}
		result = append(result, CharCountRow{
			Name:          identity.Name,
			Discriminator: identity.Discriminator,
			CharCount:     total,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ListChannelActivitySince returns activity rows with author identity for a channel
func (s *MemoryStore) ListChannelActivitySince(_ context.Context, channelID int64, floorTimestamp int64) ([]ChannelActivityRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID := make(map[int64]*schema.Identity)
	for _, identity := range s.identities {
		byID[identity.ID] = identity
	}

	var result []ChannelActivityRow
	for _, activity := range s.activities {
		if activity.ChannelID != channelID || activity.Timestamp <= floorTimestamp {
			continue
		}
		identity, ok := byID[activity.IdentityID]
		if !ok {
			continue
		}
		result = append(result, ChannelActivityRow{
			Name:          identity.Name,
			Discriminator: identity.Discriminator,
			Timestamp:     activity.Timestamp,
			CharCount:     int64(activity.CharCount),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Timestamp < result[j].Timestamp })
	return result, nil
}

// GetPreference retrieves the preference row for an identity, nil when absent
func (s *MemoryStore) GetPreference(_ context.Context, identityID int64) (*schema.Preference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pref, ok := s.preferences[identityID]
	if !ok {
		return nil, nil
	}
	prefCopy := *pref
	return &prefCopy, nil
}

// UpsertPreference creates or overwrites the preference row for an identity
func (s *MemoryStore) UpsertPreference(_ context.Context, pref *schema.Preference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefCopy := *pref
	s.preferences[pref.IdentityID] = &prefCopy
	return nil
}

// ListPreferences retrieves all preference rows
func (s *MemoryStore) ListPreferences(_ context.Context) ([]schema.Preference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]schema.Preference, 0, len(s.preferences))
	for _, pref := range s.preferences {
		result = append(result, *pref)
	}
	return result, nil
}

// ListTrackedSymbols retrieves the set of tracked symbols
func (s *MemoryStore) ListTrackedSymbols(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, 0, len(s.symbols))
	for symbol := range s.symbols {
		result = append(result, symbol)
	}
	sort.Strings(result)
	return result, nil
}

// AddTrackedSymbol adds a symbol to the tracked set; idempotent
func (s *MemoryStore) AddTrackedSymbol(_ context.Context, symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.symbols[symbol] = struct{}{}
	return nil
}

// CreateAlert creates an alert row
func (s *MemoryStore) CreateAlert(_ context.Context, alert *schema.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	alertCopy := *alert
	alertCopy.ID = s.allocID()
	s.alerts[alertCopy.ID] = &alertCopy
	alert.ID = alertCopy.ID
	return nil
}

// ListOpenAlerts retrieves all open alerts
func (s *MemoryStore) ListOpenAlerts(_ context.Context) ([]schema.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]schema.Alert, 0, len(s.alerts))
	for _, alert := range s.alerts {
		result = append(result, *alert)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ListAlertsBySymbol retrieves open alerts for one symbol
func (s *MemoryStore) ListAlertsBySymbol(_ context.Context, symbol string) ([]schema.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []schema.Alert
	for _, alert := range s.alerts {
		if alert.Symbol == symbol {
			result = append(result, *alert)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// DeleteAlert removes an alert
func (s *MemoryStore) DeleteAlert(_ context.Context, alertID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.alerts[alertID]; !ok {
		return domain.ErrAlertNotFound
	}
	delete(s.alerts, alertID)
	return nil
}

// CreateQuoteTick appends a quote observation
func (s *MemoryStore) CreateQuoteTick(_ context.Context, tick *schema.QuoteTick) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickCopy := *tick
	tickCopy.ID = s.allocID()
	s.ticks = append(s.ticks, tickCopy)
	return nil
}

// QuoteHistory returns ticks per symbol at or after fromTimestamp
func (s *MemoryStore) QuoteHistory(_ context.Context, symbols []string, fromTimestamp int64) (map[string][]schema.QuoteTick, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]struct{}, len(symbols))
	for _, symbol := range symbols {
		wanted[symbol] = struct{}{}
	}

	result := make(map[string][]schema.QuoteTick)
	for _, tick := range s.ticks {
		if _, ok := wanted[tick.Symbol]; !ok {
			continue
		}
		if tick.Timestamp < fromTimestamp {
			continue
		}
		result[tick.Symbol] = append(result[tick.Symbol], tick)
	}
	for symbol := range result {
		ticks := result[symbol]
		sort.Slice(ticks, func(i, j int) bool { return ticks[i].Timestamp < ticks[j].Timestamp })
		result[symbol] = ticks
	}
	return result, nil
}
