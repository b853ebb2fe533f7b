package preference

import (
	"context"
	"fmt"
	"sync"

	"github.com/bodega-labs/chatwatch/internal/store"
	"github.com/bodega-labs/chatwatch/internal/store/schema"
)

// DefaultCooldown is the minimum gap, in seconds, between two media
// deliveries to the same identity. Three days.
const DefaultCooldown int64 = 60 * 60 * 24 * 3

// Record is one identity's media preference: the keyword to search for and
// the timestamp of the last delivery.
type Record struct {
	Keyword   string
	Timestamp int64
}

// Store is a read-through cache over the preferences table. Reads for an
// identity with no stored row return the zero Record rather than an error;
// writes go to the database first and update the cache only on success.
type Store struct {
	store    store.Store
	cooldown int64

	mu    sync.Mutex
	cache map[int64]Record
}

// NewStore creates a preference store with the default cooldown
func NewStore(s store.Store) *Store {
	return &Store{
		store:    s,
		cooldown: DefaultCooldown,
		cache:    make(map[int64]Record),
	}
}

// NewStoreWithCooldown creates a preference store with a custom cooldown in
// seconds
func NewStoreWithCooldown(s store.Store, cooldown int64) *Store {
	ps := NewStore(s)
	ps.cooldown = cooldown
	return ps
}

// WarmCache loads every preference row into the cache
func (s *Store) WarmCache(ctx context.Context) error {
	rows, err := s.store.ListPreferences(ctx)
	if err != nil {
		return fmt.Errorf("failed to list preferences: %w", err)
	}

	cache := make(map[int64]Record, len(rows))
	for _, row := range rows {
		cache[row.IdentityID] = Record{Keyword: row.Keyword, Timestamp: row.Timestamp}
	}

	s.mu.Lock()
	s.cache = cache
	s.mu.Unlock()
	return nil
}

// Get returns the preference record for an identity. An identity that never
// set a preference gets the zero record, which always passes the cooldown
// gate.
func (s *Store) Get(ctx context.Context, identityID int64) (Record, error) {
	s.mu.Lock()
	if rec, ok := s.cache[identityID]; ok {
		s.mu.Unlock()
		return rec, nil
	}
	s.mu.Unlock()

	row, err := s.store.GetPreference(ctx, identityID)
	if err != nil {
		return Record{}, fmt.Errorf("failed to get preference: %w", err)
	}
	if row == nil {
		return Record{}, nil
	}

	rec := Record{Keyword: row.Keyword, Timestamp: row.Timestamp}
	s.mu.Lock()
	s.cache[identityID] = rec
	s.mu.Unlock()
	return rec, nil
}

// Upsert overwrites the preference record for an identity. The cache entry
// is replaced only after the row is durably written.
func (s *Store) Upsert(ctx context.Context, identityID int64, rec Record) error {
	row := &schema.Preference{
		IdentityID: identityID,
		Keyword:    rec.Keyword,
		Timestamp:  rec.Timestamp,
	}
	if err := s.store.UpsertPreference(ctx, row); err != nil {
		return fmt.Errorf("failed to upsert preference: %w", err)
	}

	s.mu.Lock()
	s.cache[identityID] = rec
	s.mu.Unlock()
	return nil
}

// CooldownOpen reports whether the identity is past its delivery cooldown at
// the given time. The gap must strictly exceed the cooldown; a delivery at
// exactly cooldown seconds after the last one is still suppressed.
func (s *Store) CooldownOpen(ctx context.Context, identityID int64, now int64) (bool, error) {
	rec, err := s.Get(ctx, identityID)
	if err != nil {
		return false, err
	}
	return now-rec.Timestamp > s.cooldown, nil
}

// MarkDelivered stamps the identity's preference with the delivery time,
// restarting the cooldown. The keyword is preserved.
func (s *Store) MarkDelivered(ctx context.Context, identityID int64, now int64) error {
	rec, err := s.Get(ctx, identityID)
	if err != nil {
		return err
	}
	rec.Timestamp = now
	return s.Upsert(ctx, identityID, rec)
}

// GateDelivery runs the cooldown gate for one observation. It returns the
// identity's keyword and whether a delivery should fire now. When the gate
// opens, the preference is stamped before returning, so a second observation
// inside the same window cannot fire again. Identities with no keyword never
// fire.
func (s *Store) GateDelivery(ctx context.Context, identityID int64, now int64) (string, bool, error) {
	rec, err := s.Get(ctx, identityID)
	if err != nil {
		return "", false, err
	}
	if rec.Keyword == "" {
		return "", false, nil
	}
	if now-rec.Timestamp <= s.cooldown {
		return rec.Keyword, false, nil
	}
	if err := s.Upsert(ctx, identityID, Record{Keyword: rec.Keyword, Timestamp: now}); err != nil {
		return "", false, err
	}
	return rec.Keyword, true, nil
}
