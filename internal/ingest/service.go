package ingest

import (
	"context"
	"fmt"
	"sync"

	"github.com/bodega-labs/chatwatch/internal/domain"
	"github.com/bodega-labs/chatwatch/internal/logger"
	"github.com/bodega-labs/chatwatch/internal/store"
	"github.com/bodega-labs/chatwatch/internal/store/schema"

	"go.uber.org/zap"
)

// Service ingests chat activity into the store. It keeps two write-through
// caches in front of the database: an identity cache keyed by
// (name, discriminator) and a dedup index keyed by
// (identity, channel, timestamp). Cache entries are added only after the
// corresponding row is durably written, so a crash can never leave the cache
// claiming a row that does not exist.
type Service struct {
	store store.Store

	mu         sync.Mutex
	identities map[domain.IdentityKey]int64
	seen       map[domain.ActivityKey]struct{}
}

// NewService creates a new ingestion service with cold caches
func NewService(s store.Store) *Service {
	return &Service{
		store:      s,
		identities: make(map[domain.IdentityKey]int64),
		seen:       make(map[domain.ActivityKey]struct{}),
	}
}

// WarmCache rebuilds both caches from the store. Safe to call on a running
// service; the rebuilt state replaces the current one atomically.
func (s *Service) WarmCache(ctx context.Context) error {
	identities, err := s.store.ListIdentities(ctx)
	if err != nil {
		return fmt.Errorf("failed to list identities: %w", err)
	}

	keys, err := s.store.ListActivityKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list activity keys: %w", err)
	}

	identityCache := make(map[domain.IdentityKey]int64, len(identities))
	for _, identity := range identities {
		identityCache[domain.IdentityKey{Name: identity.Name, Discriminator: identity.Discriminator}] = identity.ID
	}

	seen := make(map[domain.ActivityKey]struct{}, len(keys))
	for _, key := range keys {
		seen[key] = struct{}{}
	}

	s.mu.Lock()
	s.identities = identityCache
	s.seen = seen
	s.mu.Unlock()

	logger.InfoCtx(ctx, "ingest caches warmed",
		zap.Int("identities", len(identityCache)),
		zap.Int("activityKeys", len(seen)))
	return nil
}

// Reset drops both caches without touching the store. Subsequent lookups
// fall back to the database and repopulate.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identities = make(map[domain.IdentityKey]int64)
	s.seen = make(map[domain.ActivityKey]struct{})
}

// EnsureIdentity resolves the stable identity ID for a (name, discriminator)
// key, creating the row on first sight. The same key always resolves to the
// same ID, cached or not.
func (s *Service) EnsureIdentity(ctx context.Context, key domain.IdentityKey) (int64, error) {
	s.mu.Lock()
	if id, ok := s.identities[key]; ok {
		s.mu.Unlock()
		return id, nil
	}
	s.mu.Unlock()

	identity, err := s.store.GetIdentityByKey(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to get identity: %w", err)
	}
	if identity == nil {
		identity, err = s.store.CreateIdentity(ctx, key)
		if err != nil {
			return 0, fmt.Errorf("failed to create identity: %w", err)
		}
	}

	s.mu.Lock()
	s.identities[key] = identity.ID
	s.mu.Unlock()

	return identity.ID, nil
}

// RecordActivity persists one activity event. Replays of an event already
// recorded, whether caught by the cache or by the database, are absorbed
// without a duplicate row. Returns true when a new row was written.
func (s *Service) RecordActivity(ctx context.Context, event domain.ActivityEvent) (bool, error) {
	identityID, err := s.EnsureIdentity(ctx, event.User)
	if err != nil {
		return false, err
	}

	key := domain.ActivityKey{
		IdentityID: identityID,
		ChannelID:  event.ChannelID,
		Timestamp:  event.Timestamp,
	}

	s.mu.Lock()
	if _, ok := s.seen[key]; ok {
		s.mu.Unlock()
		return false, nil
	}
	s.mu.Unlock()

	existing, err := s.store.FindActivity(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to find activity: %w", err)
	}
	if existing != nil {
		// Cold cache replay. Remember the key so the next replay skips the
		// database round trip.
		s.mu.Lock()
		s.seen[key] = struct{}{}
		s.mu.Unlock()
		return false, nil
	}

	activity := &schema.Activity{
		IdentityID: identityID,
		ChannelID:  event.ChannelID,
		Timestamp:  event.Timestamp,
		WordCount:  event.WordCount,
		CharCount:  event.CharCount,
	}
	if err := s.store.CreateActivity(ctx, activity); err != nil {
		return false, fmt.Errorf("failed to create activity: %w", err)
	}

	s.mu.Lock()
	s.seen[key] = struct{}{}
	s.mu.Unlock()

	return true, nil
}

// LastActivityTimestamp returns the newest recorded timestamp for a channel,
// 0 when the channel has no recorded activity. Backfills resume from here.
func (s *Service) LastActivityTimestamp(ctx context.Context, channelID int64) (int64, error) {
	ts, err := s.store.GetLastActivityTimestamp(ctx, channelID)
	if err != nil {
		return 0, fmt.Errorf("failed to get last activity timestamp: %w", err)
	}
	return ts, nil
}
