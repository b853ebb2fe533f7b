package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/bodega-labs/chatwatch/internal/preference"
	"github.com/bodega-labs/chatwatch/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMediaClient struct {
	urls []string
	err  error
}

func (c *stubMediaClient) Search(_ context.Context, _ string) ([]string, error) {
	return c.urls, c.err
}

type recordingNotifier struct {
	sent []string
}

func (n *recordingNotifier) Send(_ context.Context, _ int64, text string) error {
	n.sent = append(n.sent, text)
	return nil
}

func TestHandleRecordsAndDelivers(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewService(st)
	prefs := preference.NewStoreWithCooldown(st, 100)

	notifier := &recordingNotifier{}
	handler := NewHandler(svc, prefs, &stubMediaClient{urls: []string{"https://gif.example.com/a"}}, notifier)

	event := testEvent("alice", "0001", 1, 1000)

	// No keyword yet: records but never delivers.
	require.NoError(t, handler.Handle(ctx, &event))
	assert.Empty(t, notifier.sent)

	identityID, err := svc.EnsureIdentity(ctx, event.User)
	require.NoError(t, err)
	require.NoError(t, prefs.Upsert(ctx, identityID, preference.Record{Keyword: "cats", Timestamp: 1000}))

	// Inside the window: no delivery.
	next := testEvent("alice", "0001", 1, 1050)
	require.NoError(t, handler.Handle(ctx, &next))
	assert.Empty(t, notifier.sent)

	// Past the window: one delivery, and the stamp restarts the window.
	later := testEvent("alice", "0001", 1, 1101)
	require.NoError(t, handler.Handle(ctx, &later))
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "https://gif.example.com/a", notifier.sent[0])

	again := testEvent("alice", "0001", 1, 1150)
	require.NoError(t, handler.Handle(ctx, &again))
	assert.Len(t, notifier.sent, 1)
}

func TestHandleDuplicateSkipsGate(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewService(st)
	prefs := preference.NewStoreWithCooldown(st, 100)

	notifier := &recordingNotifier{}
	handler := NewHandler(svc, prefs, &stubMediaClient{urls: []string{"https://gif.example.com/a"}}, notifier)

	event := testEvent("bob", "0002", 1, 1000)
	require.NoError(t, handler.Handle(ctx, &event))

	identityID, err := svc.EnsureIdentity(ctx, event.User)
	require.NoError(t, err)
	require.NoError(t, prefs.Upsert(ctx, identityID, preference.Record{Keyword: "dogs", Timestamp: 0}))

	// Redelivery of the same event does not reach the gate.
	require.NoError(t, handler.Handle(ctx, &event))
	assert.Empty(t, notifier.sent)
}

func TestHandleMediaFailureDoesNotRequeue(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewService(st)
	prefs := preference.NewStoreWithCooldown(st, 100)

	handler := NewHandler(svc, prefs, &stubMediaClient{err: errors.New("gif source down")}, &recordingNotifier{})

	event := testEvent("carol", "0003", 1, 1000)
	identityID, err := svc.EnsureIdentity(ctx, event.User)
	require.NoError(t, err)
	require.NoError(t, prefs.Upsert(ctx, identityID, preference.Record{Keyword: "cats", Timestamp: 0}))

	// The activity is recorded; the failed gif search is absorbed.
	require.NoError(t, handler.Handle(ctx, &event))

	keys, err := st.ListActivityKeys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestHandleIngestionOnlyMode(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewService(st)
	prefs := preference.NewStore(st)

	handler := NewHandler(svc, prefs, nil, nil)

	event := testEvent("dave", "0004", 1, 1000)
	require.NoError(t, handler.Handle(ctx, &event))

	keys, err := st.ListActivityKeys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}
