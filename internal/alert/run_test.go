package alert

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodega-labs/chatwatch/internal/domain"
	"github.com/bodega-labs/chatwatch/internal/messaging"
	"github.com/bodega-labs/chatwatch/internal/mocks"
	"github.com/bodega-labs/chatwatch/internal/store"
)

// testEngineMocks contains all the mocks needed for testing the engine feed loop
type testEngineMocks struct {
	ctrl     *gomock.Controller
	quotes   *mocks.MockQuoteClient
	notifier *mocks.MockNotifier
	feed     *mocks.MockObservationSubscriber
	store    *store.MemoryStore
	engine   *Engine
}

func setupTestEngine(t *testing.T) *testEngineMocks {
	ctrl := gomock.NewController(t)

	tm := &testEngineMocks{
		ctrl:     ctrl,
		quotes:   mocks.NewMockQuoteClient(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		feed:     mocks.NewMockObservationSubscriber(ctrl),
		store:    store.NewMemoryStore(),
	}
	tm.engine = NewEngine(tm.store, tm.quotes, tm.notifier)

	return tm
}

func tearDownTestEngine(tm *testEngineMocks) {
	tm.ctrl.Finish()
}

func TestEngine_Run_ForwardsObservations(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	ctx := context.Background()

	tm.quotes.EXPECT().
		GetQuote(gomock.Any(), "GME").
		Return(domain.Quote{Symbol: "GME", Price: 150, DayLow: 149, DayHigh: 151}, nil)

	_, err := tm.engine.AddAlert(ctx, Params{Symbol: "GME", Low: 100, High: 200, ChannelID: 9, IdentityID: 1})
	require.NoError(t, err)

	// The feed delivers one out-of-bound observation through the handler.
	tm.feed.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, handler messaging.ObservationHandler) error {
			return handler(ctx, &domain.ObservationEvent{
				EventID: "01HTEST",
				Observation: domain.Observation{
					Symbol:     "GME",
					Price:      250,
					DayLow:     240,
					DayHigh:    255,
					ObservedAt: time.Unix(1700000000, 0),
				},
			})
		})

	tm.notifier.EXPECT().
		Send(gomock.Any(), int64(9), gomock.Any()).
		Return(nil)

	require.NoError(t, tm.engine.Run(ctx, tm.feed))

	// Delivery succeeded, so the alert is retired.
	alerts, err := tm.store.ListOpenAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestEngine_Run_HandlerErrorPropagates(t *testing.T) {
	tm := setupTestEngine(t)
	defer tearDownTestEngine(tm)

	ctx := context.Background()

	// An in-bounds observation needs no notifier and keeps the loop clean.
	tm.feed.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, handler messaging.ObservationHandler) error {
			return handler(ctx, &domain.ObservationEvent{
				EventID: "01HTEST2",
				Observation: domain.Observation{
					Symbol:     "MSFT",
					Price:      300,
					ObservedAt: time.Unix(1700000000, 0),
				},
			})
		})

	assert.NoError(t, tm.engine.Run(ctx, tm.feed))
}
