package ingest

import (
	"context"

	"go.uber.org/zap"

	"github.com/bodega-labs/chatwatch/internal/domain"
	"github.com/bodega-labs/chatwatch/internal/logger"
	"github.com/bodega-labs/chatwatch/internal/media"
	"github.com/bodega-labs/chatwatch/internal/messaging"
	"github.com/bodega-labs/chatwatch/internal/notify"
	"github.com/bodega-labs/chatwatch/internal/preference"
)

// Handler processes the live activity stream: every event is recorded
// through the ingestion service, then run through the media cooldown gate.
// An identity with a stored keyword gets a GIF posted to the event's channel
// at most once per cooldown window.
type Handler struct {
	service     *Service
	preferences *preference.Store
	media       media.Client
	notifier    notify.Notifier
}

// NewHandler creates an activity stream handler. media and notifier may be
// nil to disable cooldown-gated delivery (ingestion only).
func NewHandler(service *Service, preferences *preference.Store, mediaClient media.Client, notifier notify.Notifier) *Handler {
	return &Handler{
		service:     service,
		preferences: preferences,
		media:       mediaClient,
		notifier:    notifier,
	}
}

// Handle implements messaging.ActivityHandler. Recording failures propagate
// so the stream redelivers the event; delivery failures after a recorded
// event are logged and absorbed.
func (h *Handler) Handle(ctx context.Context, event *domain.ActivityEvent) error {
	created, err := h.service.RecordActivity(ctx, *event)
	if err != nil {
		return err
	}
	if !created {
		logger.DebugCtx(ctx, "duplicate activity absorbed",
			zap.String("user", event.User.String()),
			zap.Int64("channelID", event.ChannelID),
			zap.Int64("timestamp", event.Timestamp))
		return nil
	}

	if h.media == nil || h.notifier == nil {
		return nil
	}

	identityID, err := h.service.EnsureIdentity(ctx, event.User)
	if err != nil {
		return err
	}

	keyword, fire, err := h.preferences.GateDelivery(ctx, identityID, event.Timestamp)
	if err != nil {
		return err
	}
	if !fire {
		return nil
	}

	candidates, err := h.media.Search(ctx, keyword)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "gif search failed"), zap.String("keyword", keyword))
		return nil
	}

	gifURL := media.Pick(candidates)
	if gifURL == "" {
		logger.InfoCtx(ctx, "no gif found", zap.String("keyword", keyword))
		return nil
	}

	if err := h.notifier.Send(ctx, event.ChannelID, gifURL); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "gif delivery failed"), zap.Int64("channelID", event.ChannelID))
	}
	return nil
}

// Run consumes the activity stream until ctx is canceled
func (h *Handler) Run(ctx context.Context, stream messaging.ActivitySubscriber) error {
	return stream.Run(ctx, h.Handle)
}
