package notify

import (
	"context"
)

// Message is one outbound channel message
type Message struct {
	EventID   string `json:"event_id"`
	ChannelID int64  `json:"channel_id"`
	Text      string `json:"text"`
}

// Notifier delivers messages to chat channels
//
//go:generate mockgen -source=notifier.go -destination=../mocks/notifier.go -package=mocks -mock_names=Notifier=MockNotifier
type Notifier interface {
	// Send delivers text to a channel. A nil return means the message was
	// accepted by the delivery endpoint; callers may treat the delivery as
	// durable.
	Send(ctx context.Context, channelID int64, text string) error
}
