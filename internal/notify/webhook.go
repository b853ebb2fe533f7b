package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/bodega-labs/chatwatch/internal/adapter"
)

// WebhookNotifier delivers messages by POSTing signed payloads to the chat
// relay webhook. Payloads carry an HMAC-SHA256 signature over
// {timestamp}.{event_id}.{json_body} so the relay can verify integrity and
// reject replays.
type WebhookNotifier struct {
	http   adapter.HTTPClient
	json   adapter.JSON
	clock  adapter.Clock
	url    string
	secret string
}

// NewWebhookNotifier creates a signed webhook notifier
func NewWebhookNotifier(http adapter.HTTPClient, json adapter.JSON, clock adapter.Clock, url, secret string) *WebhookNotifier {
	return &WebhookNotifier{
		http:   http,
		json:   json,
		clock:  clock,
		url:    url,
		secret: secret,
	}
}

// Send implements Notifier
func (n *WebhookNotifier) Send(ctx context.Context, channelID int64, text string) error {
	msg := Message{
		EventID:   uuid.New().String(),
		ChannelID: channelID,
		Text:      text,
	}

	payload, err := n.json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	timestamp := n.clock.Now().Unix()
	signature := signPayload(n.secret, timestamp, msg.EventID, payload)

	headers := map[string]string{
		"X-Webhook-Signature": signature,
		"X-Webhook-Timestamp": fmt.Sprintf("%d", timestamp),
		"X-Webhook-Event-Id":  msg.EventID,
	}

	if _, err := n.http.Post(ctx, n.url, "application/json", headers, bytes.NewReader(payload)); err != nil {
		return fmt.Errorf("failed to deliver message: %w", err)
	}
	return nil
}

// signPayload generates the HMAC-SHA256 signature over
// {timestamp}.{event_id}.{json_body}, hex encoded with an algorithm prefix
func signPayload(secret string, timestamp int64, eventID string, payload []byte) string {
	signaturePayload := fmt.Sprintf("%d.%s.%s", timestamp, eventID, string(payload))

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(signaturePayload))
	return "sha256=" + hex.EncodeToString(h.Sum(nil))
}
