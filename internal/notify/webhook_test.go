package notify

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/bodega-labs/chatwatch/internal/adapter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingHTTPClient records the last Post it received
type capturingHTTPClient struct {
	url     string
	headers map[string]string
	body    []byte
	err     error
}

func (c *capturingHTTPClient) Get(_ context.Context, _ string, _ interface{}) error {
	return errors.New("not implemented")
}

func (c *capturingHTTPClient) Post(_ context.Context, url string, _ string, headers map[string]string, body io.Reader) ([]byte, error) {
	c.url = url
	c.headers = headers
	c.body, _ = io.ReadAll(body)
	return nil, c.err
}

// fixedClock pins Now to a known instant
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time                  { return c.now }
func (c *fixedClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }
func (c *fixedClock) Sleep(time.Duration)             {}
func (c *fixedClock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- c.now.Add(d)
	return ch
}

func TestSendSignsPayload(t *testing.T) {
	http := &capturingHTTPClient{}
	clock := &fixedClock{now: time.Unix(1700000000, 0)}
	notifier := NewWebhookNotifier(http, adapter.NewJSON(), clock, "https://relay.example.com/hook", "topsecret")

	require.NoError(t, notifier.Send(context.Background(), 42, "GME alert: price=250.00"))

	assert.Equal(t, "https://relay.example.com/hook", http.url)
	assert.Equal(t, "1700000000", http.headers["X-Webhook-Timestamp"])

	var msg Message
	require.NoError(t, json.Unmarshal(http.body, &msg))
	assert.Equal(t, int64(42), msg.ChannelID)
	assert.Equal(t, "GME alert: price=250.00", msg.Text)
	assert.NotEmpty(t, msg.EventID)
	assert.Equal(t, msg.EventID, http.headers["X-Webhook-Event-Id"])

	// Recompute the signature over {timestamp}.{event_id}.{json_body}.
	mac := hmac.New(sha256.New, []byte("topsecret"))
	mac.Write([]byte(fmt.Sprintf("1700000000.%s.%s", msg.EventID, string(http.body))))
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	assert.Equal(t, expected, http.headers["X-Webhook-Signature"])
}

func TestSendPropagatesDeliveryFailure(t *testing.T) {
	http := &capturingHTTPClient{err: errors.New("relay unavailable")}
	notifier := NewWebhookNotifier(http, adapter.NewJSON(), &fixedClock{now: time.Unix(1, 0)}, "https://relay.example.com/hook", "s")

	err := notifier.Send(context.Background(), 1, "hello")
	assert.Error(t, err)
}
