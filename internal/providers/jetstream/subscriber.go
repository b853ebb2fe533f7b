package jetstream

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/bodega-labs/chatwatch/internal/adapter"
	"github.com/bodega-labs/chatwatch/internal/domain"
	"github.com/bodega-labs/chatwatch/internal/logger"
	"github.com/bodega-labs/chatwatch/internal/messaging"
)

// errUnparseable marks payloads that can never deserialize; such messages
// are terminated instead of requeued.
var errUnparseable = errors.New("unparseable payload")

// subscriber is the shared consumer loop behind both typed subscribers.
// Messages are processed one at a time in arrival order; a handler error
// NAKs the message for redelivery, an unparseable payload is terminated.
type subscriber struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	json   adapter.JSON
	config Config
}

func newSubscriber(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (*subscriber, error) {
	nc, js, err := natsJS.Connect(cfg.URL, cfg.connectOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &subscriber{
		nc:     nc,
		js:     js,
		json:   jsonAdapter,
		config: cfg,
	}, nil
}

// run consumes messages from the stream serially until ctx is canceled.
// A handler error wrapping errUnparseable terminates the message; any other
// error NAKs it for redelivery.
func (s *subscriber) run(ctx context.Context, subject string, handle func(ctx context.Context, data []byte) error) error {
	logger.Info("Starting consumer",
		zap.String("stream", s.config.StreamName),
		zap.String("consumer", s.config.ConsumerName),
		zap.String("subject", subject))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       s.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       s.config.AckWait,
		MaxDeliver:    s.config.MaxDeliver,
		FilterSubject: subject,
	}

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, s.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	// Messages are handled inline, never in a goroutine: two observations
	// for the same symbol must not be evaluated concurrently.
	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down consumer")
			return ctx.Err()
		case msg := <-msgChan:
			s.handleMessage(ctx, msg, handle)
		}
	}
}

// handleMessage processes a single NATS message
func (s *subscriber) handleMessage(ctx context.Context, msg adapter.Message, handle func(ctx context.Context, data []byte) error) {
	metadata, _ := msg.Metadata()
	if metadata != nil {
		logger.Debug("Received message", zap.Uint64("deliveryCount", metadata.NumDelivered))
	}

	if err := handle(ctx, msg.Data()); err != nil {
		if errors.Is(err, errUnparseable) {
			logger.Error(err, zap.String("message", "Failed to unmarshal event"))
			// Terminate message for unparseable data
			if err := msg.Term(); err != nil {
				logger.Error(err, zap.String("message", "Failed to terminate message"))
			}
			return
		}

		logger.Error(err, zap.String("message", "Failed to handle event"))
		// NAK to retry
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// Close closes the NATS connection
func (s *subscriber) Close() {
	if s.nc == nil {
		return
	}

	s.nc.Close()
}

type activitySubscriber struct {
	*subscriber
}

// NewActivitySubscriber creates a JetStream subscriber for the chat activity
// stream
func NewActivitySubscriber(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.ActivitySubscriber, error) {
	s, err := newSubscriber(cfg, natsJS, jsonAdapter)
	if err != nil {
		return nil, err
	}
	return &activitySubscriber{subscriber: s}, nil
}

// Run implements messaging.ActivitySubscriber
func (s *activitySubscriber) Run(ctx context.Context, handler messaging.ActivityHandler) error {
	return s.run(ctx, "activity.>", func(ctx context.Context, data []byte) error {
		var event domain.ActivityEvent
		if err := s.json.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("%w: %s", errUnparseable, err)
		}
		return handler(ctx, &event)
	})
}

type observationSubscriber struct {
	*subscriber
}

// NewObservationSubscriber creates a JetStream subscriber for the quote
// observation feed
func NewObservationSubscriber(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.ObservationSubscriber, error) {
	s, err := newSubscriber(cfg, natsJS, jsonAdapter)
	if err != nil {
		return nil, err
	}
	return &observationSubscriber{subscriber: s}, nil
}

// Run implements messaging.ObservationSubscriber
func (s *observationSubscriber) Run(ctx context.Context, handler messaging.ObservationHandler) error {
	return s.run(ctx, "observations.>", func(ctx context.Context, data []byte) error {
		var event domain.ObservationEvent
		if err := s.json.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("%w: %s", errUnparseable, err)
		}
		return handler(ctx, &event)
	})
}
