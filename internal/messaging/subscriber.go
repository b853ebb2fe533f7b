package messaging

import (
	"context"

	"github.com/bodega-labs/chatwatch/internal/domain"
)

// ActivityHandler is called for each chat activity event received. A non-nil
// error requeues the event for redelivery.
type ActivityHandler func(ctx context.Context, event *domain.ActivityEvent) error

// ObservationHandler is called for each quote observation received. A non-nil
// error requeues the event for redelivery.
type ObservationHandler func(ctx context.Context, event *domain.ObservationEvent) error

// ActivitySubscriber consumes the chat activity stream
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=ActivitySubscriber=MockActivitySubscriber,ObservationSubscriber=MockObservationSubscriber
type ActivitySubscriber interface {
	// Run consumes activity events until ctx is canceled
	Run(ctx context.Context, handler ActivityHandler) error
	// Close closes the connection and cleans up resources
	Close()
}

// ObservationSubscriber consumes the quote observation feed. Observations
// are delivered one at a time; the subscriber must not invoke the handler
// for two observations concurrently.
type ObservationSubscriber interface {
	// Run consumes observation events until ctx is canceled
	Run(ctx context.Context, handler ObservationHandler) error
	// Close closes the connection and cleans up resources
	Close()
}
