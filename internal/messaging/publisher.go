package messaging

import (
	"context"

	"github.com/bodega-labs/chatwatch/internal/domain"
)

// Publisher defines the interface for publishing observation events to the
// message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishObservation publishes one quote observation to the feed
	PublishObservation(ctx context.Context, event *domain.ObservationEvent) error
	// Close closes the connection
	Close()
}
