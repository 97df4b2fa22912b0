package messaging

import (
	"context"

	"github.com/rives-io/rives-aggregator/internal/domain"
)

// Publisher defines the interface for publishing notices to the message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishNotice publishes a notice envelope on its kind's subject
	PublishNotice(ctx context.Context, notice *domain.Notice) error
	// Close closes the connection
	Close()
}
