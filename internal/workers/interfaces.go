package workers

import (
	"context"

	kafka "storefront-affiliates/internal/clients/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// EventMessage is an alias for the Kafka event message type.
// This allows worker packages to reference EventMessage without importing kafka directly.
type EventMessage = kafka.EventMessage

// EventProcessor defines the interface for processing events from Kafka.
// Implementations must be idempotent as events may be redelivered.
type EventProcessor interface {
	// Process handles a single event from Kafka.
	Process(ctx context.Context, event EventMessage) error

	// Name returns the processor name for logging and metrics.
	Name() string
}

// FallbackProcessor is implemented by processors that can hand an event off
// to durable retry (for example a job queue) once in-process attempts are
// exhausted. The offset is committed only if Fallback succeeds.
type FallbackProcessor interface {
	EventProcessor
	Fallback(ctx context.Context, event EventMessage, cause error) error
}

// EventConsumer defines the interface for consuming events from Kafka
// and distributing them to a worker pool.
type EventConsumer interface {
	// Start begins consuming events from Kafka and processing them.
	// Blocks until Stop is called.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the consumer, draining in-flight events.
	Stop()
}

// offsetCommitter commits processed Kafka messages.
type offsetCommitter interface {
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}
