package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"storefront-affiliates/internal/observability"

	kafkago "github.com/segmentio/kafka-go"
)

// ConsumerConfig holds configuration for the Kafka event consumer.
type ConsumerConfig struct {
	// Brokers is the list of Kafka broker addresses.
	Brokers []string

	// ConsumerGroup is the Kafka consumer group ID.
	ConsumerGroup string

	// Topic is the Kafka topic to consume from.
	Topic string

	// NumWorkers is the number of concurrent workers.
	NumWorkers int

	// QueueSize is the buffer size for the event channel.
	QueueSize int

	// MaxAttempts is how many times a worker calls Process before giving up.
	MaxAttempts int

	// RetryBackoff is the pause between attempts, doubled after each failure.
	RetryBackoff time.Duration

	// DrainTimeout is the maximum time to wait for in-flight events during shutdown.
	DrainTimeout time.Duration
}

// DefaultConsumerConfig returns sensible defaults for a consumer.
func DefaultConsumerConfig(brokers []string, consumerGroup, topic string) ConsumerConfig {
	return ConsumerConfig{
		Brokers:       brokers,
		ConsumerGroup: consumerGroup,
		Topic:         topic,
		NumWorkers:    5,
		QueueSize:     100,
		MaxAttempts:   3,
		RetryBackoff:  200 * time.Millisecond,
		DrainTimeout:  30 * time.Second,
	}
}

// eventWithMsg pairs an event with its Kafka message for offset tracking.
type eventWithMsg struct {
	event EventMessage
	msg   kafkago.Message
}

// consumer implements the EventConsumer interface.
type consumer struct {
	config    ConsumerConfig
	reader    *kafkago.Reader
	committer offsetCommitter
	processor EventProcessor
	logger    *observability.Logger

	// Event channel for worker distribution
	eventCh chan eventWithMsg

	// Lifecycle management
	cancelFetch context.CancelFunc // cancels the fetch context
	doneCh      chan struct{}      // closed when Start() returns
	stopping    atomic.Bool
	stopOnce    sync.Once
}

// NewConsumer creates a new Kafka event consumer.
func NewConsumer(
	config ConsumerConfig,
	processor EventProcessor,
	logger *observability.Logger,
) EventConsumer {
	config = applyDefaults(config)

	c := &consumer{
		config:    config,
		processor: processor,
		logger:    logger,
		eventCh:   make(chan eventWithMsg, config.QueueSize),
		doneCh:    make(chan struct{}),
	}

	c.reader = kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.ConsumerGroup,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		StartOffset:    kafkago.FirstOffset,
		CommitInterval: 0, // Manual commit
	})
	c.committer = c.reader

	ctx := observability.WithFields(context.Background(),
		observability.Field{Key: "processor", Value: processor.Name()},
		observability.Field{Key: "consumer_group", Value: config.ConsumerGroup},
		observability.Field{Key: "topic", Value: config.Topic},
		observability.Field{Key: "num_workers", Value: config.NumWorkers},
	)
	logger.Info(ctx, fmt.Sprintf("Initialized consumer for %s processor", processor.Name()))

	return c
}

func applyDefaults(config ConsumerConfig) ConsumerConfig {
	if config.NumWorkers <= 0 {
		config.NumWorkers = 5
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 100
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 3
	}
	if config.RetryBackoff <= 0 {
		config.RetryBackoff = 200 * time.Millisecond
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = 30 * time.Second
	}
	return config
}

// Start begins consuming events and blocks until Stop is called.
func (c *consumer) Start(ctx context.Context) error {
	defer close(c.doneCh)

	// Fetching is cancelled only by Stop so in-flight events can drain.
	fetchCtx, cancel := context.WithCancel(context.Background())
	c.cancelFetch = cancel
	fetchCtx = observability.WithFields(fetchCtx,
		observability.Field{Key: "consumer_group", Value: c.config.ConsumerGroup},
		observability.Field{Key: "topic", Value: c.config.Topic},
		observability.Field{Key: "processor", Value: c.processor.Name()},
	)

	c.logger.Info(fetchCtx, fmt.Sprintf("Starting consumer for %s with %d workers",
		c.processor.Name(), c.config.NumWorkers))

	// Start workers - they process until eventCh is closed
	var workerWg sync.WaitGroup
	for i := 0; i < c.config.NumWorkers; i++ {
		workerWg.Add(1)
		go c.worker(&workerWg, i, fetchCtx)
	}

	c.fetchLoop(fetchCtx)

	// Shutdown: close channel and wait for workers to drain
	close(c.eventCh)

	done := make(chan struct{})
	go func() {
		workerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info(fetchCtx, "All workers finished processing")
	case <-time.After(c.config.DrainTimeout):
		c.logger.Warn(fetchCtx, "Drain timeout - some events may not have completed")
	}

	if c.reader != nil {
		if err := c.reader.Close(); err != nil {
			c.logger.Error(fetchCtx, "Failed to close Kafka reader", err)
		}
	}

	c.logger.Info(fetchCtx, fmt.Sprintf("Consumer stopped for %s", c.processor.Name()))
	return nil
}

// fetchLoop fetches messages from Kafka until context is cancelled.
func (c *consumer) fetchLoop(ctx context.Context) {
	for {
		if c.stopping.Load() {
			return
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if c.stopping.Load() || ctx.Err() != nil {
				return // Clean shutdown
			}
			c.logger.Error(ctx, "Failed to fetch message from Kafka", err)
			time.Sleep(1 * time.Second)
			continue
		}

		var event EventMessage
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			msgCtx := observability.WithFields(ctx,
				observability.Field{Key: "partition", Value: msg.Partition},
				observability.Field{Key: "offset", Value: msg.Offset},
			)
			c.logger.Error(msgCtx, "Failed to unmarshal event, skipping", err)
			c.commit(msgCtx, msg)
			continue
		}

		// Send to workers (blocks if queue full)
		select {
		case c.eventCh <- eventWithMsg{event: event, msg: msg}:
		case <-ctx.Done():
			return
		}
	}
}

// worker processes events from the channel until it's closed.
func (c *consumer) worker(wg *sync.WaitGroup, id int, ctx context.Context) {
	defer wg.Done()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "worker_id", Value: id},
	)

	for e := range c.eventCh {
		eventCtx := observability.WithFields(context.WithoutCancel(ctx),
			observability.Field{Key: "event_id", Value: e.event.ID},
			observability.Field{Key: "event_type", Value: e.event.Type},
			observability.Field{Key: "partition", Value: e.msg.Partition},
			observability.Field{Key: "offset", Value: e.msg.Offset},
		)

		if c.handle(eventCtx, e.event) {
			c.commit(eventCtx, e.msg)
		}
	}
}

// handle runs the processor with retries and falls back to durable retry.
// It reports whether the message offset may be committed.
func (c *consumer) handle(ctx context.Context, event EventMessage) bool {
	backoff := c.config.RetryBackoff
	var err error
	for attempt := 1; attempt <= c.config.MaxAttempts; attempt++ {
		if err = c.processor.Process(ctx, event); err == nil {
			return true
		}
		c.logger.Error(observability.WithFields(ctx, observability.Field{Key: "attempt", Value: attempt}),
			"Failed to process event", err)
		if attempt < c.config.MaxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}

	fallback, ok := c.processor.(FallbackProcessor)
	if !ok {
		// Not committed: redelivered after the next rebalance or restart.
		return false
	}
	if fbErr := fallback.Fallback(ctx, event, err); fbErr != nil {
		c.logger.Error(ctx, "Failed to hand event to fallback", fbErr)
		return false
	}
	c.logger.Warn(ctx, "Event handed to fallback after exhausting attempts")
	return true
}

func (c *consumer) commit(ctx context.Context, msg kafkago.Message) {
	if c.committer == nil {
		return
	}
	if err := c.committer.CommitMessages(context.Background(), msg); err != nil {
		c.logger.Error(ctx, "Failed to commit offset", err)
	}
}

// Stop gracefully shuts down the consumer.
// It signals the fetch loop to stop, waits for in-flight events to complete,
// and returns only after full shutdown.
func (c *consumer) Stop() {
	c.stopOnce.Do(func() {
		logCtx := observability.WithFields(context.Background(),
			observability.Field{Key: "processor", Value: c.processor.Name()},
		)
		c.logger.Info(logCtx, fmt.Sprintf("Stopping consumer for %s", c.processor.Name()))

		c.stopping.Store(true)

		// Cancel fetch context to unblock FetchMessage
		if c.cancelFetch != nil {
			c.cancelFetch()
		}

		// Wait for Start() to complete (which waits for workers)
		<-c.doneCh
	})
}
