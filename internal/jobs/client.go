package jobs

import (
	"context"
	"errors"
	"fmt"

	"storefront-affiliates/internal/observability"

	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisOpt asynq.RedisClientOpt, logger *observability.Logger) *Client {
	client := asynq.NewClient(redisOpt)
	return &Client{
		client: client,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueReferralRecord enqueues a referral recording job. Re-enqueueing a
// payment whose task is still retained is not an error.
func (c *Client) EnqueueReferralRecord(ctx context.Context, payload ReferralRecordJobPayload) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "transaction_ref", Value: payload.TransactionRef})

	task, err := NewReferralRecordTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create referral record task", err)
		return fmt.Errorf("failed to create referral record task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			c.logger.Info(ctx, "referral record task already enqueued")
			return nil
		}
		c.logger.Error(ctx, "failed to enqueue referral record task", err)
		return fmt.Errorf("failed to enqueue referral record task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued referral record task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}

// EnqueueEmailJob enqueues an email job
func (c *Client) EnqueueEmailJob(ctx context.Context, payload EmailJobPayload) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_kind", Value: payload.Kind},
		observability.Field{Key: "affiliate_id", Value: payload.AffiliateID},
	)

	task, err := NewEmailTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create email task", err)
		return fmt.Errorf("failed to create email task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue email task", err)
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued email task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
