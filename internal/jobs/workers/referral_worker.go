package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront-affiliates/internal/jobs"
	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/referral/processor"

	"github.com/hibiken/asynq"
)

// ReferralRecorder credits affiliates for confirmed payments
type ReferralRecorder interface {
	RecordReferral(ctx context.Context, payment processor.PaymentConfirmed) (processor.Outcome, error)
}

// ReferralWorker handles referral:record tasks
type ReferralWorker struct {
	recorder ReferralRecorder
	logger   *observability.Logger
}

// NewReferralWorker creates a new referral worker
func NewReferralWorker(recorder ReferralRecorder, logger *observability.Logger) *ReferralWorker {
	return &ReferralWorker{
		recorder: recorder,
		logger:   logger,
	}
}

// ProcessReferralTask processes a referral recording task (for Asynq).
// Payloads that can never succeed are not retried.
func (w *ReferralWorker) ProcessReferralTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.ReferralRecordJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal referral record payload", err)
		return fmt.Errorf("failed to unmarshal referral record payload: %v: %w", err, asynq.SkipRetry)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "transaction_ref", Value: payload.TransactionRef})

	outcome, err := w.recorder.RecordReferral(ctx, processor.PaymentConfirmed{
		TransactionRef:       payload.TransactionRef,
		AffiliateUsername:    payload.AffiliateUsername,
		PlanType:             payload.PlanType,
		DiscountAmount:       payload.DiscountAmount,
		ReferredUserID:       payload.ReferredUserID,
		ReferredBusinessID:   payload.ReferredBusinessID,
		ReferredBusinessName: payload.ReferredBusinessName,
		ReferredContacts:     payload.ReferredContacts,
	})
	if err != nil {
		if processor.IsPermanent(err) {
			w.logger.Error(ctx, "dropping invalid referral record task", err)
			return fmt.Errorf("invalid referral record task: %v: %w", err, asynq.SkipRetry)
		}
		return fmt.Errorf("failed to record referral: %w", err)
	}

	w.logger.Info(observability.WithFields(ctx, observability.Field{Key: "outcome", Value: string(outcome)}), "referral record task processed")
	return nil
}
