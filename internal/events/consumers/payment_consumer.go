package consumers

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront-affiliates/internal/jobs"
	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/referral/processor"
	"storefront-affiliates/internal/workers"
)

// EventTypePaymentConfirmed is the event type carried on the payments topic
const EventTypePaymentConfirmed = "payment.confirmed"

// ReferralRecorder credits affiliates for confirmed payments
type ReferralRecorder interface {
	RecordReferral(ctx context.Context, payment processor.PaymentConfirmed) (processor.Outcome, error)
}

// ReferralEnqueuer hands a payment to the durable job queue
type ReferralEnqueuer interface {
	EnqueueReferralRecord(ctx context.Context, payload jobs.ReferralRecordJobPayload) error
}

// PaymentEventProcessor records referrals for PaymentConfirmed events. When
// recording keeps failing the payment is handed to the referral:record queue
// so the offset can still be committed.
type PaymentEventProcessor struct {
	recorder ReferralRecorder
	jobs     ReferralEnqueuer
	logger   *observability.Logger
}

// NewPaymentEventProcessor creates a new PaymentEventProcessor
func NewPaymentEventProcessor(recorder ReferralRecorder, jobs ReferralEnqueuer, logger *observability.Logger) *PaymentEventProcessor {
	return &PaymentEventProcessor{
		recorder: recorder,
		jobs:     jobs,
		logger:   logger,
	}
}

var _ workers.FallbackProcessor = (*PaymentEventProcessor)(nil)

func (p *PaymentEventProcessor) Name() string {
	return "payment_confirmed"
}

// Process records the referral for one payment event. Events of other types
// and payloads that can never be recorded are acknowledged and dropped.
func (p *PaymentEventProcessor) Process(ctx context.Context, event workers.EventMessage) error {
	if event.Type != EventTypePaymentConfirmed {
		p.logger.Debug(ctx, fmt.Sprintf("ignoring event of type %s", event.Type))
		return nil
	}

	payment, err := decodePayment(event)
	if err != nil {
		p.logger.Error(ctx, "failed to decode payment event, skipping", err)
		return nil
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "transaction_ref", Value: payment.TransactionRef})

	outcome, err := p.recorder.RecordReferral(ctx, payment)
	if err != nil {
		if processor.IsPermanent(err) {
			p.logger.Error(ctx, "invalid payment event, skipping", err)
			return nil
		}
		return err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "outcome", Value: string(outcome)}), "payment event processed")
	return nil
}

// Fallback enqueues the payment as a referral:record task
func (p *PaymentEventProcessor) Fallback(ctx context.Context, event workers.EventMessage, cause error) error {
	payment, err := decodePayment(event)
	if err != nil {
		return fmt.Errorf("failed to decode payment event: %w", err)
	}

	p.logger.InfoWithError(observability.WithFields(ctx, observability.Field{Key: "transaction_ref", Value: payment.TransactionRef}),
		"handing payment event to referral queue", cause)

	return p.jobs.EnqueueReferralRecord(ctx, jobs.ReferralRecordJobPayload{
		TransactionRef:       payment.TransactionRef,
		AffiliateUsername:    payment.AffiliateUsername,
		PlanType:             payment.PlanType,
		DiscountAmount:       payment.DiscountAmount,
		ReferredUserID:       payment.ReferredUserID,
		ReferredBusinessID:   payment.ReferredBusinessID,
		ReferredBusinessName: payment.ReferredBusinessName,
		ReferredContacts:     payment.ReferredContacts,
	})
}

// decodePayment reads the event data as a PaymentConfirmed
func decodePayment(event workers.EventMessage) (processor.PaymentConfirmed, error) {
	var payment processor.PaymentConfirmed
	raw, err := json.Marshal(event.Data)
	if err != nil {
		return payment, err
	}
	if err := json.Unmarshal(raw, &payment); err != nil {
		return payment, err
	}
	return payment, nil
}
