package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"storefront-affiliates/internal/jobs"
	"storefront-affiliates/internal/observability"

	"github.com/stripe/stripe-go/v79"
)

var (
	ErrInvalidPaymentMetadata = errors.New("invalid payment metadata")
	ErrFailedToEnqueue        = errors.New("failed to enqueue payment")
)

// Metadata keys the storefront checkout sets on a PaymentIntent
const (
	metaTransactionRef       = "transaction_ref"
	metaAffiliateUsername    = "affiliate_username"
	metaPlanType             = "plan_type"
	metaDiscountAmount       = "discount_amount"
	metaReferredUserID       = "referred_user_id"
	metaReferredBusinessID   = "referred_business_id"
	metaReferredBusinessName = "referred_business_name"
	metaReferredContacts     = "referred_contacts"
)

// HandleWebhook dispatches a verified Stripe event. Only
// payment_intent.succeeded is acted on.
func (p *BillingProcessor) HandleWebhook(ctx context.Context, event stripe.Event) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "stripe_event_id", Value: event.ID},
		observability.Field{Key: "stripe_event_type", Value: string(event.Type)},
	)

	switch event.Type {
	case "payment_intent.succeeded":
		var paymentIntent stripe.PaymentIntent
		err := json.Unmarshal(event.Data.Raw, &paymentIntent)
		if err != nil {
			p.logger.Error(ctx, "failed to unmarshal payment intent", err)
			return fmt.Errorf("%w: %v", ErrInvalidPaymentMetadata, err)
		}
		return p.PaymentIntentSucceeded(ctx, paymentIntent)

	default:
		p.logger.Debug(ctx, "ignoring stripe event")
		return nil
	}
}

// PaymentIntentSucceeded enqueues the referral carried by a successful payment
func (p *BillingProcessor) PaymentIntentSucceeded(ctx context.Context, paymentIntent stripe.PaymentIntent) error {
	payload, err := PaymentFromIntent(paymentIntent)
	if err != nil {
		p.logger.Error(ctx, "payment intent has invalid metadata", err)
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "transaction_ref", Value: payload.TransactionRef})

	if err := p.jobs.EnqueueReferralRecord(ctx, payload); err != nil {
		p.logger.Error(ctx, "failed to enqueue referral record", err)
		return fmt.Errorf("%w: %v", ErrFailedToEnqueue, err)
	}

	p.logger.Info(ctx, "payment intent enqueued for referral recording")
	return nil
}

// PaymentFromIntent reads the referral attribution from PaymentIntent
// metadata. The transaction reference defaults to the PaymentIntent ID.
func PaymentFromIntent(paymentIntent stripe.PaymentIntent) (jobs.ReferralRecordJobPayload, error) {
	meta := paymentIntent.Metadata
	payload := jobs.ReferralRecordJobPayload{
		TransactionRef:       strings.TrimSpace(meta[metaTransactionRef]),
		AffiliateUsername:    strings.TrimSpace(meta[metaAffiliateUsername]),
		PlanType:             strings.TrimSpace(meta[metaPlanType]),
		ReferredUserID:       meta[metaReferredUserID],
		ReferredBusinessID:   meta[metaReferredBusinessID],
		ReferredBusinessName: meta[metaReferredBusinessName],
	}
	if payload.TransactionRef == "" {
		payload.TransactionRef = paymentIntent.ID
	}

	if raw := strings.TrimSpace(meta[metaDiscountAmount]); raw != "" {
		discount, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return jobs.ReferralRecordJobPayload{}, fmt.Errorf("%w: discount_amount %q", ErrInvalidPaymentMetadata, raw)
		}
		payload.DiscountAmount = discount
	}

	for _, contact := range strings.Split(meta[metaReferredContacts], ",") {
		if contact = strings.TrimSpace(contact); contact != "" {
			payload.ReferredContacts = append(payload.ReferredContacts, contact)
		}
	}

	return payload, nil
}
