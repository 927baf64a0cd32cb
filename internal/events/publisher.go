package events

import (
	"context"
	"storefront-affiliates/internal/clients/kafka"
	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/store"
	"time"

	"github.com/google/uuid"
)

// Event types published on the affiliate events topic
const (
	EventAffiliateCreated        = "affiliate.created"
	EventReferralRecorded        = "affiliate.referral.recorded"
	EventWithdrawalRequested     = "affiliate.withdrawal.requested"
	EventWithdrawalStatusChanged = "affiliate.withdrawal.status_changed"
	EventPaymentConfirmed        = "payment.confirmed"
)

// Publisher handles publishing domain events to Kafka. A nil producer turns
// every publish into a no-op.
type Publisher struct {
	kafkaProducer *kafka.Producer
	logger        *observability.Logger
}

// NewPublisher creates a new event publisher
func NewPublisher(kafkaProducer *kafka.Producer, logger *observability.Logger) *Publisher {
	return &Publisher{
		kafkaProducer: kafkaProducer,
		logger:        logger,
	}
}

func (p *Publisher) publish(ctx context.Context, eventType string, affiliateID uuid.UUID, data map[string]interface{}) error {
	if p == nil || p.kafkaProducer == nil {
		return nil
	}
	event := kafka.EventMessage{
		ID:          uuid.New().String(),
		Type:        eventType,
		AffiliateID: affiliateID.String(),
		Data:        data,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	return p.kafkaProducer.PublishEvent(ctx, event)
}

// PublishAffiliateCreated publishes an affiliate.created event
func (p *Publisher) PublishAffiliateCreated(ctx context.Context, affiliate store.Affiliate) error {
	return p.publish(ctx, EventAffiliateCreated, affiliate.ID, map[string]interface{}{
		"affiliate_id": affiliate.ID.String(),
		"username":     affiliate.Username,
		"email":        affiliate.Email,
		"coupon_code":  affiliate.Username,
	})
}

// PublishReferralRecorded publishes an affiliate.referral.recorded event
func (p *Publisher) PublishReferralRecorded(ctx context.Context, referral store.Referral) error {
	return p.publish(ctx, EventReferralRecorded, referral.AffiliateID, map[string]interface{}{
		"referral_id":          referral.ID.String(),
		"affiliate_id":         referral.AffiliateID.String(),
		"affiliate_username":   referral.AffiliateUsername,
		"transaction_ref":      referral.TransactionRef,
		"referred_business_id": referral.ReferredBusinessID,
		"plan_type":            referral.PlanType,
		"discount_amount":      referral.DiscountAmount,
		"commission_amount":    referral.CommissionAmount,
	})
}

// PublishWithdrawalRequested publishes an affiliate.withdrawal.requested event
func (p *Publisher) PublishWithdrawalRequested(ctx context.Context, withdrawal store.WithdrawalRequest) error {
	return p.publish(ctx, EventWithdrawalRequested, withdrawal.AffiliateID, map[string]interface{}{
		"withdrawal_id":      withdrawal.ID.String(),
		"affiliate_id":       withdrawal.AffiliateID.String(),
		"affiliate_username": withdrawal.AffiliateUsername,
		"amount":             withdrawal.Amount,
	})
}

// PublishWithdrawalStatusChanged publishes an affiliate.withdrawal.status_changed event
func (p *Publisher) PublishWithdrawalStatusChanged(ctx context.Context, withdrawal store.WithdrawalRequest, previousStatus string) error {
	data := map[string]interface{}{
		"withdrawal_id":      withdrawal.ID.String(),
		"affiliate_id":       withdrawal.AffiliateID.String(),
		"affiliate_username": withdrawal.AffiliateUsername,
		"amount":             withdrawal.Amount,
		"previous_status":    previousStatus,
		"status":             withdrawal.Status,
	}
	if withdrawal.RejectionReason != nil {
		data["rejection_reason"] = *withdrawal.RejectionReason
	}
	if withdrawal.TransactionRef != nil {
		data["transaction_ref"] = *withdrawal.TransactionRef
	}
	return p.publish(ctx, EventWithdrawalStatusChanged, withdrawal.AffiliateID, data)
}
