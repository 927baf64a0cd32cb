package processor

import (
	"storefront-affiliates/internal/observability"

	"github.com/stripe/stripe-go/v79"
)

type BillingProcessor struct {
	WebhookSecret string
	jobs          ReferralEnqueuer
	logger        *observability.Logger
}

func New(stripeKey string, webhookSecret string, jobs ReferralEnqueuer, logger *observability.Logger) BillingProcessor {
	stripe.Key = stripeKey
	return BillingProcessor{
		WebhookSecret: webhookSecret,
		jobs:          jobs,
		logger:        logger,
	}
}
