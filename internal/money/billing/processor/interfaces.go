package processor

import (
	"context"

	"storefront-affiliates/internal/jobs"
)

// ReferralEnqueuer hands confirmed payments to the referral:record queue
type ReferralEnqueuer interface {
	EnqueueReferralRecord(ctx context.Context, payload jobs.ReferralRecordJobPayload) error
}
