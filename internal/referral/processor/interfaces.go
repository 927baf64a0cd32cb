package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"storefront-affiliates/internal/store"

	"github.com/google/uuid"
)

// ReferralStore defines the database operations required by ReferralProcessor
type ReferralStore interface {
	GetAffiliateByUsername(ctx context.Context, username string) (store.Affiliate, error)
	GetAffiliateByUserID(ctx context.Context, userID uuid.UUID) (store.Affiliate, error)
	RecordReferral(ctx context.Context, params store.RecordReferralParams) (store.Referral, error)
	ListReferralsByAffiliate(ctx context.Context, affiliateID uuid.UUID, limit, offset int) ([]store.Referral, error)
	CountReferralsByAffiliate(ctx context.Context, affiliateID uuid.UUID) (int, error)
	ListReferrals(ctx context.Context, limit, offset int) ([]store.Referral, error)
	CountReferrals(ctx context.Context) (int, error)
}

// EventPublisher publishes referral events
type EventPublisher interface {
	PublishReferralRecorded(ctx context.Context, referral store.Referral) error
}

// BalanceCache drops cached balances after the ledger changes
type BalanceCache interface {
	Invalidate(ctx context.Context, affiliateID uuid.UUID)
}
