package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"storefront-affiliates/internal/jobs"
	"storefront-affiliates/internal/store"

	"github.com/google/uuid"
)

// AffiliateStore defines the database operations required by AffiliateProcessor
type AffiliateStore interface {
	CreateAffiliateWithCoupon(ctx context.Context, params store.CreateAffiliateParams, coupon store.Coupon) (store.Affiliate, error)
	GetAffiliateByID(ctx context.Context, affiliateID uuid.UUID) (store.Affiliate, error)
	GetAffiliateByUsername(ctx context.Context, username string) (store.Affiliate, error)
	GetAffiliateByEmail(ctx context.Context, email string) (store.Affiliate, error)
	GetAffiliateByUserID(ctx context.Context, userID uuid.UUID) (store.Affiliate, error)
	UpdateAffiliateBankDetails(ctx context.Context, affiliateID uuid.UUID, details store.BankDetails) (store.Affiliate, error)
	UpdateAffiliateStatus(ctx context.Context, affiliateID uuid.UUID, status string) (store.Affiliate, error)
	ListAffiliatesWithTotals(ctx context.Context, limit, offset int) ([]store.AffiliateWithTotals, error)
	CountAffiliates(ctx context.Context) (int, error)
}

// IdentityProvider provisions and verifies the login behind an affiliate
type IdentityProvider interface {
	CreateIdentity(ctx context.Context, fullName, email, password string) (uuid.UUID, error)
	Authenticate(ctx context.Context, email, password string) (uuid.UUID, error)
}

// BalanceReader serves cached balances for read endpoints
type BalanceReader interface {
	CachedAvailableBalance(ctx context.Context, affiliateID uuid.UUID) (int64, error)
}

// EventPublisher publishes affiliate lifecycle events
type EventPublisher interface {
	PublishAffiliateCreated(ctx context.Context, affiliate store.Affiliate) error
}

// JobEnqueuer enqueues notification emails
type JobEnqueuer interface {
	EnqueueEmailJob(ctx context.Context, payload jobs.EmailJobPayload) error
}
