package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"storefront-affiliates/internal/jobs"
	"storefront-affiliates/internal/store"

	"github.com/google/uuid"
)

// WithdrawalStore defines the database operations required by WithdrawalProcessor
type WithdrawalStore interface {
	GetAffiliateByUserID(ctx context.Context, userID uuid.UUID) (store.Affiliate, error)
	CreateWithdrawalRequest(ctx context.Context, affiliateID uuid.UUID, amount int64, guard store.WithdrawalGuard) (store.WithdrawalRequest, error)
	TransitionWithdrawal(ctx context.Context, withdrawalID uuid.UUID, transition store.WithdrawalTransition, guard store.TransitionGuard) (store.WithdrawalRequest, error)
	ListWithdrawalsByAffiliate(ctx context.Context, affiliateID uuid.UUID, limit, offset int) ([]store.WithdrawalRequest, error)
	CountWithdrawalsByAffiliate(ctx context.Context, affiliateID uuid.UUID) (int, error)
	ListWithdrawals(ctx context.Context, status *string, limit, offset int) ([]store.WithdrawalRequest, error)
	CountWithdrawals(ctx context.Context, status *string) (int, error)
}

// EventPublisher publishes withdrawal lifecycle events
type EventPublisher interface {
	PublishWithdrawalRequested(ctx context.Context, withdrawal store.WithdrawalRequest) error
	PublishWithdrawalStatusChanged(ctx context.Context, withdrawal store.WithdrawalRequest, previousStatus string) error
}

// JobEnqueuer enqueues notification emails
type JobEnqueuer interface {
	EnqueueEmailJob(ctx context.Context, payload jobs.EmailJobPayload) error
}

// BalanceCache drops cached balances after the ledger changes
type BalanceCache interface {
	Invalidate(ctx context.Context, affiliateID uuid.UUID)
}
