package processor

import (
	"context"
	"errors"
	"strings"

	"storefront-affiliates/internal/balance"
	"storefront-affiliates/internal/jobs"
	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount           = errors.New("withdrawal amount must be positive")
	ErrAffiliateNotActive      = errors.New("affiliate is not active")
	ErrMissingBankDetails      = errors.New("bank details are required before withdrawing")
	ErrPendingRequestExists    = errors.New("a pending withdrawal request already exists")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrInvalidTransition       = errors.New("invalid withdrawal status transition")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrWithdrawalNotFound      = errors.New("withdrawal request not found")
	ErrAffiliateNotFound       = errors.New("affiliate not found")
)

// transitions lists the statuses each status may move to. Statuses absent
// from the map are terminal.
var transitions = map[string][]string{
	store.WithdrawalStatusPending:  {store.WithdrawalStatusApproved, store.WithdrawalStatusRejected, store.WithdrawalStatusPaid},
	store.WithdrawalStatusApproved: {store.WithdrawalStatusPaid},
}

// CanTransition reports whether a withdrawal in status from may move to to.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type WithdrawalProcessor struct {
	store   WithdrawalStore
	events  EventPublisher
	jobs    JobEnqueuer
	cache   BalanceCache
	metrics *observability.Metrics
	logger  *observability.Logger
}

func New(store WithdrawalStore, events EventPublisher, jobs JobEnqueuer, cache BalanceCache, metrics *observability.Metrics, logger *observability.Logger) WithdrawalProcessor {
	return WithdrawalProcessor{
		store:   store,
		events:  events,
		jobs:    jobs,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// AffiliateForUser resolves the affiliate owned by an authenticated user
func (p *WithdrawalProcessor) AffiliateForUser(ctx context.Context, userID uuid.UUID) (store.Affiliate, error) {
	affiliate, err := p.store.GetAffiliateByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Affiliate{}, ErrAffiliateNotFound
		}
		p.logger.Error(ctx, "failed to get affiliate", err)
		return store.Affiliate{}, err
	}
	return affiliate, nil
}

// checkRequest validates a withdrawal against the affiliate's locked state
func checkRequest(amount int64, snapshot store.WithdrawalSnapshot) error {
	if snapshot.Affiliate.Status != store.AffiliateStatusActive {
		return ErrAffiliateNotActive
	}
	if snapshot.Affiliate.Bank() == nil {
		return ErrMissingBankDetails
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if snapshot.HasPending {
		return ErrPendingRequestExists
	}
	if amount > balance.FromTotals(snapshot.Totals) {
		return ErrInsufficientBalance
	}
	return nil
}

// RequestWithdrawal creates a pending payout request for amount. The checks
// run against the affiliate row locked for the insert, so concurrent requests
// for one affiliate are serialized.
func (p *WithdrawalProcessor) RequestWithdrawal(ctx context.Context, affiliateID uuid.UUID, amount int64) (store.WithdrawalRequest, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "affiliate_id", Value: affiliateID.String()},
		observability.Field{Key: "amount", Value: amount},
	)

	withdrawal, err := p.store.CreateWithdrawalRequest(ctx, affiliateID, amount, func(snapshot store.WithdrawalSnapshot) error {
		return checkRequest(amount, snapshot)
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.WithdrawalRequest{}, ErrAffiliateNotFound
		case errors.Is(err, store.ErrPendingWithdrawalExists):
			return store.WithdrawalRequest{}, ErrPendingRequestExists
		case errors.Is(err, ErrAffiliateNotActive),
			errors.Is(err, ErrMissingBankDetails),
			errors.Is(err, ErrInvalidAmount),
			errors.Is(err, ErrPendingRequestExists),
			errors.Is(err, ErrInsufficientBalance):
			p.logger.Info(ctx, "withdrawal request rejected: "+err.Error())
			return store.WithdrawalRequest{}, err
		default:
			p.logger.Error(ctx, "failed to create withdrawal request", err)
			return store.WithdrawalRequest{}, err
		}
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "withdrawal_id", Value: withdrawal.ID.String()})

	p.logger.Info(ctx, "withdrawal requested")
	p.metrics.WithdrawalRequested()
	p.cache.Invalidate(ctx, affiliateID)
	if err := p.events.PublishWithdrawalRequested(ctx, withdrawal); err != nil {
		p.logger.Error(ctx, "failed to publish withdrawal requested event", err)
	}
	p.enqueueEmail(ctx, jobs.EmailKindWithdrawalRequested, withdrawal)

	return withdrawal, nil
}

// UpdateStatusRequest is an administrator's disposition of a withdrawal
type UpdateStatusRequest struct {
	Status          string
	AdminID         uuid.UUID
	RejectionReason string
	TransactionRef  string
}

// UpdateWithdrawalStatus moves a withdrawal along its state machine. Illegal
// moves fail with ErrInvalidTransition and leave the record unchanged.
func (p *WithdrawalProcessor) UpdateWithdrawalStatus(ctx context.Context, withdrawalID uuid.UUID, req UpdateStatusRequest) (store.WithdrawalRequest, error) {
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	req.RejectionReason = strings.TrimSpace(req.RejectionReason)
	req.TransactionRef = strings.TrimSpace(req.TransactionRef)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "withdrawal_id", Value: withdrawalID.String()},
		observability.Field{Key: "status", Value: req.Status},
		observability.Field{Key: "admin_id", Value: req.AdminID.String()},
	)

	transition := store.WithdrawalTransition{
		Status:      req.Status,
		ProcessedBy: req.AdminID,
	}
	switch req.Status {
	case store.WithdrawalStatusRejected:
		if req.RejectionReason == "" {
			return store.WithdrawalRequest{}, ErrRejectionReasonRequired
		}
		transition.RejectionReason = &req.RejectionReason
	case store.WithdrawalStatusPaid:
		if req.TransactionRef != "" {
			transition.TransactionRef = &req.TransactionRef
		}
	}

	var previousStatus string
	updated, err := p.store.TransitionWithdrawal(ctx, withdrawalID, transition, func(current store.WithdrawalRequest) error {
		previousStatus = current.Status
		if !CanTransition(current.Status, req.Status) {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.WithdrawalRequest{}, ErrWithdrawalNotFound
		case errors.Is(err, ErrInvalidTransition):
			p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "previous_status", Value: previousStatus}), "invalid withdrawal transition")
			return store.WithdrawalRequest{}, err
		default:
			p.logger.Error(ctx, "failed to transition withdrawal", err)
			return store.WithdrawalRequest{}, err
		}
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "affiliate_id", Value: updated.AffiliateID.String()},
		observability.Field{Key: "previous_status", Value: previousStatus},
	)

	p.logger.Info(ctx, "withdrawal status updated")
	p.metrics.WithdrawalTransitioned(updated.Status)
	p.cache.Invalidate(ctx, updated.AffiliateID)
	if err := p.events.PublishWithdrawalStatusChanged(ctx, updated, previousStatus); err != nil {
		p.logger.Error(ctx, "failed to publish withdrawal status changed event", err)
	}
	p.enqueueEmail(ctx, jobs.EmailKindWithdrawalStatus, updated)

	return updated, nil
}

func (p *WithdrawalProcessor) enqueueEmail(ctx context.Context, kind string, withdrawal store.WithdrawalRequest) {
	withdrawalID := withdrawal.ID
	err := p.jobs.EnqueueEmailJob(ctx, jobs.EmailJobPayload{
		Kind:         kind,
		AffiliateID:  withdrawal.AffiliateID,
		WithdrawalID: &withdrawalID,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to enqueue withdrawal email", err)
	}
}

// ListWithdrawalsResponse represents the paginated response for withdrawals
type ListWithdrawalsResponse struct {
	Withdrawals []store.WithdrawalRequest `json:"withdrawals"`
	TotalCount  int                       `json:"total_count"`
	Page        int                       `json:"page"`
	Limit       int                       `json:"limit"`
}

func pagination(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit, (page - 1) * limit
}

func emptyPage(page, limit int) ListWithdrawalsResponse {
	return ListWithdrawalsResponse{Withdrawals: []store.WithdrawalRequest{}, Page: page, Limit: limit}
}

// ListWithdrawalsForAffiliate lists the withdrawal requests of the affiliate
// owned by userID. Store failures yield an empty page.
func (p *WithdrawalProcessor) ListWithdrawalsForAffiliate(ctx context.Context, userID uuid.UUID, page, limit int) (ListWithdrawalsResponse, error) {
	page, limit, offset := pagination(page, limit)
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	affiliate, err := p.store.GetAffiliateByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ListWithdrawalsResponse{}, ErrAffiliateNotFound
		}
		p.logger.Error(ctx, "failed to get affiliate", err)
		return emptyPage(page, limit), nil
	}

	withdrawals, err := p.store.ListWithdrawalsByAffiliate(ctx, affiliate.ID, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list withdrawals", err)
		return emptyPage(page, limit), nil
	}

	totalCount, err := p.store.CountWithdrawalsByAffiliate(ctx, affiliate.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to count withdrawals", err)
		totalCount = len(withdrawals)
	}

	return ListWithdrawalsResponse{
		Withdrawals: withdrawals,
		TotalCount:  totalCount,
		Page:        page,
		Limit:       limit,
	}, nil
}

// ListWithdrawals lists withdrawal requests for administrators, optionally
// filtered by status. Store failures yield an empty page.
func (p *WithdrawalProcessor) ListWithdrawals(ctx context.Context, status string, page, limit int) (ListWithdrawalsResponse, error) {
	page, limit, offset := pagination(page, limit)

	var statusFilter *string
	if status = strings.ToLower(strings.TrimSpace(status)); status != "" {
		statusFilter = &status
		ctx = observability.WithFields(ctx, observability.Field{Key: "status", Value: status})
	}

	withdrawals, err := p.store.ListWithdrawals(ctx, statusFilter, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list withdrawals", err)
		return emptyPage(page, limit), nil
	}

	totalCount, err := p.store.CountWithdrawals(ctx, statusFilter)
	if err != nil {
		p.logger.Error(ctx, "failed to count withdrawals", err)
		totalCount = len(withdrawals)
	}

	return ListWithdrawalsResponse{
		Withdrawals: withdrawals,
		TotalCount:  totalCount,
		Page:        page,
		Limit:       limit,
	}, nil
}
