package processor

import (
	"context"
	"errors"
	"strings"

	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/store"

	"github.com/google/uuid"
)

var (
	ErrTransactionRefRequired = errors.New("transaction reference is required")
	ErrInvalidDiscount        = errors.New("discount amount cannot be negative")
	ErrAffiliateNotFound      = errors.New("affiliate not found")
)

// IsPermanent reports whether err can never succeed on retry.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrTransactionRefRequired) || errors.Is(err, ErrInvalidDiscount)
}

// Outcome is what RecordReferral did with a payment
type Outcome string

const (
	OutcomeRecorded     Outcome = "recorded"
	OutcomeDuplicate    Outcome = "duplicate"
	OutcomeUnattributed Outcome = "unattributed"
)

// PaymentConfirmed is a verified storefront payment that may carry an
// affiliate attribution
type PaymentConfirmed struct {
	TransactionRef       string   `json:"transaction_ref"`
	AffiliateUsername    string   `json:"affiliate_username,omitempty"`
	PlanType             string   `json:"plan_type"`
	DiscountAmount       int64    `json:"discount_amount"`
	ReferredUserID       string   `json:"referred_user_id,omitempty"`
	ReferredBusinessID   string   `json:"referred_business_id,omitempty"`
	ReferredBusinessName string   `json:"referred_business_name,omitempty"`
	ReferredContacts     []string `json:"referred_contacts,omitempty"`
}

type ReferralProcessor struct {
	store   ReferralStore
	events  EventPublisher
	cache   BalanceCache
	metrics *observability.Metrics
	logger  *observability.Logger
}

func New(store ReferralStore, events EventPublisher, cache BalanceCache, metrics *observability.Metrics, logger *observability.Logger) ReferralProcessor {
	return ReferralProcessor{
		store:   store,
		events:  events,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

type commissionTier struct {
	plan     string
	discount int64
}

var commissionTable = map[commissionTier]int64{
	{plan: store.PlanBusiness, discount: 2000}: 2000,
	{plan: store.PlanPro, discount: 4000}:      4000,
}

const testPlanCommission = 20

// Commission returns the amount credited for a plan bought with discount.
// Pairs outside the table credit the discount itself.
func Commission(plan string, discount int64) int64 {
	if plan == store.PlanTest {
		return testPlanCommission
	}
	if amount, ok := commissionTable[commissionTier{plan: plan, discount: discount}]; ok {
		return amount
	}
	if discount < 0 {
		return 0
	}
	return discount
}

// RecordReferral credits the affiliate named by the payment exactly once per
// transaction reference. Payments without a known affiliate are reported as
// unattributed with a nil error.
func (p *ReferralProcessor) RecordReferral(ctx context.Context, payment PaymentConfirmed) (Outcome, error) {
	payment.TransactionRef = strings.TrimSpace(payment.TransactionRef)
	payment.AffiliateUsername = strings.ToLower(strings.TrimSpace(payment.AffiliateUsername))
	payment.PlanType = strings.ToLower(strings.TrimSpace(payment.PlanType))

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "transaction_ref", Value: payment.TransactionRef},
		observability.Field{Key: "affiliate_username", Value: payment.AffiliateUsername},
		observability.Field{Key: "plan_type", Value: payment.PlanType},
	)

	if payment.TransactionRef == "" {
		return "", ErrTransactionRefRequired
	}
	if payment.DiscountAmount < 0 {
		return "", ErrInvalidDiscount
	}

	if payment.AffiliateUsername == "" {
		p.logger.Info(ctx, "payment has no affiliate attribution")
		p.metrics.ReferralUnattributedEvent()
		return OutcomeUnattributed, nil
	}

	affiliate, err := p.store.GetAffiliateByUsername(ctx, payment.AffiliateUsername)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "payment names an unknown affiliate")
			p.metrics.ReferralUnattributedEvent()
			return OutcomeUnattributed, nil
		}
		p.logger.Error(ctx, "failed to get affiliate", err)
		return "", err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: affiliate.ID.String()})

	commission := Commission(payment.PlanType, payment.DiscountAmount)

	referral, err := p.store.RecordReferral(ctx, store.RecordReferralParams{
		AffiliateID:          affiliate.ID,
		AffiliateUsername:    affiliate.Username,
		TransactionRef:       payment.TransactionRef,
		ReferredUserID:       payment.ReferredUserID,
		ReferredBusinessID:   payment.ReferredBusinessID,
		ReferredBusinessName: payment.ReferredBusinessName,
		ReferredContacts:     payment.ReferredContacts,
		PlanType:             payment.PlanType,
		DiscountAmount:       payment.DiscountAmount,
		CommissionAmount:     commission,
	})
	if err != nil {
		if errors.Is(err, store.ErrReferralAlreadyRecorded) {
			p.logger.Info(ctx, "referral already recorded for transaction")
			p.metrics.ReferralDuplicate()
			return OutcomeDuplicate, nil
		}
		p.logger.Error(ctx, "failed to record referral", err)
		return "", err
	}

	p.logger.Info(ctx, "referral recorded")
	p.metrics.ReferralRecorded(referral.PlanType, referral.CommissionAmount)
	p.cache.Invalidate(ctx, affiliate.ID)
	if err := p.events.PublishReferralRecorded(ctx, referral); err != nil {
		p.logger.Error(ctx, "failed to publish referral recorded event", err)
	}

	return OutcomeRecorded, nil
}

// ListReferralsResponse represents the paginated response for referrals
type ListReferralsResponse struct {
	Referrals  []store.Referral `json:"referrals"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
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

func emptyPage(page, limit int) ListReferralsResponse {
	return ListReferralsResponse{Referrals: []store.Referral{}, Page: page, Limit: limit}
}

// ListReferralsForAffiliate lists the referrals credited to the affiliate
// owned by userID. Store failures yield an empty page.
func (p *ReferralProcessor) ListReferralsForAffiliate(ctx context.Context, userID uuid.UUID, page, limit int) (ListReferralsResponse, error) {
	page, limit, offset := pagination(page, limit)
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	affiliate, err := p.store.GetAffiliateByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ListReferralsResponse{}, ErrAffiliateNotFound
		}
		p.logger.Error(ctx, "failed to get affiliate", err)
		return emptyPage(page, limit), nil
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: affiliate.ID.String()})

	referrals, err := p.store.ListReferralsByAffiliate(ctx, affiliate.ID, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list referrals", err)
		return emptyPage(page, limit), nil
	}

	totalCount, err := p.store.CountReferralsByAffiliate(ctx, affiliate.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to count referrals", err)
		totalCount = len(referrals)
	}

	return ListReferralsResponse{
		Referrals:  referrals,
		TotalCount: totalCount,
		Page:       page,
		Limit:      limit,
	}, nil
}

// ListReferrals lists every referral for administrators. Store failures
// yield an empty page.
func (p *ReferralProcessor) ListReferrals(ctx context.Context, page, limit int) (ListReferralsResponse, error) {
	page, limit, offset := pagination(page, limit)

	referrals, err := p.store.ListReferrals(ctx, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list referrals", err)
		return emptyPage(page, limit), nil
	}

	totalCount, err := p.store.CountReferrals(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count referrals", err)
		totalCount = len(referrals)
	}

	return ListReferralsResponse{
		Referrals:  referrals,
		TotalCount: totalCount,
		Page:       page,
		Limit:      limit,
	}, nil
}
