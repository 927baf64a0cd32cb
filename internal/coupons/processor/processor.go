package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"

	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/store"
)

// CouponStore defines the database operations required by CouponProcessor
type CouponStore interface {
	UpsertCoupon(ctx context.Context, coupon store.Coupon) (store.Coupon, error)
	GetCouponByCode(ctx context.Context, code string) (store.Coupon, error)
	GetAffiliateByUsername(ctx context.Context, username string) (store.Affiliate, error)
}

var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponNotApplicable = errors.New("coupon does not apply to this plan")
	ErrInvalidPlan         = errors.New("invalid plan type")
	ErrAffiliateNotFound   = errors.New("affiliate not found")
)

type CouponProcessor struct {
	store  CouponStore
	logger *observability.Logger
}

func New(store CouponStore, logger *observability.Logger) CouponProcessor {
	return CouponProcessor{
		store:  store,
		logger: logger,
	}
}

// ResolvedDiscount is what checkout applies for a code and plan
type ResolvedDiscount struct {
	Code              string  `json:"code"`
	Plan              string  `json:"plan"`
	Amount            int64   `json:"amount"`
	AffiliateUsername *string `json:"affiliate_username,omitempty"`
}

func IsValidPlan(plan string) bool {
	switch plan {
	case store.PlanTest, store.PlanBusiness, store.PlanPro:
		return true
	}
	return false
}

// BindCouponForUsername upserts the affiliate coupon for an existing affiliate.
// Calling it again rewrites the same row.
func (p *CouponProcessor) BindCouponForUsername(ctx context.Context, username string) (store.Coupon, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_username", Value: username})

	affiliate, err := p.store.GetAffiliateByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Coupon{}, ErrAffiliateNotFound
		}
		p.logger.Error(ctx, "failed to get affiliate for coupon binding", err)
		return store.Coupon{}, err
	}

	coupon, err := p.store.UpsertCoupon(ctx, AffiliateCoupon(affiliate.Username))
	if err != nil {
		p.logger.Error(ctx, "failed to bind affiliate coupon", err)
		return store.Coupon{}, err
	}
	return coupon, nil
}

// Resolve looks the code up as a coupon first and as an affiliate username
// second, returning the discount for plan.
func (p *CouponProcessor) Resolve(ctx context.Context, code, plan string) (ResolvedDiscount, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	plan = strings.ToLower(strings.TrimSpace(plan))
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "coupon_code", Value: code},
		observability.Field{Key: "plan_type", Value: plan},
	)

	if !IsValidPlan(plan) {
		return ResolvedDiscount{}, ErrInvalidPlan
	}
	if code == "" {
		return ResolvedDiscount{}, ErrCouponNotFound
	}

	coupon, err := p.store.GetCouponByCode(ctx, code)
	if err == nil {
		return p.resolveCoupon(ctx, coupon, plan)
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to get coupon", err)
		return ResolvedDiscount{}, err
	}

	affiliate, err := p.store.GetAffiliateByUsername(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ResolvedDiscount{}, ErrCouponNotFound
		}
		p.logger.Error(ctx, "failed to get affiliate for coupon resolution", err)
		return ResolvedDiscount{}, err
	}

	amount, ok := AffiliateDiscount().For(plan)
	if !ok {
		return ResolvedDiscount{}, ErrCouponNotApplicable
	}
	return ResolvedDiscount{
		Code:              affiliate.Username,
		Plan:              plan,
		Amount:            amount,
		AffiliateUsername: &affiliate.Username,
	}, nil
}

func (p *CouponProcessor) resolveCoupon(ctx context.Context, coupon store.Coupon, plan string) (ResolvedDiscount, error) {
	if !coupon.Active {
		return ResolvedDiscount{}, ErrCouponNotApplicable
	}

	discount, err := DiscountFromCoupon(coupon)
	if err != nil {
		p.logger.Error(ctx, "failed to decode coupon discount", err)
		return ResolvedDiscount{}, err
	}

	amount, ok := discount.For(plan)
	if !ok {
		return ResolvedDiscount{}, ErrCouponNotApplicable
	}
	return ResolvedDiscount{
		Code:              coupon.Code,
		Plan:              plan,
		Amount:            amount,
		AffiliateUsername: coupon.AffiliateUsername,
	}, nil
}
