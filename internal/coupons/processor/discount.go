package processor

import (
	"fmt"

	"storefront-affiliates/internal/store"
)

// Discount is the amount a coupon takes off a plan. It is either Fixed or
// PerPlan and is only ever resolved against a concrete plan.
type Discount interface {
	// For returns the discount for plan and whether the plan is covered.
	For(plan string) (int64, bool)
	kind() string
}

// Fixed applies the same amount to every plan
type Fixed struct {
	Amount int64
}

func (f Fixed) For(string) (int64, bool) {
	return f.Amount, f.Amount > 0
}

func (Fixed) kind() string { return store.DiscountKindFixed }

// PerPlan maps plan type to amount; plans outside the map get no discount
type PerPlan map[string]int64

func (p PerPlan) For(plan string) (int64, bool) {
	amount, ok := p[plan]
	return amount, ok && amount > 0
}

func (PerPlan) kind() string { return store.DiscountKindPerPlan }

// AffiliateDiscount is the canonical table every affiliate coupon carries.
func AffiliateDiscount() PerPlan {
	return PerPlan{
		store.PlanBusiness: 2000,
		store.PlanPro:      4000,
	}
}

// DiscountFromCoupon decodes the stored columns into a Discount.
func DiscountFromCoupon(coupon store.Coupon) (Discount, error) {
	switch coupon.DiscountKind {
	case store.DiscountKindFixed:
		return Fixed{Amount: coupon.FixedAmount}, nil
	case store.DiscountKindPerPlan:
		amounts := PerPlan{}
		for plan, amount := range coupon.PerPlanAmounts {
			amounts[plan] = amount
		}
		return amounts, nil
	default:
		return nil, fmt.Errorf("unknown discount kind %q", coupon.DiscountKind)
	}
}

// ToCoupon encodes a Discount into a coupon row.
func ToCoupon(code string, discount Discount) store.Coupon {
	coupon := store.Coupon{
		Code:           code,
		DiscountKind:   discount.kind(),
		PerPlanAmounts: store.PlanAmounts{},
		Active:         true,
	}
	switch d := discount.(type) {
	case Fixed:
		coupon.FixedAmount = d.Amount
	case PerPlan:
		for plan, amount := range d {
			coupon.PerPlanAmounts[plan] = amount
		}
	}
	return coupon
}

// AffiliateCoupon builds the coupon bound to an affiliate username: code
// equal to the username, the canonical table, active and unlimited.
func AffiliateCoupon(username string) store.Coupon {
	coupon := ToCoupon(username, AffiliateDiscount())
	coupon.AffiliateUsername = &username
	return coupon
}
