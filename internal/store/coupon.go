package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const couponColumns = `code, discount_kind, fixed_amount, per_plan_amounts, affiliate_username, active, usage_limit, created_at, updated_at`

const sqlUpsertCoupon = `
INSERT INTO coupons (code, discount_kind, fixed_amount, per_plan_amounts, affiliate_username, active, usage_limit)
VALUES (lower($1), $2, $3, $4, $5, $6, $7)
ON CONFLICT (code) DO UPDATE
SET discount_kind = EXCLUDED.discount_kind,
    fixed_amount = EXCLUDED.fixed_amount,
    per_plan_amounts = EXCLUDED.per_plan_amounts,
    affiliate_username = EXCLUDED.affiliate_username,
    active = EXCLUDED.active,
    usage_limit = EXCLUDED.usage_limit,
    updated_at = CURRENT_TIMESTAMP
RETURNING ` + couponColumns

// UpsertCoupon creates the coupon or overwrites the row keyed by its code.
func (s *Store) UpsertCoupon(ctx context.Context, coupon Coupon) (Coupon, error) {
	return s.upsertCoupon(ctx, s.db, coupon)
}

func (s *Store) upsertCoupon(ctx context.Context, q sqlx.QueryerContext, coupon Coupon) (Coupon, error) {
	var saved Coupon
	err := sqlx.GetContext(ctx, q, &saved, sqlUpsertCoupon,
		coupon.Code,
		coupon.DiscountKind,
		coupon.FixedAmount,
		coupon.PerPlanAmounts,
		coupon.AffiliateUsername,
		coupon.Active,
		coupon.UsageLimit)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert coupon", err)
		return Coupon{}, fmt.Errorf("failed to upsert coupon: %w", err)
	}
	return saved, nil
}

const sqlGetCouponByCode = `
SELECT ` + couponColumns + `
FROM coupons
WHERE code = lower($1)`

// GetCouponByCode returns the coupon with the given code (case-insensitive).
func (s *Store) GetCouponByCode(ctx context.Context, code string) (Coupon, error) {
	var coupon Coupon
	err := s.db.GetContext(ctx, &coupon, sqlGetCouponByCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Coupon{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get coupon by code", err)
		return Coupon{}, fmt.Errorf("failed to get coupon by code: %w", err)
	}
	return coupon, nil
}
