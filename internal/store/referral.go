package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrReferralAlreadyRecorded is returned when the transaction reference was
// already claimed by an earlier delivery of the same payment event.
var ErrReferralAlreadyRecorded = errors.New("referral already recorded for transaction")

const referralColumns = `id, affiliate_id, affiliate_username, transaction_ref, referred_user_id,
    referred_business_id, referred_business_name, referred_contacts, plan_type,
    discount_amount, commission_amount, payment_status, created_at, completed_at`

// RecordReferralParams represents parameters for crediting a referral
type RecordReferralParams struct {
	AffiliateID          uuid.UUID
	AffiliateUsername    string
	TransactionRef       string
	ReferredUserID       string
	ReferredBusinessID   string
	ReferredBusinessName string
	ReferredContacts     []string
	PlanType             string
	DiscountAmount       int64
	CommissionAmount     int64
}

const sqlClaimTransaction = `
INSERT INTO referral_claims (transaction_ref, affiliate_id)
VALUES ($1, $2)
ON CONFLICT (transaction_ref) DO NOTHING`

const sqlIncrementAffiliateTotals = `
UPDATE affiliates
SET total_referrals = total_referrals + 1,
    total_earnings = total_earnings + $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1`

const sqlInsertCompletedReferral = `
INSERT INTO referrals (
    affiliate_id, affiliate_username, transaction_ref, referred_user_id,
    referred_business_id, referred_business_name, referred_contacts, plan_type,
    discount_amount, commission_amount, payment_status, completed_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'completed', CURRENT_TIMESTAMP)
RETURNING ` + referralColumns

// RecordReferral claims the transaction reference, bumps the affiliate
// aggregates and inserts the completed referral in one transaction. A second
// call with the same reference returns ErrReferralAlreadyRecorded and changes
// nothing.
func (s *Store) RecordReferral(ctx context.Context, params RecordReferralParams) (Referral, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Referral{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	res, err := tx.ExecContext(ctx, sqlClaimTransaction, params.TransactionRef, params.AffiliateID)
	if err != nil {
		s.logger.Error(ctx, "failed to claim transaction reference", err)
		return Referral{}, fmt.Errorf("failed to claim transaction reference: %w", err)
	}
	claimed, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return Referral{}, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if claimed == 0 {
		err = ErrReferralAlreadyRecorded
		return Referral{}, err
	}

	res, err = tx.ExecContext(ctx, sqlIncrementAffiliateTotals, params.AffiliateID, params.CommissionAmount)
	if err != nil {
		s.logger.Error(ctx, "failed to increment affiliate totals", err)
		return Referral{}, fmt.Errorf("failed to increment affiliate totals: %w", err)
	}
	updated, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return Referral{}, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if updated == 0 {
		err = ErrNotFound
		return Referral{}, err
	}

	var referral Referral
	err = tx.GetContext(ctx, &referral, sqlInsertCompletedReferral,
		params.AffiliateID,
		params.AffiliateUsername,
		params.TransactionRef,
		params.ReferredUserID,
		params.ReferredBusinessID,
		params.ReferredBusinessName,
		StringArray(params.ReferredContacts),
		params.PlanType,
		params.DiscountAmount,
		params.CommissionAmount)
	if err != nil {
		s.logger.Error(ctx, "failed to insert referral", err)
		return Referral{}, fmt.Errorf("failed to insert referral: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Referral{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return referral, nil
}

const sqlListReferralsByAffiliate = `
SELECT ` + referralColumns + `
FROM referrals
WHERE affiliate_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

// ListReferralsByAffiliate retrieves referrals credited to an affiliate with pagination
func (s *Store) ListReferralsByAffiliate(ctx context.Context, affiliateID uuid.UUID, limit, offset int) ([]Referral, error) {
	referrals := []Referral{}
	err := s.db.SelectContext(ctx, &referrals, sqlListReferralsByAffiliate, affiliateID, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list referrals by affiliate", err)
		return nil, fmt.Errorf("failed to list referrals by affiliate: %w", err)
	}
	return referrals, nil
}

const sqlCountReferralsByAffiliate = `
SELECT COUNT(*)
FROM referrals
WHERE affiliate_id = $1`

// CountReferralsByAffiliate counts referrals credited to an affiliate
func (s *Store) CountReferralsByAffiliate(ctx context.Context, affiliateID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountReferralsByAffiliate, affiliateID)
	if err != nil {
		s.logger.Error(ctx, "failed to count referrals by affiliate", err)
		return 0, fmt.Errorf("failed to count referrals by affiliate: %w", err)
	}
	return count, nil
}

const sqlListReferrals = `
SELECT ` + referralColumns + `
FROM referrals
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

// ListReferrals retrieves all referrals with pagination
func (s *Store) ListReferrals(ctx context.Context, limit, offset int) ([]Referral, error) {
	referrals := []Referral{}
	err := s.db.SelectContext(ctx, &referrals, sqlListReferrals, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list referrals", err)
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}
	return referrals, nil
}

const sqlCountReferrals = `SELECT COUNT(*) FROM referrals`

// CountReferrals counts all referrals
func (s *Store) CountReferrals(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountReferrals)
	if err != nil {
		s.logger.Error(ctx, "failed to count referrals", err)
		return 0, fmt.Errorf("failed to count referrals: %w", err)
	}
	return count, nil
}
