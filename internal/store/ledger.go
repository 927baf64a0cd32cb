package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetLedgerTotals = `
SELECT
    COALESCE((SELECT SUM(commission_amount)
              FROM referrals
              WHERE affiliate_id = $1 AND payment_status = 'completed'), 0) AS completed,
    COALESCE((SELECT SUM(amount)
              FROM withdrawal_requests
              WHERE affiliate_id = $1 AND status IN ('pending', 'approved', 'paid')), 0) AS reserved`

// GetLedgerTotals returns the completed commission and the reserved withdrawal
// amount of an affiliate in a single statement.
func (s *Store) GetLedgerTotals(ctx context.Context, affiliateID uuid.UUID) (LedgerTotals, error) {
	var totals LedgerTotals
	err := s.db.GetContext(ctx, &totals, sqlGetLedgerTotals, affiliateID)
	if err != nil {
		s.logger.Error(ctx, "failed to get ledger totals", err)
		return LedgerTotals{}, fmt.Errorf("failed to get ledger totals: %w", err)
	}
	return totals, nil
}

const sqlListAffiliatesWithTotals = `
SELECT
    a.id, a.user_id, a.username, a.full_name, a.email, a.contact_number,
    a.bank_account_name, a.bank_name, a.bank_account_number,
    a.total_referrals, a.total_earnings, a.status, a.created_at, a.updated_at,
    COALESCE(r.referrals, 0) AS ledger_referrals,
    COALESCE(r.completed, 0) AS completed_earnings,
    COALESCE(w.reserved, 0) AS reserved_amount
FROM affiliates a
LEFT JOIN (
    SELECT affiliate_id,
           COUNT(*) AS referrals,
           SUM(commission_amount) FILTER (WHERE payment_status = 'completed') AS completed
    FROM referrals
    GROUP BY affiliate_id
) r ON r.affiliate_id = a.id
LEFT JOIN (
    SELECT affiliate_id, SUM(amount) AS reserved
    FROM withdrawal_requests
    WHERE status IN ('pending', 'approved', 'paid')
    GROUP BY affiliate_id
) w ON w.affiliate_id = a.id
ORDER BY a.created_at DESC
LIMIT $1 OFFSET $2`

// ListAffiliatesWithTotals retrieves affiliates with ledger totals recomputed live
func (s *Store) ListAffiliatesWithTotals(ctx context.Context, limit, offset int) ([]AffiliateWithTotals, error) {
	affiliates := []AffiliateWithTotals{}
	err := s.db.SelectContext(ctx, &affiliates, sqlListAffiliatesWithTotals, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list affiliates with totals", err)
		return nil, fmt.Errorf("failed to list affiliates with totals: %w", err)
	}
	return affiliates, nil
}

const sqlCountAffiliates = `SELECT COUNT(*) FROM affiliates`

// CountAffiliates counts all affiliates
func (s *Store) CountAffiliates(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountAffiliates)
	if err != nil {
		s.logger.Error(ctx, "failed to count affiliates", err)
		return 0, fmt.Errorf("failed to count affiliates: %w", err)
	}
	return count, nil
}

const sqlReconcileAffiliateTotals = `
WITH ledger AS (
    SELECT
        a.id,
        COALESCE(r.referrals, 0) AS referrals,
        GREATEST(COALESCE(r.completed, 0) - COALESCE(w.settled, 0), 0) AS earnings
    FROM affiliates a
    LEFT JOIN (
        SELECT affiliate_id,
               COUNT(*) AS referrals,
               SUM(commission_amount) FILTER (WHERE payment_status = 'completed') AS completed
        FROM referrals
        GROUP BY affiliate_id
    ) r ON r.affiliate_id = a.id
    LEFT JOIN (
        SELECT affiliate_id, SUM(amount) AS settled
        FROM withdrawal_requests
        WHERE status IN ('approved', 'paid')
        GROUP BY affiliate_id
    ) w ON w.affiliate_id = a.id
)
UPDATE affiliates
SET total_referrals = ledger.referrals,
    total_earnings = ledger.earnings,
    updated_at = CURRENT_TIMESTAMP
FROM ledger
WHERE affiliates.id = ledger.id
  AND (affiliates.total_referrals <> ledger.referrals OR affiliates.total_earnings <> ledger.earnings)`

const sqlLockAllAffiliates = `
SELECT id
FROM affiliates
ORDER BY id
FOR UPDATE`

// ReconcileAffiliateTotals rebuilds total_referrals and total_earnings from the
// ledger and returns the number of affiliates whose aggregates had drifted.
// Affiliate rows are locked first so referrals and settlements in flight either
// finish before the rebuild reads the ledger or apply on top of its result.
func (s *Store) ReconcileAffiliateTotals(ctx context.Context) (int64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var locked []uuid.UUID
	if err = tx.SelectContext(ctx, &locked, sqlLockAllAffiliates); err != nil {
		s.logger.Error(ctx, "failed to lock affiliates", err)
		return 0, fmt.Errorf("failed to lock affiliates: %w", err)
	}

	res, err := tx.ExecContext(ctx, sqlReconcileAffiliateTotals)
	if err != nil {
		s.logger.Error(ctx, "failed to reconcile affiliate totals", err)
		return 0, fmt.Errorf("failed to reconcile affiliate totals: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return rows, nil
}
