package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrPendingWithdrawalExists is returned when the one-pending-per-affiliate
// index rejects an insert.
var ErrPendingWithdrawalExists = errors.New("pending withdrawal exists")

const withdrawalColumns = `id, affiliate_id, affiliate_username, affiliate_email, amount,
    bank_account_name, bank_name, bank_account_number, status, requested_at,
    processed_at, processed_by, rejection_reason, transaction_ref, updated_at`

// WithdrawalSnapshot is the locked state a withdrawal request is validated against
type WithdrawalSnapshot struct {
	Affiliate  Affiliate
	HasPending bool
	Totals     LedgerTotals
}

// WithdrawalGuard validates a request against the locked snapshot; a non-nil
// error aborts the transaction and is returned unchanged.
type WithdrawalGuard func(snapshot WithdrawalSnapshot) error

const sqlLockAffiliate = `
SELECT ` + affiliateColumns + `
FROM affiliates
WHERE id = $1
FOR UPDATE`

const sqlHasPendingWithdrawal = `
SELECT EXISTS(SELECT 1
              FROM withdrawal_requests
              WHERE affiliate_id = $1 AND status = 'pending')`

const sqlInsertWithdrawal = `
INSERT INTO withdrawal_requests (
    affiliate_id, affiliate_username, affiliate_email, amount,
    bank_account_name, bank_name, bank_account_number
)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + withdrawalColumns

// CreateWithdrawalRequest locks the affiliate row, hands the locked snapshot to
// guard and, when it passes, inserts a pending request carrying a copy of the
// affiliate's bank details.
func (s *Store) CreateWithdrawalRequest(ctx context.Context, affiliateID uuid.UUID, amount int64, guard WithdrawalGuard) (WithdrawalRequest, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return WithdrawalRequest{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var snapshot WithdrawalSnapshot
	err = tx.GetContext(ctx, &snapshot.Affiliate, sqlLockAffiliate, affiliateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
			return WithdrawalRequest{}, err
		}
		s.logger.Error(ctx, "failed to lock affiliate", err)
		return WithdrawalRequest{}, fmt.Errorf("failed to lock affiliate: %w", err)
	}
	err = tx.GetContext(ctx, &snapshot.HasPending, sqlHasPendingWithdrawal, affiliateID)
	if err != nil {
		s.logger.Error(ctx, "failed to check pending withdrawal", err)
		return WithdrawalRequest{}, fmt.Errorf("failed to check pending withdrawal: %w", err)
	}
	err = tx.GetContext(ctx, &snapshot.Totals, sqlGetLedgerTotals, affiliateID)
	if err != nil {
		s.logger.Error(ctx, "failed to get ledger totals", err)
		return WithdrawalRequest{}, fmt.Errorf("failed to get ledger totals: %w", err)
	}

	if err = guard(snapshot); err != nil {
		return WithdrawalRequest{}, err
	}

	bank := snapshot.Affiliate.Bank()
	if bank == nil {
		bank = &BankDetails{}
	}
	var withdrawal WithdrawalRequest
	err = tx.GetContext(ctx, &withdrawal, sqlInsertWithdrawal,
		affiliateID,
		snapshot.Affiliate.Username,
		snapshot.Affiliate.Email,
		amount,
		bank.AccountName,
		bank.BankName,
		bank.AccountNumber)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == constraintOnePendingWithdraw {
			err = ErrPendingWithdrawalExists
			return WithdrawalRequest{}, err
		}
		s.logger.Error(ctx, "failed to insert withdrawal request", err)
		return WithdrawalRequest{}, fmt.Errorf("failed to insert withdrawal request: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return WithdrawalRequest{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return withdrawal, nil
}

// WithdrawalTransition describes the disposition an administrator applies
type WithdrawalTransition struct {
	Status          string
	ProcessedBy     uuid.UUID
	RejectionReason *string
	TransactionRef  *string
}

// TransitionGuard validates a transition against the locked current row; a
// non-nil error aborts the transaction and is returned unchanged.
type TransitionGuard func(current WithdrawalRequest) error

const sqlLockWithdrawal = `
SELECT ` + withdrawalColumns + `
FROM withdrawal_requests
WHERE id = $1
FOR UPDATE`

const sqlUpdateWithdrawalStatus = `
UPDATE withdrawal_requests
SET status = $2,
    processed_at = CURRENT_TIMESTAMP,
    processed_by = $3,
    rejection_reason = COALESCE($4, rejection_reason),
    transaction_ref = COALESCE($5, transaction_ref),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + withdrawalColumns

const sqlDecrementAffiliateEarnings = `
UPDATE affiliates
SET total_earnings = GREATEST(total_earnings - $2, 0),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1`

// TransitionWithdrawal locks the request, lets guard validate the move and
// applies it. Settling a pending request (approved or paid) also lowers the
// affiliate's total_earnings by the amount, floored at zero.
func (s *Store) TransitionWithdrawal(ctx context.Context, withdrawalID uuid.UUID, transition WithdrawalTransition, guard TransitionGuard) (WithdrawalRequest, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return WithdrawalRequest{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var current WithdrawalRequest
	err = tx.GetContext(ctx, &current, sqlLockWithdrawal, withdrawalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
			return WithdrawalRequest{}, err
		}
		s.logger.Error(ctx, "failed to lock withdrawal request", err)
		return WithdrawalRequest{}, fmt.Errorf("failed to lock withdrawal request: %w", err)
	}

	if err = guard(current); err != nil {
		return WithdrawalRequest{}, err
	}

	var updated WithdrawalRequest
	err = tx.GetContext(ctx, &updated, sqlUpdateWithdrawalStatus,
		withdrawalID,
		transition.Status,
		transition.ProcessedBy,
		transition.RejectionReason,
		transition.TransactionRef)
	if err != nil {
		s.logger.Error(ctx, "failed to update withdrawal status", err)
		return WithdrawalRequest{}, fmt.Errorf("failed to update withdrawal status: %w", err)
	}

	settles := transition.Status == WithdrawalStatusApproved || transition.Status == WithdrawalStatusPaid
	if current.Status == WithdrawalStatusPending && settles {
		_, err = tx.ExecContext(ctx, sqlDecrementAffiliateEarnings, current.AffiliateID, current.Amount)
		if err != nil {
			s.logger.Error(ctx, "failed to decrement affiliate earnings", err)
			return WithdrawalRequest{}, fmt.Errorf("failed to decrement affiliate earnings: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return WithdrawalRequest{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

const sqlGetWithdrawalByID = `
SELECT ` + withdrawalColumns + `
FROM withdrawal_requests
WHERE id = $1`

// GetWithdrawalByID retrieves a withdrawal request by ID
func (s *Store) GetWithdrawalByID(ctx context.Context, withdrawalID uuid.UUID) (WithdrawalRequest, error) {
	var withdrawal WithdrawalRequest
	err := s.db.GetContext(ctx, &withdrawal, sqlGetWithdrawalByID, withdrawalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WithdrawalRequest{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get withdrawal by id", err)
		return WithdrawalRequest{}, fmt.Errorf("failed to get withdrawal by id: %w", err)
	}
	return withdrawal, nil
}

const sqlListWithdrawalsByAffiliate = `
SELECT ` + withdrawalColumns + `
FROM withdrawal_requests
WHERE affiliate_id = $1
ORDER BY requested_at DESC
LIMIT $2 OFFSET $3`

// ListWithdrawalsByAffiliate retrieves an affiliate's withdrawal requests with pagination
func (s *Store) ListWithdrawalsByAffiliate(ctx context.Context, affiliateID uuid.UUID, limit, offset int) ([]WithdrawalRequest, error) {
	withdrawals := []WithdrawalRequest{}
	err := s.db.SelectContext(ctx, &withdrawals, sqlListWithdrawalsByAffiliate, affiliateID, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list withdrawals by affiliate", err)
		return nil, fmt.Errorf("failed to list withdrawals by affiliate: %w", err)
	}
	return withdrawals, nil
}

const sqlCountWithdrawalsByAffiliate = `
SELECT COUNT(*)
FROM withdrawal_requests
WHERE affiliate_id = $1`

// CountWithdrawalsByAffiliate counts an affiliate's withdrawal requests
func (s *Store) CountWithdrawalsByAffiliate(ctx context.Context, affiliateID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountWithdrawalsByAffiliate, affiliateID)
	if err != nil {
		s.logger.Error(ctx, "failed to count withdrawals by affiliate", err)
		return 0, fmt.Errorf("failed to count withdrawals by affiliate: %w", err)
	}
	return count, nil
}

const sqlListWithdrawals = `
SELECT ` + withdrawalColumns + `
FROM withdrawal_requests
WHERE ($1::text IS NULL OR status = $1)
ORDER BY requested_at DESC
LIMIT $2 OFFSET $3`

// ListWithdrawals retrieves withdrawal requests, optionally filtered by status
func (s *Store) ListWithdrawals(ctx context.Context, status *string, limit, offset int) ([]WithdrawalRequest, error) {
	withdrawals := []WithdrawalRequest{}
	err := s.db.SelectContext(ctx, &withdrawals, sqlListWithdrawals, status, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list withdrawals", err)
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	return withdrawals, nil
}

const sqlCountWithdrawals = `
SELECT COUNT(*)
FROM withdrawal_requests
WHERE ($1::text IS NULL OR status = $1)`

// CountWithdrawals counts withdrawal requests, optionally filtered by status
func (s *Store) CountWithdrawals(ctx context.Context, status *string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountWithdrawals, status)
	if err != nil {
		s.logger.Error(ctx, "failed to count withdrawals", err)
		return 0, fmt.Errorf("failed to count withdrawals: %w", err)
	}
	return count, nil
}
