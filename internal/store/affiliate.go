package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"storefront-affiliates/internal/observability"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrAffiliateUsernameExists = errors.New("affiliate username exists")
	ErrAffiliateEmailExists    = errors.New("affiliate email exists")
	ErrAffiliateUserExists     = errors.New("affiliate exists for user")
)

const affiliateColumns = `id, user_id, username, full_name, email, contact_number,
    bank_account_name, bank_name, bank_account_number,
    total_referrals, total_earnings, status, created_at, updated_at`

// CreateAffiliateParams represents parameters for creating an affiliate
type CreateAffiliateParams struct {
	UserID        uuid.UUID
	Username      string
	FullName      string
	Email         string
	ContactNumber string
}

const sqlCreateAffiliate = `
INSERT INTO affiliates (user_id, username, full_name, email, contact_number)
VALUES ($1, lower($2), $3, lower($4), $5)
RETURNING ` + affiliateColumns

// CreateAffiliateWithCoupon inserts the affiliate with zero aggregates and
// binds its coupon in the same transaction. Unique violations are reported as
// ErrAffiliateUsernameExists, ErrAffiliateEmailExists or ErrAffiliateUserExists.
func (s *Store) CreateAffiliateWithCoupon(ctx context.Context, params CreateAffiliateParams, coupon Coupon) (Affiliate, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Affiliate{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	var affiliate Affiliate
	err = tx.GetContext(ctx, &affiliate, sqlCreateAffiliate,
		params.UserID,
		params.Username,
		params.FullName,
		params.Email,
		params.ContactNumber)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			switch constraint {
			case constraintAffiliateUsername:
				return Affiliate{}, ErrAffiliateUsernameExists
			case constraintAffiliateEmail:
				return Affiliate{}, ErrAffiliateEmailExists
			case constraintAffiliateUserID:
				return Affiliate{}, ErrAffiliateUserExists
			}
		}
		s.logger.Error(ctx, "failed to create affiliate", err)
		return Affiliate{}, fmt.Errorf("failed to create affiliate: %w", err)
	}

	if _, err = s.upsertCoupon(ctx, tx, coupon); err != nil {
		return Affiliate{}, err
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Affiliate{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return affiliate, nil
}

const sqlGetAffiliateByID = `
SELECT ` + affiliateColumns + `
FROM affiliates
WHERE id = $1`

// GetAffiliateByID retrieves an affiliate by ID
func (s *Store) GetAffiliateByID(ctx context.Context, affiliateID uuid.UUID) (Affiliate, error) {
	return s.getAffiliate(ctx, "id", sqlGetAffiliateByID, affiliateID)
}

const sqlGetAffiliateByUsername = `
SELECT ` + affiliateColumns + `
FROM affiliates
WHERE lower(username) = lower($1)`

// GetAffiliateByUsername retrieves an affiliate by username (case-insensitive)
func (s *Store) GetAffiliateByUsername(ctx context.Context, username string) (Affiliate, error) {
	return s.getAffiliate(ctx, "username", sqlGetAffiliateByUsername, strings.TrimSpace(username))
}

const sqlGetAffiliateByEmail = `
SELECT ` + affiliateColumns + `
FROM affiliates
WHERE lower(email) = lower($1)`

// GetAffiliateByEmail retrieves an affiliate by email (case-insensitive)
func (s *Store) GetAffiliateByEmail(ctx context.Context, email string) (Affiliate, error) {
	return s.getAffiliate(ctx, "email", sqlGetAffiliateByEmail, strings.TrimSpace(email))
}

const sqlGetAffiliateByUserID = `
SELECT ` + affiliateColumns + `
FROM affiliates
WHERE user_id = $1`

// GetAffiliateByUserID retrieves the affiliate linked to an external identity
func (s *Store) GetAffiliateByUserID(ctx context.Context, userID uuid.UUID) (Affiliate, error) {
	return s.getAffiliate(ctx, "user_id", sqlGetAffiliateByUserID, userID)
}

func (s *Store) getAffiliate(ctx context.Context, by string, query string, arg interface{}) (Affiliate, error) {
	var affiliate Affiliate
	err := s.db.GetContext(ctx, &affiliate, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Affiliate{}, ErrNotFound
		}
		ctx = observability.WithFields(ctx, observability.Field{Key: "lookup_by", Value: by})
		s.logger.Error(ctx, "failed to get affiliate", err)
		return Affiliate{}, fmt.Errorf("failed to get affiliate by %s: %w", by, err)
	}
	return affiliate, nil
}

const sqlUpdateAffiliateBankDetails = `
UPDATE affiliates
SET bank_account_name = $2,
    bank_name = $3,
    bank_account_number = $4,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + affiliateColumns

// UpdateAffiliateBankDetails replaces the bank details of an affiliate
func (s *Store) UpdateAffiliateBankDetails(ctx context.Context, affiliateID uuid.UUID, details BankDetails) (Affiliate, error) {
	var affiliate Affiliate
	err := s.db.GetContext(ctx, &affiliate, sqlUpdateAffiliateBankDetails,
		affiliateID,
		details.AccountName,
		details.BankName,
		details.AccountNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Affiliate{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update affiliate bank details", err)
		return Affiliate{}, fmt.Errorf("failed to update affiliate bank details: %w", err)
	}
	return affiliate, nil
}

const sqlUpdateAffiliateStatus = `
UPDATE affiliates
SET status = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + affiliateColumns

// UpdateAffiliateStatus sets the account status of an affiliate
func (s *Store) UpdateAffiliateStatus(ctx context.Context, affiliateID uuid.UUID, status string) (Affiliate, error) {
	var affiliate Affiliate
	err := s.db.GetContext(ctx, &affiliate, sqlUpdateAffiliateStatus, affiliateID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Affiliate{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update affiliate status", err)
		return Affiliate{}, fmt.Errorf("failed to update affiliate status: %w", err)
	}
	return affiliate, nil
}
