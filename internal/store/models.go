package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// PlanAmounts is a JSONB plan -> amount table
type PlanAmounts map[string]int64

// Value implements the driver.Valuer interface for PlanAmounts
func (p PlanAmounts) Value() (driver.Value, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface for PlanAmounts
func (p *PlanAmounts) Scan(value interface{}) error {
	if value == nil {
		*p = PlanAmounts{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for PlanAmounts")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*p = PlanAmounts{}
		return nil
	}

	result := make(PlanAmounts)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*p = result
	return nil
}

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "{}", nil
	}
	buf, err := pgtype.NewMap().Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, []string(a), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to encode text array: %w", err)
	}
	return string(buf), nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	switch value.(type) {
	case []byte, string:
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	var items []string
	if err := pgtype.NewMap().SQLScanner(&items).Scan(value); err != nil {
		return fmt.Errorf("failed to parse text array: %w", err)
	}
	if items == nil {
		items = []string{}
	}
	*a = items
	return nil
}

// BankDetails is the payout destination of an affiliate
type BankDetails struct {
	AccountName   string `json:"account_name"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
}

// Affiliate represents a referral partner
type Affiliate struct {
	ID                uuid.UUID `db:"id" json:"id"`
	UserID            uuid.UUID `db:"user_id" json:"user_id"`
	Username          string    `db:"username" json:"username"`
	FullName          string    `db:"full_name" json:"full_name"`
	Email             string    `db:"email" json:"email"`
	ContactNumber     string    `db:"contact_number" json:"contact_number"`
	BankAccountName   *string   `db:"bank_account_name" json:"bank_account_name,omitempty"`
	BankName          *string   `db:"bank_name" json:"bank_name,omitempty"`
	BankAccountNumber *string   `db:"bank_account_number" json:"bank_account_number,omitempty"`
	TotalReferrals    int64     `db:"total_referrals" json:"total_referrals"`
	TotalEarnings     int64     `db:"total_earnings" json:"total_earnings"`
	Status            string    `db:"status" json:"status"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// Bank returns the recorded bank details, or nil when any field is missing.
func (a Affiliate) Bank() *BankDetails {
	if a.BankAccountName == nil || a.BankName == nil || a.BankAccountNumber == nil {
		return nil
	}
	if *a.BankAccountName == "" || *a.BankName == "" || *a.BankAccountNumber == "" {
		return nil
	}
	return &BankDetails{
		AccountName:   *a.BankAccountName,
		BankName:      *a.BankName,
		AccountNumber: *a.BankAccountNumber,
	}
}

// AffiliateWithTotals is an affiliate with aggregates recomputed from the ledger
type AffiliateWithTotals struct {
	Affiliate
	LedgerReferrals   int64 `db:"ledger_referrals" json:"ledger_referrals"`
	CompletedEarnings int64 `db:"completed_earnings" json:"completed_earnings"`
	ReservedAmount    int64 `db:"reserved_amount" json:"reserved_amount"`
}

// Coupon is a redeemable discount code
type Coupon struct {
	Code              string      `db:"code" json:"code"`
	DiscountKind      string      `db:"discount_kind" json:"discount_kind"`
	FixedAmount       int64       `db:"fixed_amount" json:"fixed_amount"`
	PerPlanAmounts    PlanAmounts `db:"per_plan_amounts" json:"per_plan_amounts"`
	AffiliateUsername *string     `db:"affiliate_username" json:"affiliate_username,omitempty"`
	Active            bool        `db:"active" json:"active"`
	UsageLimit        *int        `db:"usage_limit" json:"usage_limit,omitempty"`
	CreatedAt         time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time   `db:"updated_at" json:"updated_at"`
}

// Referral is one credited payment event
type Referral struct {
	ID                   uuid.UUID   `db:"id" json:"id"`
	AffiliateID          uuid.UUID   `db:"affiliate_id" json:"affiliate_id"`
	AffiliateUsername    string      `db:"affiliate_username" json:"affiliate_username"`
	TransactionRef       string      `db:"transaction_ref" json:"transaction_ref"`
	ReferredUserID       string      `db:"referred_user_id" json:"referred_user_id"`
	ReferredBusinessID   string      `db:"referred_business_id" json:"referred_business_id"`
	ReferredBusinessName string      `db:"referred_business_name" json:"referred_business_name"`
	ReferredContacts     StringArray `db:"referred_contacts" json:"referred_contacts"`
	PlanType             string      `db:"plan_type" json:"plan_type"`
	DiscountAmount       int64       `db:"discount_amount" json:"discount_amount"`
	CommissionAmount     int64       `db:"commission_amount" json:"commission_amount"`
	PaymentStatus        string      `db:"payment_status" json:"payment_status"`
	CreatedAt            time.Time   `db:"created_at" json:"created_at"`
	CompletedAt          *time.Time  `db:"completed_at" json:"completed_at,omitempty"`
}

// WithdrawalRequest is a payout request and its disposition
type WithdrawalRequest struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	AffiliateID       uuid.UUID  `db:"affiliate_id" json:"affiliate_id"`
	AffiliateUsername string     `db:"affiliate_username" json:"affiliate_username"`
	AffiliateEmail    string     `db:"affiliate_email" json:"affiliate_email"`
	Amount            int64      `db:"amount" json:"amount"`
	BankAccountName   string     `db:"bank_account_name" json:"bank_account_name"`
	BankName          string     `db:"bank_name" json:"bank_name"`
	BankAccountNumber string     `db:"bank_account_number" json:"bank_account_number"`
	Status            string     `db:"status" json:"status"`
	RequestedAt       time.Time  `db:"requested_at" json:"requested_at"`
	ProcessedAt       *time.Time `db:"processed_at" json:"processed_at,omitempty"`
	ProcessedBy       *uuid.UUID `db:"processed_by" json:"processed_by,omitempty"`
	RejectionReason   *string    `db:"rejection_reason" json:"rejection_reason,omitempty"`
	TransactionRef    *string    `db:"transaction_ref" json:"transaction_ref,omitempty"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// LedgerTotals are the ledger sums that make up an affiliate's balance
type LedgerTotals struct {
	Completed int64 `db:"completed"`
	Reserved  int64 `db:"reserved"`
}
