package store

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// uniqueUsername returns a lowercase alphanumeric username with the given prefix.
func uniqueUsername(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

// --- User Fixtures ---

// UserOpts customizes user creation.
type UserOpts struct {
	FirstName string
	LastName  string
	Role      string
}

// DefaultUserOpts returns sensible defaults for user creation.
func DefaultUserOpts() UserOpts {
	return UserOpts{
		FirstName: "Test",
		LastName:  "User",
		Role:      UserRoleAffiliate,
	}
}

// CreateUser creates a test user with optional customization.
func (f *Fixtures) CreateUser(opts ...func(*UserOpts)) User {
	f.t.Helper()
	o := DefaultUserOpts()
	for _, fn := range opts {
		fn(&o)
	}

	var user User
	query := `INSERT INTO users (first_name, last_name, role) VALUES ($1, $2, $3) RETURNING id, first_name, last_name, role`
	err := f.testDB.GetDB().GetContext(f.ctx, &user, query, o.FirstName, o.LastName, o.Role)
	require.NoError(f.t, err, "failed to create test user")
	return user
}

// --- Affiliate Fixtures ---

// AffiliateOpts customizes affiliate creation.
type AffiliateOpts struct {
	UserID        *uuid.UUID
	Username      string
	FullName      string
	Email         string
	ContactNumber string
	Bank          *BankDetails
}

// DefaultAffiliateOpts returns sensible defaults for affiliate creation.
func DefaultAffiliateOpts() AffiliateOpts {
	username := uniqueUsername("aff")
	return AffiliateOpts{
		Username:      username,
		FullName:      "Test Affiliate",
		Email:         fmt.Sprintf("%s@example.com", username),
		ContactNumber: "+2348012345678",
	}
}

// WithBank sets bank details on the created affiliate.
func WithBank() func(*AffiliateOpts) {
	return func(o *AffiliateOpts) {
		o.Bank = &BankDetails{AccountName: "Test Affiliate", BankName: "Test Bank", AccountNumber: "0123456789"}
	}
}

// CreateAffiliate creates a test affiliate and its coupon through the store.
func (f *Fixtures) CreateAffiliate(opts ...func(*AffiliateOpts)) Affiliate {
	f.t.Helper()
	o := DefaultAffiliateOpts()
	for _, fn := range opts {
		fn(&o)
	}

	if o.UserID == nil {
		user := f.CreateUser()
		o.UserID = &user.ID
	}

	affiliate, err := f.testDB.Store.CreateAffiliateWithCoupon(f.ctx, CreateAffiliateParams{
		UserID:        *o.UserID,
		Username:      o.Username,
		FullName:      o.FullName,
		Email:         o.Email,
		ContactNumber: o.ContactNumber,
	}, affiliateCoupon(o.Username))
	require.NoError(f.t, err, "failed to create test affiliate")

	if o.Bank != nil {
		affiliate, err = f.testDB.Store.UpdateAffiliateBankDetails(f.ctx, affiliate.ID, *o.Bank)
		require.NoError(f.t, err, "failed to set test affiliate bank details")
	}
	return affiliate
}

// CreditReferral records a completed referral worth commission for the affiliate.
func (f *Fixtures) CreditReferral(affiliate Affiliate, commission int64) Referral {
	f.t.Helper()
	referral, err := f.testDB.Store.RecordReferral(f.ctx, RecordReferralParams{
		AffiliateID:       affiliate.ID,
		AffiliateUsername: affiliate.Username,
		TransactionRef:    "txn-" + uuid.New().String(),
		PlanType:          PlanBusiness,
		DiscountAmount:    commission,
		CommissionAmount:  commission,
	})
	require.NoError(f.t, err, "failed to credit test referral")
	return referral
}

func affiliateCoupon(username string) Coupon {
	return Coupon{
		Code:              username,
		DiscountKind:      DiscountKindPerPlan,
		PerPlanAmounts:    PlanAmounts{PlanBusiness: 2000, PlanPro: 4000},
		AffiliateUsername: &username,
		Active:            true,
	}
}

func allowAll(WithdrawalSnapshot) error { return nil }

func allowTransition(WithdrawalRequest) error { return nil }
