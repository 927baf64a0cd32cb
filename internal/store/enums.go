package store

// User roles
const (
	UserRoleAffiliate = "affiliate"
	UserRoleAdmin     = "admin"
)

// Affiliate ENUMs
const (
	AffiliateStatusActive    = "active"
	AffiliateStatusSuspended = "suspended"
	AffiliateStatusPending   = "pending"
)

// Plan types sold by the storefront
const (
	PlanTest     = "test"
	PlanBusiness = "business"
	PlanPro      = "pro"
)

// Coupon ENUMs
const (
	DiscountKindFixed   = "fixed"
	DiscountKindPerPlan = "per_plan"
)

// Referral ENUMs
const (
	ReferralPaymentStatusPending   = "pending"
	ReferralPaymentStatusCompleted = "completed"
	ReferralPaymentStatusFailed    = "failed"
)

// Withdrawal ENUMs
const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusRejected = "rejected"
	WithdrawalStatusPaid     = "paid"
)

// Unique constraint names from the migrations
const (
	constraintAffiliateUsername  = "affiliates_username_key"
	constraintAffiliateEmail     = "affiliates_email_key"
	constraintAffiliateUserID    = "affiliates_user_id_key"
	constraintEmailAuthEmail     = "email_auth_email_key"
	constraintOnePendingWithdraw = "withdrawal_requests_one_pending_key"
)
