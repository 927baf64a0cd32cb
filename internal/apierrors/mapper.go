package apierrors

import (
	"errors"
	"strings"

	affiliateProcessor "storefront-affiliates/internal/affiliates/processor"
	authProcessor "storefront-affiliates/internal/auth/processor"
	couponProcessor "storefront-affiliates/internal/coupons/processor"
	referralProcessor "storefront-affiliates/internal/referral/processor"
	"storefront-affiliates/internal/store"
	withdrawalProcessor "storefront-affiliates/internal/withdrawals/processor"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	// Check if already an APIError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Map auth processor errors
	case errors.Is(err, authProcessor.ErrEmailAlreadyExists):
		return Conflict(CodeEmailExists, "Email already exists")

	case errors.Is(err, authProcessor.ErrIncorrectCredentials):
		return Unauthorized("Invalid email or password")

	case errors.Is(err, authProcessor.ErrUserNotFound):
		return NotFound(CodeUserNotFound, "User not found")

	case errors.Is(err, authProcessor.ErrInvalidJWTToken),
		errors.Is(err, authProcessor.ErrParseJWTToken),
		errors.Is(err, authProcessor.ErrExpiredToken):
		return Unauthorized("Invalid or expired token")

	// Map affiliate processor errors
	case errors.Is(err, affiliateProcessor.ErrInvalidUsername),
		errors.Is(err, affiliateProcessor.ErrInvalidEmail),
		errors.Is(err, affiliateProcessor.ErrInvalidFullName),
		errors.Is(err, affiliateProcessor.ErrInvalidPassword),
		errors.Is(err, affiliateProcessor.ErrInvalidContactNumber),
		errors.Is(err, affiliateProcessor.ErrInvalidBankDetails):
		return BadRequest(CodeInvalidInput, capitalize(err.Error()))

	case errors.Is(err, affiliateProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid affiliate status")

	case errors.Is(err, affiliateProcessor.ErrUsernameTaken):
		return Conflict(CodeUsernameTaken, "Username already taken")

	case errors.Is(err, affiliateProcessor.ErrEmailTaken):
		return Conflict(CodeEmailExists, "An affiliate already exists for this email")

	case errors.Is(err, affiliateProcessor.ErrIdentityConflict):
		return Conflict(CodeIdentityConflict, "Email is registered with a different password")

	case errors.Is(err, affiliateProcessor.ErrAffiliateNotFound),
		errors.Is(err, couponProcessor.ErrAffiliateNotFound),
		errors.Is(err, referralProcessor.ErrAffiliateNotFound),
		errors.Is(err, withdrawalProcessor.ErrAffiliateNotFound):
		return NotFound(CodeAffiliateNotFound, "Affiliate not found")

	// Map coupon processor errors
	case errors.Is(err, couponProcessor.ErrCouponNotFound):
		return NotFound(CodeCouponNotFound, "Coupon not found")

	case errors.Is(err, couponProcessor.ErrCouponNotApplicable):
		return BadRequest(CodeCouponNotApplicable, "Coupon does not apply to this plan")

	case errors.Is(err, couponProcessor.ErrInvalidPlan):
		return BadRequest(CodeInvalidPlan, "Invalid plan. Valid values: test, business, pro")

	// Map referral processor errors
	case errors.Is(err, referralProcessor.ErrTransactionRefRequired),
		errors.Is(err, referralProcessor.ErrInvalidDiscount):
		return BadRequest(CodeInvalidReferral, capitalize(err.Error()))

	// Map withdrawal processor errors
	case errors.Is(err, withdrawalProcessor.ErrInvalidAmount):
		return BadRequest(CodeInvalidAmount, "Withdrawal amount must be positive")

	case errors.Is(err, withdrawalProcessor.ErrRejectionReasonRequired):
		return BadRequest(CodeRejectionReasonRequired, "A rejection reason is required")

	case errors.Is(err, withdrawalProcessor.ErrAffiliateNotActive):
		return Forbidden(CodeAffiliateNotActive, "Affiliate account is not active")

	case errors.Is(err, withdrawalProcessor.ErrMissingBankDetails):
		return UnprocessableEntity(CodeMissingBankDetails, "Add bank details before requesting a withdrawal")

	case errors.Is(err, withdrawalProcessor.ErrPendingRequestExists):
		return Conflict(CodePendingRequestExists, "A withdrawal request is already pending")

	case errors.Is(err, withdrawalProcessor.ErrInsufficientBalance):
		return UnprocessableEntity(CodeInsufficientBalance, "Insufficient balance")

	case errors.Is(err, withdrawalProcessor.ErrInvalidTransition):
		return Conflict(CodeInvalidTransition, "Withdrawal cannot move to that status")

	case errors.Is(err, withdrawalProcessor.ErrWithdrawalNotFound):
		return NotFound(CodeWithdrawalNotFound, "Withdrawal request not found")

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	// Check for common external service errors by message content
	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	// Stripe/payment errors
	if strings.Contains(errMsg, "stripe") {
		return ServiceUnavailable(
			CodePaymentProviderError,
			"Payment provider is temporarily unavailable. Please try again later.",
			err,
		)
	}

	// Email service errors (Resend)
	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	// Default: Unknown error - return sanitized 500
	return InternalError(err)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
