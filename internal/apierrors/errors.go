package apierrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Machine-readable error codes returned to API clients
const (
	CodeInvalidInput      = "INVALID_INPUT"
	CodeNotFound          = "NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeInternalError     = "INTERNAL_ERROR"
	CodeQueueUnavailable  = "QUEUE_UNAVAILABLE"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"

	CodeEmailExists         = "EMAIL_EXISTS"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeUsernameTaken       = "USERNAME_TAKEN"
	CodeIdentityConflict    = "IDENTITY_CONFLICT"
	CodeAffiliateNotFound   = "AFFILIATE_NOT_FOUND"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodeCouponNotFound      = "COUPON_NOT_FOUND"
	CodeCouponNotApplicable = "COUPON_NOT_APPLICABLE"
	CodeInvalidPlan         = "INVALID_PLAN"

	CodeInvalidReferral = "INVALID_REFERRAL"

	CodeInvalidAmount           = "INVALID_AMOUNT"
	CodeAffiliateNotActive      = "AFFILIATE_NOT_ACTIVE"
	CodeMissingBankDetails      = "MISSING_BANK_DETAILS"
	CodePendingRequestExists    = "PENDING_REQUEST_EXISTS"
	CodeInsufficientBalance     = "INSUFFICIENT_BALANCE"
	CodeInvalidTransition       = "INVALID_TRANSITION"
	CodeRejectionReasonRequired = "REJECTION_REASON_REQUIRED"
	CodeWithdrawalNotFound      = "WITHDRAWAL_NOT_FOUND"

	CodePaymentProviderError = "PAYMENT_PROVIDER_ERROR"
	CodeEmailServiceError    = "EMAIL_SERVICE_ERROR"
)

// APIError is an error that knows how it is presented to API clients.
// Err carries the internal cause and is never sent to the client.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// BadRequest creates a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// NotFound creates a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// Conflict creates a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// Unauthorized creates a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden creates a 403 error
func Forbidden(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: code, Message: message}
}

// UnprocessableEntity creates a 422 error for requests that are well formed
// but conflict with the current state of the ledger
func UnprocessableEntity(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusUnprocessableEntity, Code: code, Message: message}
}

// ServiceUnavailable creates a 503 error wrapping the internal cause
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// TooManyRequests creates a 429 error for rate limited clients
func TooManyRequests(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimitExceeded, Message: message}
}

// InternalError creates a sanitized 500 error - never exposes internal details
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}

// ValidationError creates a 400 error describing failed binding validation
func ValidationError(err error) *APIError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return &APIError{
			StatusCode: http.StatusBadRequest,
			Code:       CodeInvalidInput,
			Message:    buildValidationMessage(validationErrs),
			Err:        err,
		}
	}
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       CodeInvalidInput,
		Message:    "Invalid request format. Please check your JSON syntax.",
		Err:        err,
	}
}
