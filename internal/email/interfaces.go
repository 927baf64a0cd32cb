package email

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=email

import (
	"context"
)

// MailClient is the outbound transport used by the email service
type MailClient interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// EmailSender defines the affiliate notification emails
type EmailSender interface {
	// SendAffiliateWelcomeEmail greets a newly registered affiliate with their coupon code
	SendAffiliateWelcomeEmail(ctx context.Context, to string, data TemplateData) error

	// SendWithdrawalRequestedEmail acknowledges a new withdrawal request
	SendWithdrawalRequestedEmail(ctx context.Context, to string, data TemplateData) error

	// SendWithdrawalStatusEmail tells the affiliate their withdrawal was approved, rejected or paid
	SendWithdrawalStatusEmail(ctx context.Context, to string, data TemplateData) error
}
