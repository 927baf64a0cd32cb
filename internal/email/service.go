package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"

	"storefront-affiliates/internal/observability"
)

var (
	ErrInvalidEmailAddress = errors.New("invalid email address")
	ErrSendingEmail        = errors.New("error sending email")
	ErrEmptyTemplate       = errors.New("email template is empty")
)

const (
	templateAffiliateWelcome    = "affiliate_welcome"
	templateWithdrawalRequested = "withdrawal_requested"
	templateWithdrawalStatus    = "withdrawal_status"
)

// EmailService handles sending emails
type EmailService struct {
	mailClient    MailClient
	logger        *observability.Logger
	defaultSender string
	templates     map[string]string
}

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	FullName        string
	Username        string
	CouponCode      string
	DashboardLink   string
	Amount          int64
	Status          string
	RejectionReason string
	TransactionRef  string
	BankName        string
	AccountNumber   string
}

// New creates a new EmailService
func New(mailClient MailClient, defaultSender string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		templates: map[string]string{
			templateAffiliateWelcome: `
			<html>
				<body>
					<h1>Welcome, {{.FullName}}!</h1>
					<p>Your affiliate account <strong>{{.Username}}</strong> is active.</p>
					<p>Share your coupon code <strong>{{.CouponCode}}</strong>. Every business that subscribes with it earns you a commission.</p>
					<p><a href="{{.DashboardLink}}">Open your affiliate dashboard</a></p>
				</body>
			</html>
			`,
			templateWithdrawalRequested: `
			<html>
				<body>
					<h1>Withdrawal request received</h1>
					<p>Hi {{.FullName}}, we received your request to withdraw {{.Amount}}.</p>
					<p>It will be paid to {{.BankName}} account ending {{.AccountNumber}} once approved.</p>
				</body>
			</html>
			`,
			templateWithdrawalStatus: `
			<html>
				<body>
					<h1>Withdrawal {{.Status}}</h1>
					<p>Hi {{.FullName}}, your withdrawal of {{.Amount}} is now <strong>{{.Status}}</strong>.</p>
					{{if .RejectionReason}}<p>Reason: {{.RejectionReason}}</p>{{end}}
					{{if .TransactionRef}}<p>Transfer reference: {{.TransactionRef}}</p>{{end}}
					<p><a href="{{.DashboardLink}}">View your withdrawals</a></p>
				</body>
			</html>
			`,
		},
	}
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	tmplStr, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	tmpl, err := template.New(templateName).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (s *EmailService) send(ctx context.Context, templateName, to, subject string, data TemplateData) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: templateName},
		observability.Field{Key: "recipient", Value: to},
	)

	if to == "" {
		s.logger.Error(ctx, "missing recipient", ErrInvalidEmailAddress)
		return ErrInvalidEmailAddress
	}

	htmlContent, err := s.renderTemplate(templateName, data)
	if err != nil {
		s.logger.Error(ctx, "failed to render email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendAffiliateWelcomeEmail sends the signup confirmation
func (s *EmailService) SendAffiliateWelcomeEmail(ctx context.Context, to string, data TemplateData) error {
	return s.send(ctx, templateAffiliateWelcome, to, "Welcome to the affiliate program", data)
}

// SendWithdrawalRequestedEmail acknowledges a withdrawal request
func (s *EmailService) SendWithdrawalRequestedEmail(ctx context.Context, to string, data TemplateData) error {
	return s.send(ctx, templateWithdrawalRequested, to, "We received your withdrawal request", data)
}

// SendWithdrawalStatusEmail reports a withdrawal status change
func (s *EmailService) SendWithdrawalStatusEmail(ctx context.Context, to string, data TemplateData) error {
	return s.send(ctx, templateWithdrawalStatus, to, fmt.Sprintf("Your withdrawal was %s", data.Status), data)
}
