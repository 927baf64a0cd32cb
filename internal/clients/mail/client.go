package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront-affiliates/internal/observability"

	"github.com/resendlabs/resend-go"
)

// ErrNoRecipient is returned before calling Resend when the address is blank.
var ErrNoRecipient = errors.New("email recipient is empty")

// ResendClient delivers transactional affiliate email through Resend
type ResendClient struct {
	client *resend.Client
	logger *observability.Logger
}

func NewResendClient(apiKey string, logger *observability.Logger) (*ResendClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("resend api key is empty")
	}
	return &ResendClient{
		client: resend.NewClient(apiKey),
		logger: logger,
	}, nil
}

// SendEmail sends one HTML message and returns the Resend message id.
func (c *ResendClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return "", ErrNoRecipient
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	res, err := c.client.Emails.Send(&resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(observability.WithFields(ctx, observability.Field{Key: "resend_id", Value: res.Id}), "email sent")
	return res.Id, nil
}
