package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"storefront-affiliates/internal/email"
	"storefront-affiliates/internal/jobs"
	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// EmailStore loads the records an affiliate email is rendered from
type EmailStore interface {
	GetAffiliateByID(ctx context.Context, affiliateID uuid.UUID) (store.Affiliate, error)
	GetWithdrawalByID(ctx context.Context, withdrawalID uuid.UUID) (store.WithdrawalRequest, error)
}

// EmailWorker handles email sending jobs
type EmailWorker struct {
	store        EmailStore
	emailService email.EmailSender
	webAppURI    string
	logger       *observability.Logger
}

// NewEmailWorker creates a new email worker
func NewEmailWorker(store EmailStore, emailService email.EmailSender, webAppURI string, logger *observability.Logger) *EmailWorker {
	return &EmailWorker{
		store:        store,
		emailService: emailService,
		webAppURI:    strings.TrimRight(webAppURI, "/"),
		logger:       logger,
	}
}

// ProcessEmailTask processes an email task (for Asynq)
func (w *EmailWorker) ProcessEmailTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.EmailJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal email job payload", err)
		return fmt.Errorf("failed to unmarshal email job payload: %v: %w", err, asynq.SkipRetry)
	}
	return w.processEmail(ctx, payload)
}

// processEmail contains the core email sending logic
func (w *EmailWorker) processEmail(ctx context.Context, payload jobs.EmailJobPayload) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_kind", Value: payload.Kind},
		observability.Field{Key: "affiliate_id", Value: payload.AffiliateID.String()},
	)

	affiliate, err := w.store.GetAffiliateByID(ctx, payload.AffiliateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			w.logger.Warn(ctx, "affiliate for email job no longer exists")
			return fmt.Errorf("affiliate not found: %w", asynq.SkipRetry)
		}
		w.logger.Error(ctx, "failed to get affiliate", err)
		return fmt.Errorf("failed to get affiliate: %w", err)
	}

	data := email.TemplateData{
		FullName:      affiliate.FullName,
		Username:      affiliate.Username,
		CouponCode:    affiliate.Username,
		DashboardLink: w.webAppURI + "/affiliate",
	}

	switch payload.Kind {
	case jobs.EmailKindAffiliateWelcome:
		err = w.emailService.SendAffiliateWelcomeEmail(ctx, affiliate.Email, data)

	case jobs.EmailKindWithdrawalRequested, jobs.EmailKindWithdrawalStatus:
		if payload.WithdrawalID == nil {
			w.logger.Error(ctx, "withdrawal email job has no withdrawal id", nil)
			return fmt.Errorf("missing withdrawal id: %w", asynq.SkipRetry)
		}
		withdrawal, err := w.store.GetWithdrawalByID(ctx, *payload.WithdrawalID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("withdrawal not found: %w", asynq.SkipRetry)
			}
			w.logger.Error(ctx, "failed to get withdrawal", err)
			return fmt.Errorf("failed to get withdrawal: %w", err)
		}
		withWithdrawal(&data, withdrawal)

		if payload.Kind == jobs.EmailKindWithdrawalRequested {
			err = w.emailService.SendWithdrawalRequestedEmail(ctx, affiliate.Email, data)
		} else {
			err = w.emailService.SendWithdrawalStatusEmail(ctx, affiliate.Email, data)
		}
		if err != nil {
			w.logger.Error(ctx, "failed to send withdrawal email", err)
			return fmt.Errorf("failed to send email: %w", err)
		}
		w.logger.Info(ctx, "withdrawal email sent")
		return nil

	default:
		w.logger.Error(ctx, "unknown email kind", nil)
		return fmt.Errorf("unknown email kind %q: %w", payload.Kind, asynq.SkipRetry)
	}

	if err != nil {
		w.logger.Error(ctx, "failed to send email", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	w.logger.Info(ctx, "email sent")
	return nil
}

func withWithdrawal(data *email.TemplateData, withdrawal store.WithdrawalRequest) {
	data.Amount = withdrawal.Amount
	data.Status = withdrawal.Status
	data.BankName = withdrawal.BankName
	data.AccountNumber = maskAccountNumber(withdrawal.BankAccountNumber)
	if withdrawal.RejectionReason != nil {
		data.RejectionReason = *withdrawal.RejectionReason
	}
	if withdrawal.TransactionRef != nil {
		data.TransactionRef = *withdrawal.TransactionRef
	}
}

// maskAccountNumber keeps the last four digits
func maskAccountNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}
