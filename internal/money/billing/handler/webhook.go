package handler

import (
	"errors"
	"io"
	"net/http"

	"storefront-affiliates/internal/apierrors"
	"storefront-affiliates/internal/money/billing/processor"
	"storefront-affiliates/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79/webhook"
)

type Handler struct {
	processor processor.BillingProcessor
	logger    *observability.Logger
}

func New(processor processor.BillingProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// HandleWebhook verifies a Stripe webhook and hands successful payments to
// the referral queue. Once the signature verifies the response is 200 unless
// the payment could not be enqueued, so Stripe redelivers it.
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "failed to read request body"))
		return
	}

	signatureHeader := c.GetHeader("Stripe-Signature")
	if signatureHeader == "" {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "missing Stripe-Signature header"))
		return
	}
	event, err := webhook.ConstructEvent(payload, signatureHeader, h.processor.WebhookSecret)
	if err != nil {
		h.logger.Error(ctx, "invalid webhook signature", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid webhook signature"))
		return
	}

	err = h.processor.HandleWebhook(ctx, event)
	if err != nil && errors.Is(err, processor.ErrFailedToEnqueue) {
		apierrors.RespondWithError(c, apierrors.ServiceUnavailable(apierrors.CodeQueueUnavailable, "Payment could not be queued. Please retry.", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
