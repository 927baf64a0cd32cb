package handler

import (
	"fmt"
	"net/http"

	"storefront-affiliates/internal/apierrors"
	authHandler "storefront-affiliates/internal/auth/handler"
	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/withdrawals/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.WithdrawalProcessor
	logger    *observability.Logger
}

func New(processor processor.WithdrawalProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RequestWithdrawalRequest represents the HTTP request for a payout
type RequestWithdrawalRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// UpdateWithdrawalStatusRequest represents an administrator's disposition
type UpdateWithdrawalStatusRequest struct {
	Status          string `json:"status" binding:"required,oneof=approved rejected paid"`
	RejectionReason string `json:"rejection_reason"`
	TransactionRef  string `json:"transaction_ref"`
}

func pageParams(c *gin.Context) (int, int) {
	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if _, err := fmt.Sscanf(pageStr, "%d", &page); err != nil || page < 1 {
			page = 1
		}
	}

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if _, err := fmt.Sscanf(limitStr, "%d", &limit); err != nil || limit < 1 || limit > 100 {
			limit = 20
		}
	}
	return page, limit
}

// HandleRequestWithdrawal handles POST /api/protected/affiliate/withdrawals
func (h *Handler) HandleRequestWithdrawal(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := authHandler.UserID(c)
	if !ok {
		return
	}

	var req RequestWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	affiliate, err := h.processor.AffiliateForUser(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	withdrawal, err := h.processor.RequestWithdrawal(ctx, affiliate.ID, req.Amount)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, withdrawal)
}

// HandleListMyWithdrawals handles GET /api/protected/affiliate/withdrawals
func (h *Handler) HandleListMyWithdrawals(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := authHandler.UserID(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	result, err := h.processor.ListWithdrawalsForAffiliate(ctx, userID, page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleListWithdrawals handles GET /api/admin/withdrawals
func (h *Handler) HandleListWithdrawals(c *gin.Context) {
	ctx := c.Request.Context()

	page, limit := pageParams(c)
	result, err := h.processor.ListWithdrawals(ctx, c.Query("status"), page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleUpdateWithdrawalStatus handles PATCH /api/admin/withdrawals/:id
func (h *Handler) HandleUpdateWithdrawalStatus(c *gin.Context) {
	ctx := c.Request.Context()

	adminID, ok := authHandler.UserID(c)
	if !ok {
		return
	}

	withdrawalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid withdrawal ID format"))
		return
	}

	var req UpdateWithdrawalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	withdrawal, err := h.processor.UpdateWithdrawalStatus(ctx, withdrawalID, processor.UpdateStatusRequest{
		Status:          req.Status,
		AdminID:         adminID,
		RejectionReason: req.RejectionReason,
		TransactionRef:  req.TransactionRef,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, withdrawal)
}
