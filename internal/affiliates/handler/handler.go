package handler

import (
	"fmt"
	"net/http"

	"storefront-affiliates/internal/affiliates/processor"
	"storefront-affiliates/internal/apierrors"
	authHandler "storefront-affiliates/internal/auth/handler"
	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AffiliateProcessor
	logger    *observability.Logger
}

func New(processor processor.AffiliateProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SignupRequest represents the HTTP request for registering an affiliate
type SignupRequest struct {
	Username      string `json:"username" binding:"required,min=3,max=32"`
	FullName      string `json:"full_name" binding:"required,max=200"`
	Email         string `json:"email" binding:"required,email"`
	ContactNumber string `json:"contact_number" binding:"required"`
	Password      string `json:"password" binding:"required,min=8"`
}

// BankDetailsRequest represents the payout account of an affiliate
type BankDetailsRequest struct {
	AccountName   string `json:"account_name" binding:"required"`
	BankName      string `json:"bank_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
}

// UpdateStatusRequest represents the HTTP request for changing affiliate status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended pending"`
}

// HandleSignup registers a new affiliate
func (h *Handler) HandleSignup(c *gin.Context) {
	ctx := c.Request.Context()

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	affiliate, err := h.processor.CreateAffiliate(ctx, processor.CreateAffiliateRequest{
		Username:      req.Username,
		FullName:      req.FullName,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Password:      req.Password,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, affiliate)
}

// HandleGetProfile returns the authenticated affiliate and their balance
func (h *Handler) HandleGetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := authHandler.UserID(c)
	if !ok {
		return
	}

	profile, err := h.processor.GetProfile(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// HandleUpdateBankDetails replaces the authenticated affiliate's bank details
func (h *Handler) HandleUpdateBankDetails(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := authHandler.UserID(c)
	if !ok {
		return
	}

	var req BankDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	affiliate, err := h.processor.GetAffiliateByUserID(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	updated, err := h.processor.RecordBankDetails(ctx, affiliate.ID, store.BankDetails{
		AccountName:   req.AccountName,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// HandleListAffiliates lists affiliates with ledger totals for administrators
func (h *Handler) HandleListAffiliates(c *gin.Context) {
	ctx := c.Request.Context()

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

	result, err := h.processor.ListAffiliates(ctx, page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleUpdateStatus suspends or reactivates an affiliate
func (h *Handler) HandleUpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	affiliateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid affiliate ID format"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	affiliate, err := h.processor.SetStatus(ctx, affiliateID, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, affiliate)
}
