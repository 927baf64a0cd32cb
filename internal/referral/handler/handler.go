package handler

import (
	"fmt"
	"net/http"

	"storefront-affiliates/internal/apierrors"
	authHandler "storefront-affiliates/internal/auth/handler"
	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/referral/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.ReferralProcessor
	logger    *observability.Logger
}

func New(processor processor.ReferralProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
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

// HandleListMyReferrals handles GET /api/protected/affiliate/referrals
func (h *Handler) HandleListMyReferrals(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := authHandler.UserID(c)
	if !ok {
		return
	}

	page, limit := pageParams(c)
	result, err := h.processor.ListReferralsForAffiliate(ctx, userID, page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleListReferrals handles GET /api/admin/referrals
func (h *Handler) HandleListReferrals(c *gin.Context) {
	ctx := c.Request.Context()

	page, limit := pageParams(c)
	result, err := h.processor.ListReferrals(ctx, page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
