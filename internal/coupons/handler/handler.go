package handler

import (
	"net/http"

	"storefront-affiliates/internal/apierrors"
	"storefront-affiliates/internal/coupons/processor"
	"storefront-affiliates/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CouponProcessor
	logger    *observability.Logger
}

func New(processor processor.CouponProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ResolveCouponQuery represents the checkout resolution query string
type ResolveCouponQuery struct {
	Plan string `form:"plan" binding:"required,oneof=test business pro"`
}

// HandleResolveCoupon returns the discount a code grants for a plan
func (h *Handler) HandleResolveCoupon(c *gin.Context) {
	ctx := c.Request.Context()

	var query ResolveCouponQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	resolved, err := h.processor.Resolve(ctx, c.Param("code"), query.Plan)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolved)
}

// HandleBindAffiliateCoupon (re)binds the canonical coupon of an affiliate
func (h *Handler) HandleBindAffiliateCoupon(c *gin.Context) {
	ctx := c.Request.Context()

	coupon, err := h.processor.BindCouponForUsername(ctx, c.Param("username"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, coupon)
}
