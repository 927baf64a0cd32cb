package api

import (
	"net/http"

	affiliatesHandler "storefront-affiliates/internal/affiliates/handler"
	authHandler "storefront-affiliates/internal/auth/handler"
	couponsHandler "storefront-affiliates/internal/coupons/handler"
	billingHandler "storefront-affiliates/internal/money/billing/handler"
	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/ratelimit"
	referralHandler "storefront-affiliates/internal/referral/handler"
	"storefront-affiliates/internal/store"
	withdrawalsHandler "storefront-affiliates/internal/withdrawals/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router             *gin.RouterGroup
	authHandler        authHandler.Handler
	affiliatesHandler  affiliatesHandler.Handler
	couponsHandler     couponsHandler.Handler
	referralHandler    referralHandler.Handler
	withdrawalsHandler withdrawalsHandler.Handler
	billingHandler     billingHandler.Handler
	metrics            *observability.Metrics
	rateLimiter        *ratelimit.Service
	rateLimitRPM       int
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	affiliatesHandler affiliatesHandler.Handler,
	couponsHandler couponsHandler.Handler,
	referralHandler referralHandler.Handler,
	withdrawalsHandler withdrawalsHandler.Handler,
	billingHandler billingHandler.Handler,
	metrics *observability.Metrics,
	rateLimiter *ratelimit.Service,
	rateLimitRPM int,
) API {
	return API{
		router:             router,
		authHandler:        authHandler,
		affiliatesHandler:  affiliatesHandler,
		couponsHandler:     couponsHandler,
		referralHandler:    referralHandler,
		withdrawalsHandler: withdrawalsHandler,
		billingHandler:     billingHandler,
		metrics:            metrics,
		rateLimiter:        rateLimiter,
		rateLimitRPM:       rateLimitRPM,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(a.metrics.Handler()))

	apiGroup := a.router.Group("/api")
	{
		apiGroup.POST("/affiliates/signup", a.rateLimiter.Middleware("signup", a.rateLimitRPM), a.affiliatesHandler.HandleSignup)
		apiGroup.POST("/auth/login", a.rateLimiter.Middleware("login", a.rateLimitRPM), a.authHandler.HandleEmailLogin)
		apiGroup.GET("/coupons/:code/resolve", a.couponsHandler.HandleResolveCoupon)
		apiGroup.POST("/billing/webhook", a.billingHandler.HandleWebhook)
	}

	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	{
		protectedGroup.GET("/user", a.authHandler.GetUserInfo)

		affiliateGroup := protectedGroup.Group("/affiliate", authHandler.RequireRole(store.UserRoleAffiliate))
		affiliateGroup.GET("/me", a.affiliatesHandler.HandleGetProfile)
		affiliateGroup.PUT("/bank-details", a.affiliatesHandler.HandleUpdateBankDetails)
		affiliateGroup.POST("/withdrawals", a.withdrawalsHandler.HandleRequestWithdrawal)
		affiliateGroup.GET("/withdrawals", a.withdrawalsHandler.HandleListMyWithdrawals)
		affiliateGroup.GET("/referrals", a.referralHandler.HandleListMyReferrals)
	}

	adminGroup := apiGroup.Group("/admin", a.authHandler.HandleJWTMiddleware, authHandler.RequireRole(store.UserRoleAdmin))
	{
		adminGroup.GET("/affiliates", a.affiliatesHandler.HandleListAffiliates)
		adminGroup.PATCH("/affiliates/:id/status", a.affiliatesHandler.HandleUpdateStatus)
		adminGroup.POST("/affiliates/:username/coupon", a.couponsHandler.HandleBindAffiliateCoupon)
		adminGroup.GET("/withdrawals", a.withdrawalsHandler.HandleListWithdrawals)
		adminGroup.PATCH("/withdrawals/:id", a.withdrawalsHandler.HandleUpdateWithdrawalStatus)
		adminGroup.GET("/referrals", a.referralHandler.HandleListReferrals)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
