package ratelimit

import (
	"fmt"
	"strconv"

	"storefront-affiliates/internal/apierrors"
	"storefront-affiliates/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits each client IP to limit requests per minute on the
// routes it guards. Redis failures let the request through.
func (s *Service) Middleware(scope string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := observability.GetRealClientIP(c)
		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "rate_limit_scope", Value: scope},
			observability.Field{Key: "rate_limit_rpm", Value: limit},
		)

		result, err := s.CheckRateLimit(ctx, scope, client, limit)
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			c.Header("Retry-After", strconv.Itoa((result.RetryAfterMs+999)/1000))
			s.logger.Warn(ctx, fmt.Sprintf("rate limit exceeded, retry after %dms", result.RetryAfterMs))
			apierrors.RespondWithError(c, apierrors.TooManyRequests("Too many requests, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
