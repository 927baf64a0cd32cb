package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redisclient "storefront-affiliates/internal/clients/redis"
	"storefront-affiliates/internal/observability"

	"github.com/redis/go-redis/v9"
)

const window = time.Minute

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service limits requests per client within a sliding one minute window
type Service struct {
	redis  *redisclient.Client
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a new rate limiting service. Without Redis every
// request is allowed.
func NewService(redis *redisclient.Client, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		logger: logger,
		now:    time.Now,
	}
}

func key(scope, client string) string {
	return fmt.Sprintf("rl:%s:%s", scope, client)
}

// CheckRateLimit records a request from client against scope and reports
// whether it fits within limit.
func (s *Service) CheckRateLimit(ctx context.Context, scope, client string, limit int) (RateLimitResult, error) {
	now := s.now()
	if !s.redis.IsEnabled() || limit <= 0 {
		return RateLimitResult{Allowed: true, Limit: limit, Remaining: limit, ResetAt: now.Add(window)}, nil
	}

	// Sorted set members are request timestamps scored in milliseconds
	k := key(scope, client)
	rdb := s.redis.GetClient()
	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-window).UnixMilli()

	if err := rdb.ZRemRangeByScore(ctx, k, "0", strconv.FormatInt(windowStartMs, 10)).Err(); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := rdb.ZCard(ctx, k).Result()
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= limit {
		resetAt := now.Add(window)
		oldest, err := rdb.ZRangeWithScores(ctx, k, 0, 0).Result()
		if err == nil && len(oldest) == 1 {
			resetAt = time.UnixMilli(int64(oldest[0].Score)).In(now.Location()).Add(window)
		}
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return RateLimitResult{
			Allowed:      false,
			Limit:        limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	member := fmt.Sprintf("%d-%d", nowMs, count)
	if err := rdb.ZAdd(ctx, k, redis.Z{Score: float64(nowMs), Member: member}).Err(); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to add request: %w", err)
	}

	if err := rdb.Expire(ctx, k, 2*window).Err(); err != nil {
		s.logger.Warn(ctx, fmt.Sprintf("failed to set expiration on rate limit key: %v", err))
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}
