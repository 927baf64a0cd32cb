package balance

//go:generate go run go.uber.org/mock/mockgen@latest -source=balance.go -destination=mocks_test.go -package=balance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"storefront-affiliates/internal/clients/redis"
	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/store"

	"github.com/google/uuid"
)

const (
	cacheTTL = 60 * time.Second
	// generationTTL must outlive any value cached under an older generation.
	generationTTL     = 10 * cacheTTL
	initialGeneration = "0"
)

// LedgerStore defines the database operations required by Calculator
type LedgerStore interface {
	GetLedgerTotals(ctx context.Context, affiliateID uuid.UUID) (store.LedgerTotals, error)
}

// Cache is the read-through cache backing balance reads
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	IsEnabled() bool
}

// Compute returns completed minus reserved, clamped at zero.
func Compute(completed, reserved int64) int64 {
	if completed <= reserved {
		return 0
	}
	return completed - reserved
}

// FromTotals applies Compute to ledger totals.
func FromTotals(totals store.LedgerTotals) int64 {
	return Compute(totals.Completed, totals.Reserved)
}

// Calculator derives available balances from the ledger
type Calculator struct {
	store   LedgerStore
	cache   Cache
	metrics *observability.Metrics
	logger  *observability.Logger
}

func New(store LedgerStore, cache Cache, metrics *observability.Metrics, logger *observability.Logger) *Calculator {
	return &Calculator{
		store:   store,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

func generationKey(affiliateID uuid.UUID) string {
	return "affiliate:balance:gen:" + affiliateID.String()
}

// cacheKey scopes a cached balance to a generation. Invalidate moves the
// affiliate to a new generation, so a read that started before the ledger
// write can only populate a key no later read looks at.
func cacheKey(affiliateID uuid.UUID, generation string) string {
	return "affiliate:balance:" + affiliateID.String() + ":" + generation
}

// AvailableBalance computes the balance straight from the ledger.
func (c *Calculator) AvailableBalance(ctx context.Context, affiliateID uuid.UUID) (int64, error) {
	totals, err := c.store.GetLedgerTotals(ctx, affiliateID)
	if err != nil {
		return 0, fmt.Errorf("failed to get ledger totals: %w", err)
	}
	return FromTotals(totals), nil
}

// CachedAvailableBalance serves read endpoints. Cache failures fall back to
// the ledger and are never returned.
func (c *Calculator) CachedAvailableBalance(ctx context.Context, affiliateID uuid.UUID) (int64, error) {
	if c.cache == nil || !c.cache.IsEnabled() {
		return c.AvailableBalance(ctx, affiliateID)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: affiliateID.String()})

	generation, err := c.cache.Get(ctx, generationKey(affiliateID))
	switch {
	case errors.Is(err, redis.ErrCacheMiss):
		generation = initialGeneration
	case err != nil:
		c.logger.Warn(ctx, fmt.Sprintf("balance cache generation read failed: %v", err))
		return c.AvailableBalance(ctx, affiliateID)
	}
	key := cacheKey(affiliateID, generation)

	cached, err := c.cache.Get(ctx, key)
	if err == nil {
		if value, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
			c.metrics.CacheHit()
			return value, nil
		}
	} else if !errors.Is(err, redis.ErrCacheMiss) {
		c.logger.Warn(ctx, fmt.Sprintf("balance cache read failed: %v", err))
	}
	c.metrics.CacheMiss()

	value, err := c.AvailableBalance(ctx, affiliateID)
	if err != nil {
		return 0, err
	}

	if err := c.cache.Set(ctx, key, strconv.FormatInt(value, 10), cacheTTL); err != nil {
		c.logger.Warn(ctx, fmt.Sprintf("balance cache write failed: %v", err))
	}
	return value, nil
}

// Invalidate retires the cached balance after a ledger write.
func (c *Calculator) Invalidate(ctx context.Context, affiliateID uuid.UUID) {
	if c.cache == nil || !c.cache.IsEnabled() {
		return
	}
	if err := c.cache.Set(ctx, generationKey(affiliateID), uuid.NewString(), generationTTL); err != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: affiliateID.String()})
		c.logger.Warn(ctx, fmt.Sprintf("balance cache invalidation failed: %v", err))
	}
}
