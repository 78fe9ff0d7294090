package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/roofworks/exterior-cleaners-api/internal/domain/entity"
)

const tierListKey = "pricing:tiers"

// TierCache caches the pricing tier catalog in Redis. The catalog is
// read-mostly seed data, so a short TTL is enough; there is no explicit
// invalidation path.
type TierCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTierCache connects to Redis and returns a tier cache.
func NewTierCache(addr, password string, db int, ttl time.Duration) (*TierCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &TierCache{rdb: rdb, ttl: ttl}, nil
}

// GetTiers returns the cached tier list, or (nil, nil) on a cache miss.
func (c *TierCache) GetTiers(ctx context.Context) ([]entity.PricingTier, error) {
	val, err := c.rdb.Get(ctx, tierListKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached tiers: %w", err)
	}

	var tiers []entity.PricingTier
	if err := json.Unmarshal([]byte(val), &tiers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached tiers: %w", err)
	}

	return tiers, nil
}

// SetTiers stores the tier list with the configured TTL.
func (c *TierCache) SetTiers(ctx context.Context, tiers []entity.PricingTier) error {
	data, err := json.Marshal(tiers)
	if err != nil {
		return fmt.Errorf("failed to marshal tiers: %w", err)
	}

	return c.rdb.Set(ctx, tierListKey, data, c.ttl).Err()
}

// Close closes the Redis connection.
func (c *TierCache) Close() error {
	return c.rdb.Close()
}
