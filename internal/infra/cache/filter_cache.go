package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"souq/internal/domain/entity"
	"souq/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Cache key for resolved category filter sets: category_filters:{category_id}
const keyCategoryFilters = "category_filters:%s"

// redisFilterCache implements service.FilterCache on Redis. A nil client
// turns every operation into a miss, so the resolver works without Redis.
type redisFilterCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFilterCache is the constructor for redisFilterCache.
func NewFilterCache(client *redis.Client, ttl time.Duration) service.FilterCache {
	return &redisFilterCache{
		client: client,
		ttl:    ttl,
	}
}

// GetFilters returns the cached filter set for a category, if present.
func (c *redisFilterCache) GetFilters(ctx context.Context, categoryID uuid.UUID) ([]entity.AttributeDefinition, bool, error) {
	if c.client == nil {
		return nil, false, nil
	}

	data, err := c.client.Get(ctx, filterKey(categoryID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get failed")
	}

	var filters []entity.AttributeDefinition
	if err := json.Unmarshal(data, &filters); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode cached filters")
	}

	return filters, true, nil
}

// SetFilters stores the resolved filter set with the configured TTL. The TTL
// also bounds how long a descendant category can serve filters resolved
// before an ancestor's definitions changed.
func (c *redisFilterCache) SetFilters(ctx context.Context, categoryID uuid.UUID, filters []entity.AttributeDefinition) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(filters)
	if err != nil {
		return errors.Wrap(err, "failed to encode filters")
	}

	if err := c.client.Set(ctx, filterKey(categoryID), data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set failed")
	}

	return nil
}

// InvalidateFilters drops the cached set for a category.
func (c *redisFilterCache) InvalidateFilters(ctx context.Context, categoryID uuid.UUID) error {
	if c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, filterKey(categoryID)).Err(); err != nil {
		return errors.Wrap(err, "redis del failed")
	}

	return nil
}

func filterKey(categoryID uuid.UUID) string {
	return fmt.Sprintf(keyCategoryFilters, categoryID)
}
