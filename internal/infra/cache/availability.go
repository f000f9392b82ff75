package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bookwise/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// AvailabilityCache memoizes month availability in redis. Each cached entry
// is registered in a per-provider index set so a booking write can drop every
// month that provider appears in, without scanning the keyspace.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func datesKey(serviceID, providerID int64, month string) string {
	return fmt.Sprintf("availability:dates:%d:%d:%s", providerID, serviceID, month)
}

func providerIndexKey(providerID int64) string {
	return fmt.Sprintf("availability:provider:%d", providerID)
}

func (c *AvailabilityCache) GetDates(ctx context.Context, serviceID, providerID int64, month string) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, datesKey(serviceID, providerID, month)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "availability cache get")
	}

	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		return nil, false, errs.Wrap(err, "availability cache decode")
	}
	return dates, true, nil
}

func (c *AvailabilityCache) SetDates(ctx context.Context, serviceID, providerID int64, month string, dates []string) error {
	raw, err := json.Marshal(dates)
	if err != nil {
		return errs.Wrap(err, "availability cache encode")
	}

	key := datesKey(serviceID, providerID, month)
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, raw, c.ttl)
	pipe.SAdd(ctx, providerIndexKey(providerID), key)
	pipe.Expire(ctx, providerIndexKey(providerID), c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errs.Wrap(err, "availability cache set")
	}
	return nil
}

func (c *AvailabilityCache) InvalidateProvider(ctx context.Context, providerID int64) error {
	indexKey := providerIndexKey(providerID)
	keys, err := c.client.SMembers(ctx, indexKey).Result()
	if err != nil && err != redis.Nil {
		return errs.Wrap(err, "availability cache index read")
	}

	keys = append(keys, indexKey)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "availability cache invalidate")
	}
	return nil
}
