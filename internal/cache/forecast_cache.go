package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartshelfx/backend-go/internal/config"
	"github.com/smartshelfx/backend-go/internal/forecast"
)

const localForecastKeyPrefix = "forecast:local"

// ForecastCache caches local moving-average forecast results per product.
// Results are invalidated whenever an orchestration run writes a new
// forecast row for the product.
type ForecastCache interface {
	Get(ctx context.Context, productID int64) (*forecast.Result, bool, error)
	Set(ctx context.Context, productID int64, result *forecast.Result) error
	Invalidate(ctx context.Context, productID int64) error
}

type redisForecastCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopForecastCache struct{}

func NewForecastCache(cfg config.CacheConfig) (ForecastCache, error) {
	if !cfg.Enabled {
		return &noopForecastCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisForecastCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopForecastCache() ForecastCache {
	return &noopForecastCache{}
}

func (c *redisForecastCache) Get(ctx context.Context, productID int64) (*forecast.Result, bool, error) {
	key := buildLocalForecastKey(productID)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var result forecast.Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false, fmt.Errorf("decode forecast cache: %w", err)
	}

	return &result, true, nil
}

func (c *redisForecastCache) Set(ctx context.Context, productID int64, result *forecast.Result) error {
	key := buildLocalForecastKey(productID)
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode forecast cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisForecastCache) Invalidate(ctx context.Context, productID int64) error {
	if err := c.client.Del(ctx, buildLocalForecastKey(productID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func buildLocalForecastKey(productID int64) string {
	return fmt.Sprintf("%s:%d", localForecastKeyPrefix, productID)
}

func (c *noopForecastCache) Get(ctx context.Context, productID int64) (*forecast.Result, bool, error) {
	return nil, false, nil
}

func (c *noopForecastCache) Set(ctx context.Context, productID int64, result *forecast.Result) error {
	return nil
}

func (c *noopForecastCache) Invalidate(ctx context.Context, productID int64) error {
	return nil
}
