// internal/workers/matchmaking/compute-guna-milan/cache.go
package computegunamilan

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"guna-milan-workers/internal/gunamilan"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "gunamilan:report:"

// ReportCache memoizes results by report ID. A miss is (nil, false, nil).
type ReportCache interface {
	Get(ctx context.Context, reportID string) (*gunamilan.Result, bool, error)
	Set(ctx context.Context, reportID string, result *gunamilan.Result) error
}

type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisReportCache(client *redis.Client, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{client: client, ttl: ttl}
}

func cacheKey(reportID string) string {
	return cacheKeyPrefix + reportID
}

func (c *RedisReportCache) Get(ctx context.Context, reportID string) (*gunamilan.Result, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(reportID)).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var result gunamilan.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false, err
	}
	return &result, true, nil
}

func (c *RedisReportCache) Set(ctx context.Context, reportID string, result *gunamilan.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(reportID), data, c.ttl).Err()
}
