package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"trip-log-service/internal/domain"
	"trip-log-service/internal/platform/obs"
	"trip-log-service/internal/platform/planjson"
	"trip-log-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

const planKeyPrefix = "trip-plan:"

var _ ports.PlanCache = (*RedisPlanCache)(nil)

// RedisPlanCache stores route plans as JSON documents in Redis.
type RedisPlanCache struct {
	Client redis.UniversalClient
}

func NewRedisPlanCache(client redis.UniversalClient) *RedisPlanCache {
	return &RedisPlanCache{Client: client}
}

// Fetch a cached plan. A missing key is reported as not found, not as an error.
func (c *RedisPlanCache) Get(ctx context.Context, key string) (_ *domain.RoutePlan, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("plan cache: client is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get plan cache: key must not be empty")
	}

	b, err := c.Client.Get(ctx, planKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: redis get: %w", err)
	}

	var doc planjson.Plan
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, false, fmt.Errorf("get plan cache: decode %q: %w", key, err)
	}

	plan, err := doc.ToDomain()
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: %w", err)
	}

	return plan, true, nil
}

// Store a plan under key for ttl.
func (c *RedisPlanCache) Put(ctx context.Context, key string, plan *domain.RoutePlan, ttl time.Duration) (err error) {
	defer obs.Time(ctx, "plan.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("plan cache: client is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("put plan cache: key must not be empty")
	}
	if plan == nil {
		return errors.New("put plan cache: plan must not be nil")
	}

	b, err := json.Marshal(planjson.FromDomain(plan))
	if err != nil {
		return fmt.Errorf("put plan cache: encode: %w", err)
	}

	if err := c.Client.Set(ctx, planKeyPrefix+key, b, ttl).Err(); err != nil {
		return fmt.Errorf("put plan cache: redis set: %w", err)
	}

	return nil
}

// Open a Redis client from a redis:// URL and verify it responds.
func OpenRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("open redis: parse url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("open redis: ping: %w", err)
	}

	return client, nil
}
