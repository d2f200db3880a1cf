package cache

import (
	"context"
	"testing"
	"time"

	"trip-log-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*RedisPlanCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisPlanCache(client), mr
}

func testPlan() *domain.RoutePlan {
	return &domain.RoutePlan{
		Polyline:      []domain.Coordinates{{Lat: 41.8781, Lon: -87.6298}, {Lat: 32.7767, Lon: -96.797}},
		DistanceMiles: 802.4,
		DurationHours: 16.6,
		Stops:         []domain.Stop{domain.RestStop(8)},
		Logs: []domain.DayLog{{
			Date:     time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			Segments: []domain.DutySegment{{StartHour: 0, EndHour: 24, Lane: domain.LaneOff}},
		}},
	}
}

func TestRedisPlanCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	plan, ok, err := c.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || plan != nil {
		t.Fatalf("expected miss, got ok=%v plan=%v", ok, plan)
	}
}

func TestRedisPlanCachePutGet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "k1", testPlan(), time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}

	if !mr.Exists(planKeyPrefix + "k1") {
		t.Fatal("expected prefixed key in redis")
	}
	if ttl := mr.TTL(planKeyPrefix + "k1"); ttl != time.Hour {
		t.Fatalf("ttl = %v, want 1h", ttl)
	}

	plan, ok, err := c.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected hit")
	}
	if plan.DistanceMiles != 802.4 || plan.DurationHours != 16.6 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if len(plan.Logs) != 1 || plan.Logs[0].Segments[0].Lane != domain.LaneOff {
		t.Fatalf("unexpected logs: %+v", plan.Logs)
	}
}

func TestRedisPlanCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "k1", testPlan(), time.Minute); err != nil {
		t.Fatalf("put: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, ok, err := c.Get(ctx, "k1"); err != nil || ok {
		t.Fatalf("expected expired miss, got ok=%v err=%v", ok, err)
	}
}

func TestRedisPlanCacheCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t)

	if err := mr.Set(planKeyPrefix+"bad", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, _, err := c.Get(context.Background(), "bad"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestRedisPlanCacheRejectsEmptyKey(t *testing.T) {
	c, _ := newTestCache(t)

	if _, _, err := c.Get(context.Background(), " "); err == nil {
		t.Fatal("expected error for empty key on get")
	}
	if err := c.Put(context.Background(), "", testPlan(), time.Minute); err == nil {
		t.Fatal("expected error for empty key on put")
	}
}

func TestRedisPlanCacheUnavailable(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	if _, _, err := c.Get(context.Background(), "k1"); err == nil {
		t.Fatal("expected error when redis is down")
	}
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := OpenRedis(context.Background(), "redis://"+mr.Addr()+"/0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = client.Close()

	if _, err := OpenRedis(context.Background(), "not a url"); err == nil {
		t.Fatal("expected parse error")
	}
}
