package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strconv"
	"time"

	"trip-log-service/internal/domain"
	"trip-log-service/internal/platform/obs"
	"trip-log-service/internal/ports"

	"golang.org/x/sync/singleflight"
)

// Planner wraps PlanTrip with an optional memoization cache.
//
// Plans are deterministic for a given request, so cached results can be
// served as-is. Concurrent misses for the same request share one computation.
// Returned plans are shared and must be treated as read-only.
type Planner struct {
	places   ports.Gazetteer
	distance ports.DistanceEstimator
	cache    ports.PlanCache
	cacheTTL time.Duration
	group    singleflight.Group
}

// NewPlanner returns a Planner. cache may be nil to disable memoization.
func NewPlanner(
	places ports.Gazetteer,
	distance ports.DistanceEstimator,
	cache ports.PlanCache,
	cacheTTL time.Duration,
) *Planner {
	return &Planner{
		places:   places,
		distance: distance,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (p *Planner) Plan(ctx context.Context, req domain.TripRequest) (_ *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "planner.Plan")(&err)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	if p.cache == nil {
		return PlanTrip(req, p.places, p.distance), nil
	}

	key := PlanCacheKey(req)

	// Cache failures degrade to computing the plan; the cache is never authoritative.
	plan, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		log.Printf("req_id=%s plan cache get failed key=%s err=%v", obs.RequestID(ctx), key, err)
	} else if ok {
		return plan, nil
	}

	v, _, _ := p.group.Do(key, func() (any, error) {
		plan := PlanTrip(req, p.places, p.distance)
		if err := p.cache.Put(ctx, key, plan, p.cacheTTL); err != nil {
			log.Printf("req_id=%s plan cache put failed key=%s err=%v", obs.RequestID(ctx), key, err)
		}
		return plan, nil
	})

	return v.(*domain.RoutePlan), nil
}

// Places exposes the planner's gazetteer listing.
func (p *Planner) Places() []domain.Place {
	return p.places.Places()
}

// PlanCacheKey derives a stable key from every input that affects a plan.
// CurrentLocation is excluded because routing ignores it.
func PlanCacheKey(req domain.TripRequest) string {
	h := sha256.New()
	fmt.Fprintf(h, "v1\x00%s\x00%s\x00%s\x00%s",
		req.PickupLocation,
		req.DropoffLocation,
		strconv.FormatFloat(req.CurrentCycleHours, 'g', -1, 64),
		domain.DateOf(req.StartDate).Format(time.DateOnly),
	)
	return hex.EncodeToString(h.Sum(nil))
}
