package ports

import (
	"context"
	"time"

	"trip-log-service/internal/domain"
)

// Memoization store for computed route plans keyed by planner input.
type PlanCache interface {
	// Return the cached plan and whether it was found.
	Get(ctx context.Context, key string) (*domain.RoutePlan, bool, error)
	Put(ctx context.Context, key string, plan *domain.RoutePlan, ttl time.Duration) error
}
