package ports

import "trip-log-service/internal/domain"

// Contract for estimating driving distance between two coordinates.
type DistanceEstimator interface {
	// Return the distance in miles; never negative.
	EstimateMiles(a, b domain.Coordinates) float64
}
