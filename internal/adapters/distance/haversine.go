package distance

import (
	"math"

	"trip-log-service/internal/domain"
	"trip-log-service/internal/ports"
)

const (
	earthRadiusKm = 6371.0
	milesPerKm    = 0.621371
)

var _ ports.DistanceEstimator = HaversineEstimator{}

// EstimateDistanceMiles returns the great-circle distance between a and b.
//
// The haversine term is clamped to 1 before asin so that rounding error on
// identical or near-antipodal points cannot leave the function's domain.
func EstimateDistanceMiles(a, b domain.Coordinates) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dlat := radians(b.Lat - a.Lat)
	dlon := radians(b.Lon - a.Lon)

	h := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Min(1.0, math.Sqrt(h)))

	return earthRadiusKm * c * milesPerKm
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// HaversineEstimator implements DistanceEstimator with straight-line distance.
// No road network is consulted.
type HaversineEstimator struct{}

func NewHaversineEstimator() HaversineEstimator { return HaversineEstimator{} }

func (HaversineEstimator) EstimateMiles(a, b domain.Coordinates) float64 {
	return EstimateDistanceMiles(a, b)
}
