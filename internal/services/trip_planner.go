package services

import (
	"math"

	"trip-log-service/internal/domain"
	"trip-log-service/internal/ports"
)

const (
	FuelStopIntervalMiles = 1000.0
	// Advisory rest marker, emitted for every plan.
	RestStopHour = 8.0
)

// PlanTrip builds the route summary and duty log for a trip.
//
// Unknown place names never fail: the route degrades to zero distance, an
// empty polyline and a single day planned on the fallback driving time.
// PlanTrip is a pure function of its inputs and safe for concurrent use.
func PlanTrip(
	req domain.TripRequest,
	places ports.Gazetteer,
	estimator ports.DistanceEstimator,
) *domain.RoutePlan {
	polyline := []domain.Coordinates{}
	distanceMiles := 0.0

	start, okStart := places.Lookup(req.PickupLocation)
	end, okEnd := places.Lookup(req.DropoffLocation)
	if okStart && okEnd {
		distanceMiles = estimator.EstimateMiles(start, end)
		// Also catches NaN.
		if !(distanceMiles > 0) {
			distanceMiles = 0
		}
	}
	if distanceMiles > 0 {
		polyline = []domain.Coordinates{start, end}
	}

	drivingHoursTotal := DrivingHours(distanceMiles)

	durationHours := drivingHoursTotal
	if distanceMiles > 0 {
		durationHours += PickupHours + DropoffHours
	}

	return &domain.RoutePlan{
		Polyline:      polyline,
		DistanceMiles: roundTenth(distanceMiles),
		DurationHours: roundTenth(durationHours),
		Stops:         PlanStops(distanceMiles),
		Logs:          ScheduleDutyDays(distanceMiles, drivingHoursTotal, req.CurrentCycleHours, req.StartDate),
	}
}

// DrivingHours converts a distance to driving time at the average highway
// speed, falling back to a fixed day of driving when the distance is unknown.
func DrivingHours(distanceMiles float64) float64 {
	if distanceMiles > 0 {
		return distanceMiles / AverageSpeedMPH
	}
	return FallbackDriveHours
}

// PlanStops places a fuel stop at every whole multiple of the fuel interval
// strictly inside the trip, followed by the advisory rest marker.
func PlanStops(distanceMiles float64) []domain.Stop {
	stops := []domain.Stop{}
	for mile := FuelStopIntervalMiles; mile < distanceMiles; mile += FuelStopIntervalMiles {
		stops = append(stops, domain.FuelStop(mile))
	}
	return append(stops, domain.RestStop(RestStopHour))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
