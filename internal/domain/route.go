package domain

type StopType string

const (
	StopFuel StopType = "fuel"
	StopRest StopType = "rest"
)

// Represents a waypoint marker along a planned route.
// Fuel stops carry a cumulative mile marker, rest markers an hour of day.
// Exactly one of Mile and Hour is set.
type Stop struct {
	Type StopType
	Mile *float64
	Hour *float64
}

func FuelStop(mile float64) Stop { return Stop{Type: StopFuel, Mile: &mile} }

func RestStop(hour float64) Stop { return Stop{Type: StopRest, Hour: &hour} }

// Represents the planned route and duty schedule for a single trip.
// A RoutePlan is the output of the trip planner and is immutable planning data.
// Polyline is empty unless both endpoints resolved to distinct points.
type RoutePlan struct {
	Polyline      []Coordinates
	DistanceMiles float64
	DurationHours float64
	Stops         []Stop
	Logs          []DayLog
}
