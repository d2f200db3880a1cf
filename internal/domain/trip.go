package domain

import "time"

// Inputs to the trip planner. CurrentLocation is recorded but does not
// affect the route, which always runs pickup -> dropoff.
type TripRequest struct {
	CurrentLocation   string
	PickupLocation    string
	DropoffLocation   string
	CurrentCycleHours float64
	StartDate         time.Time
}

// A planned trip as persisted by the service. LogDays holds the stored
// per-day log records, one per planned day.
type Trip struct {
	TripID            int64
	DriverName        string
	CreatedAt         time.Time
	CurrentLocation   string
	PickupLocation    string
	DropoffLocation   string
	CurrentCycleHours float64
	Plan              *RoutePlan
	LogDays           []DayLog
}

// Truncate a time to its calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
