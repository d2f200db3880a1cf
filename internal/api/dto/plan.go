package dto

// PlanRequest is the body shared by plan previews and trip creation.
// CurrentCycleHours is a pointer so a missing value can be told apart from 0.
type PlanRequest struct {
	CurrentLocation   string   `json:"current_location"`
	PickupLocation    string   `json:"pickup_location"`
	DropoffLocation   string   `json:"dropoff_location"`
	CurrentCycleHours *float64 `json:"current_cycle_hours"`
	// YYYY-MM-DD; empty means today.
	StartDate string `json:"start_date"`
}

type CityResponse struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}
