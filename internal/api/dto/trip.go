package dto

import (
	"time"

	"trip-log-service/internal/platform/planjson"
)

type CreateTripRequest struct {
	DriverName string `json:"driver_name"`
	PlanRequest
}

type LogDayResponse struct {
	Date         string             `json:"date"`
	SegmentsJSON []planjson.Segment `json:"segments_json"`
}

type TripResponse struct {
	ID                int64            `json:"id"`
	DriverName        string           `json:"driver_name"`
	CreatedAt         time.Time        `json:"created_at"`
	CurrentLocation   string           `json:"current_location"`
	PickupLocation    string           `json:"pickup_location"`
	DropoffLocation   string           `json:"dropoff_location"`
	CurrentCycleHours float64          `json:"current_cycle_hours"`
	PlanJSON          planjson.Plan    `json:"plan_json"`
	LogDays           []LogDayResponse `json:"log_days"`
}
