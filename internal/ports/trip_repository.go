package ports

import (
	"context"
	"errors"

	"trip-log-service/internal/domain"
)

var ErrTripNotFound = errors.New("trip not found")

// Port: a boundary for storing and retrieving planned trips.
type TripRepository interface {
	// Persist the trip with its plan and log days. TripID and CreatedAt are
	// assigned by the store and written back to trip.
	CreateTrip(ctx context.Context, trip *domain.Trip) error
	// Return the trip or ErrTripNotFound.
	GetTrip(ctx context.Context, id int64) (*domain.Trip, error)
	// Return all trips, newest first.
	ListTrips(ctx context.Context) ([]*domain.Trip, error)
}
