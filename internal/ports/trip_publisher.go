package ports

import (
	"context"

	"trip-log-service/internal/domain"
)

// Outbound notification that a trip has been planned and stored.
type TripEventPublisher interface {
	PublishTripPlanned(ctx context.Context, trip *domain.Trip) error
}
