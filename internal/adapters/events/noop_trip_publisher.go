package events

import (
	"context"

	"trip-log-service/internal/domain"
	"trip-log-service/internal/ports"
)

var _ ports.TripEventPublisher = NoopTripPublisher{}

// NoopTripPublisher drops events; used when no broker is configured.
type NoopTripPublisher struct{}

func (NoopTripPublisher) PublishTripPlanned(context.Context, *domain.Trip) error { return nil }
