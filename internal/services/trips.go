package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"trip-log-service/internal/domain"
	"trip-log-service/internal/platform/obs"
	"trip-log-service/internal/ports"
)

type tripPlanner interface {
	Plan(ctx context.Context, req domain.TripRequest) (*domain.RoutePlan, error)
}

type CreateTripRequest struct {
	DriverName        string
	CurrentLocation   string
	PickupLocation    string
	DropoffLocation   string
	CurrentCycleHours float64
	// Zero means the current date.
	StartDate time.Time
}

// TripService plans trips, stores them and announces them.
type TripService struct {
	planner   tripPlanner
	repo      ports.TripRepository
	publisher ports.TripEventPublisher
	now       func() time.Time
}

func NewTripService(planner tripPlanner, repo ports.TripRepository, publisher ports.TripEventPublisher) *TripService {
	return &TripService{
		planner:   planner,
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateTrip plans the trip from the requested start date, persists the
// trip with one log day per planned day and publishes a trip-planned event.
// A failed publish is logged; the stored trip is still returned.
func (s *TripService) CreateTrip(ctx context.Context, req CreateTripRequest) (_ *domain.Trip, err error) {
	defer obs.Time(ctx, "trips.CreateTrip")(&err)

	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = s.now()
	}

	tripReq := domain.TripRequest{
		CurrentLocation:   strings.TrimSpace(req.CurrentLocation),
		PickupLocation:    strings.TrimSpace(req.PickupLocation),
		DropoffLocation:   strings.TrimSpace(req.DropoffLocation),
		CurrentCycleHours: req.CurrentCycleHours,
		StartDate:         domain.DateOf(startDate),
	}

	plan, err := s.planner.Plan(ctx, tripReq)
	if err != nil {
		return nil, fmt.Errorf("create trip: plan: %w", err)
	}

	trip := &domain.Trip{
		DriverName:        strings.TrimSpace(req.DriverName),
		CurrentLocation:   tripReq.CurrentLocation,
		PickupLocation:    tripReq.PickupLocation,
		DropoffLocation:   tripReq.DropoffLocation,
		CurrentCycleHours: tripReq.CurrentCycleHours,
		Plan:              plan,
	}

	if err := s.repo.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("create trip: store: %w", err)
	}

	if err := s.publisher.PublishTripPlanned(ctx, trip); err != nil {
		log.Printf("req_id=%s publish trip planned failed trip_id=%d err=%v", obs.RequestID(ctx), trip.TripID, err)
	}

	return trip, nil
}

func (s *TripService) GetTrip(ctx context.Context, id int64) (_ *domain.Trip, err error) {
	defer obs.Time(ctx, "trips.GetTrip")(&err)

	trip, err := s.repo.GetTrip(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trip %d: %w", id, err)
	}
	return trip, nil
}

func (s *TripService) ListTrips(ctx context.Context) (_ []*domain.Trip, err error) {
	defer obs.Time(ctx, "trips.ListTrips")(&err)

	trips, err := s.repo.ListTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}
