package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trip-log-service/internal/domain"
	"trip-log-service/internal/platform/obs"
	"trip-log-service/internal/platform/planjson"
	"trip-log-service/internal/ports"
)

var _ ports.TripRepository = (*SQLTripRepository)(nil)

// PostgreSQL-backed implementation of the TripRepository port.
type SQLTripRepository struct{ DB *sql.DB }

func NewSQLTripRepository(db *sql.DB) *SQLTripRepository {
	return &SQLTripRepository{DB: db}
}

// Insert the trip and upsert one log_days row per planned day in a single
// transaction.
func (s *SQLTripRepository) CreateTrip(ctx context.Context, trip *domain.Trip) (err error) {
	defer obs.Time(ctx, "trips.repo.CreateTrip")(&err)

	if s.DB == nil {
		return errors.New("sql trip repository: DB is nil")
	}
	if trip == nil || trip.Plan == nil {
		return errors.New("create trip: trip and plan must be non-nil")
	}

	planDoc, err := json.Marshal(planjson.FromDomain(trip.Plan))
	if err != nil {
		return fmt.Errorf("create trip: encode plan: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("create trip: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertTripQuery := `
	INSERT INTO trips (
		driver_name,
		current_location,
		pickup_location,
		dropoff_location,
		current_cycle_hours,
		plan_json
	)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING trip_id, created_at;
	`

	var id int64
	var createdAt time.Time
	err = tx.QueryRowContext(ctx, insertTripQuery,
		trip.DriverName,
		trip.CurrentLocation,
		trip.PickupLocation,
		trip.DropoffLocation,
		trip.CurrentCycleHours,
		string(planDoc),
	).Scan(&id, &createdAt)
	if err != nil {
		return fmt.Errorf("create trip: insert trip: %w", err)
	}

	upsertLogDayQuery := `
	INSERT INTO log_days (
		trip_id,
		log_date,
		segments_json
	)
	VALUES ($1, $2, $3)
	ON CONFLICT (trip_id, log_date)
	DO UPDATE SET segments_json = EXCLUDED.segments_json;
	`

	for _, day := range trip.Plan.Logs {
		segments, err := json.Marshal(planjson.FromSegments(day.Segments))
		if err != nil {
			return fmt.Errorf("create trip: encode segments for %s: %w", day.Date.Format(time.DateOnly), err)
		}

		if _, err := tx.ExecContext(ctx, upsertLogDayQuery, id, day.Date, string(segments)); err != nil {
			return fmt.Errorf("create trip: upsert log day %s: %w", day.Date.Format(time.DateOnly), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create trip: commit tx: %w", err)
	}

	trip.TripID = id
	trip.CreatedAt = createdAt
	trip.LogDays = trip.Plan.Logs

	return nil
}

// Return a single trip with its log days.
func (s *SQLTripRepository) GetTrip(ctx context.Context, id int64) (_ *domain.Trip, err error) {
	defer obs.Time(ctx, "trips.repo.GetTrip")(&err)

	if s.DB == nil {
		return nil, errors.New("sql trip repository: DB is nil")
	}

	query := `
	SELECT
		trip_id,
		driver_name,
		created_at,
		current_location,
		pickup_location,
		dropoff_location,
		current_cycle_hours,
		plan_json
	FROM trips
	WHERE trip_id = $1;
	`

	trip, err := scanTrip(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	logDaysQuery := `
	SELECT
		trip_id,
		log_date,
		segments_json
	FROM log_days
	WHERE trip_id = $1
	ORDER BY log_date;
	`

	byTrip, err := s.queryLogDays(ctx, logDaysQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}
	trip.LogDays = byTrip[id]

	return trip, nil
}

// Return all trips, newest first, with their log days.
func (s *SQLTripRepository) ListTrips(ctx context.Context) (_ []*domain.Trip, err error) {
	defer obs.Time(ctx, "trips.repo.ListTrips")(&err)

	if s.DB == nil {
		return nil, errors.New("sql trip repository: DB is nil")
	}

	query := `
	SELECT
		trip_id,
		driver_name,
		created_at,
		current_location,
		pickup_location,
		dropoff_location,
		current_cycle_hours,
		plan_json
	FROM trips
	ORDER BY created_at DESC, trip_id DESC;
	`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0, 32)
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("list trips: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	if len(trips) == 0 {
		return trips, nil
	}

	logDaysQuery := `
	SELECT
		trip_id,
		log_date,
		segments_json
	FROM log_days
	ORDER BY trip_id, log_date;
	`

	byTrip, err := s.queryLogDays(ctx, logDaysQuery)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	for _, trip := range trips {
		trip.LogDays = byTrip[trip.TripID]
	}

	return trips, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (*domain.Trip, error) {
	var trip domain.Trip
	var planDoc []byte

	err := row.Scan(
		&trip.TripID,
		&trip.DriverName,
		&trip.CreatedAt,
		&trip.CurrentLocation,
		&trip.PickupLocation,
		&trip.DropoffLocation,
		&trip.CurrentCycleHours,
		&planDoc,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan trip: %w", err)
	}

	var doc planjson.Plan
	if err := json.Unmarshal(planDoc, &doc); err != nil {
		return nil, fmt.Errorf("scan trip %d: decode plan: %w", trip.TripID, err)
	}

	plan, err := doc.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("scan trip %d: %w", trip.TripID, err)
	}
	trip.Plan = plan

	return &trip, nil
}

func (s *SQLTripRepository) queryLogDays(ctx context.Context, query string, args ...any) (map[int64][]domain.DayLog, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query log_days table: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]domain.DayLog)
	for rows.Next() {
		var tripID int64
		var date time.Time
		var segmentsDoc []byte
		if err := rows.Scan(&tripID, &date, &segmentsDoc); err != nil {
			return nil, fmt.Errorf("scan log day: %w", err)
		}

		var segments []planjson.Segment
		if err := json.Unmarshal(segmentsDoc, &segments); err != nil {
			return nil, fmt.Errorf("decode log day %d/%s: %w", tripID, date.Format(time.DateOnly), err)
		}

		decoded, err := planjson.SegmentsToDomain(segments)
		if err != nil {
			return nil, fmt.Errorf("decode log day %d/%s: %w", tripID, date.Format(time.DateOnly), err)
		}

		out[tripID] = append(out[tripID], domain.DayLog{Date: domain.DateOf(date), Segments: decoded})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("log_days row iteration: %w", err)
	}

	return out, nil
}
