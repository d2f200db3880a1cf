package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the PostgreSQL schema for trips and their log days.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		trip_id BIGSERIAL PRIMARY KEY,
		driver_name TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		current_location TEXT NOT NULL,
		pickup_location TEXT NOT NULL,
		dropoff_location TEXT NOT NULL,
		current_cycle_hours DOUBLE PRECISION NOT NULL,
		plan_json JSONB NOT NULL DEFAULT '{}'::jsonb
	);
	`

	createLogDaysQuery := `
	CREATE TABLE IF NOT EXISTS log_days (
		trip_id BIGINT NOT NULL REFERENCES trips(trip_id) ON DELETE CASCADE,
		log_date DATE NOT NULL,
		segments_json JSONB NOT NULL DEFAULT '[]'::jsonb,
		PRIMARY KEY (trip_id, log_date)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_trips_created_at
	ON trips(created_at DESC);
	`

	statements := []string{
		createTripsQuery,
		createLogDaysQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
