package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	"trip-log-service/internal/adapters/distance"
	"trip-log-service/internal/adapters/events"
	"trip-log-service/internal/adapters/gazetteer"
	"trip-log-service/internal/adapters/repositories"
	"trip-log-service/internal/config"
	"trip-log-service/internal/platform/db"
	"trip-log-service/internal/services"
)

// sampleTrip is the demo trip inserted by -seed.
var sampleTrip = services.CreateTripRequest{
	DriverName:        "Jane Doe",
	CurrentLocation:   "Chicago, IL",
	PickupLocation:    "Denver, CO",
	DropoffLocation:   "Dallas, TX",
	CurrentCycleHours: 10,
}

func main() {
	seed := flag.Bool("seed", true, "insert the sample trip after creating the schema")
	flag.Parse()

	if !config.LoadDotEnv() {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	if err := initAndSeed(context.Background(), sqlDB, *seed); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, sqlDB *sql.DB, seed bool) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, sqlDB); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Println("Schema ready.")

	if !seed {
		return nil
	}

	log.Println("Seeding sample trip...")
	planner := services.NewPlanner(gazetteer.NewStatic(), distance.NewHaversineEstimator(), nil, 0)
	trips := services.NewTripService(planner, repositories.NewSQLTripRepository(sqlDB), events.NoopTripPublisher{})

	trip, err := trips.CreateTrip(ctx, sampleTrip)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Printf("Seeding complete. trip_id=%d days=%d", trip.TripID, len(trip.LogDays))

	return nil
}
