package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"trip-log-service/internal/adapters/cache"
	"trip-log-service/internal/adapters/distance"
	"trip-log-service/internal/adapters/events"
	"trip-log-service/internal/adapters/gazetteer"
	"trip-log-service/internal/adapters/repositories"
	"trip-log-service/internal/api"
	"trip-log-service/internal/config"
	"trip-log-service/internal/platform/db"
	"trip-log-service/internal/ports"
	"trip-log-service/internal/services"

	"github.com/gin-gonic/gin"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, RabbitMQ) behind ports and starts the HTTP server.
func main() {
	if !config.LoadDotEnv() {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	sqlDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	if err := repositories.InitSchema(ctx, sqlDB); err != nil {
		log.Fatal(err)
	}

	// Redis and RabbitMQ are optional; without them plans are computed
	// on every request and trip events are dropped.
	var planCache ports.PlanCache
	if cfg.RedisURL != "" {
		client, err := cache.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		defer client.Close()
		planCache = cache.NewRedisPlanCache(client)
		log.Printf("plan cache enabled ttl=%s", cfg.PlanCacheTTL)
	}

	var publisher ports.TripEventPublisher = events.NoopTripPublisher{}
	if cfg.RabbitMQURL != "" {
		conn, err := events.Dial(cfg.RabbitMQURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		pub, err := events.NewRabbitMQTripPublisher(conn)
		if err != nil {
			log.Fatal(err)
		}
		publisher = pub
		log.Println("trip events enabled")
	}

	planner := services.NewPlanner(gazetteer.NewStatic(), distance.NewHaversineEstimator(), planCache, cfg.PlanCacheTTL)
	trips := services.NewTripService(planner, repositories.NewSQLTripRepository(sqlDB), publisher)

	gin.SetMode(config.Get("GIN_MODE", gin.ReleaseMode))
	router := api.NewRouter(planner, trips, sqlDB)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
