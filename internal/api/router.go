package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"trip-log-service/internal/api/handlers"
	"trip-log-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// db may be nil, in which case /health only reports liveness.
func NewRouter(planner *services.Planner, trips *services.TripService, db *sql.DB) http.Handler {
	r := gin.New()
	r.Use(requestID(), accessLog(), gin.Recovery())

	// A nil *sql.DB must not reach the handler as a non-nil interface.
	if db != nil {
		handlers.NewHealthHandler(db).Register(r)
	} else {
		handlers.NewHealthHandler(nil).Register(r)
	}

	v1 := r.Group("/api/v1")
	handlers.NewCityHandler(planner).Register(v1)
	handlers.NewPlanHandler(planner).Register(v1)
	handlers.NewTripHandler(trips).Register(v1)

	return r
}
