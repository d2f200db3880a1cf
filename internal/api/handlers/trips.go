package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trip-log-service/internal/api/dto"
	"trip-log-service/internal/domain"
	"trip-log-service/internal/platform/obs"
	"trip-log-service/internal/platform/planjson"
	"trip-log-service/internal/ports"
	"trip-log-service/internal/services"
)

type tripService interface {
	CreateTrip(ctx context.Context, req services.CreateTripRequest) (*domain.Trip, error)
	GetTrip(ctx context.Context, id int64) (*domain.Trip, error)
	ListTrips(ctx context.Context) ([]*domain.Trip, error)
}

type TripHandler struct {
	trips tripService
}

func NewTripHandler(trips tripService) *TripHandler {
	return &TripHandler{trips: trips}
}

func (h *TripHandler) Register(r *gin.RouterGroup) {
	r.POST("/trips", h.Create)
	r.GET("/trips", h.List)
	r.GET("/trips/:id", h.Get)
}

func (h *TripHandler) Create(c *gin.Context) {
	var body dto.CreateTripRequest
	if !decodeJSON(c, &body) {
		return
	}

	req, err := toTripRequest(body.PlanRequest)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	trip, err := h.trips.CreateTrip(c.Request.Context(), services.CreateTripRequest{
		DriverName:        body.DriverName,
		CurrentLocation:   req.CurrentLocation,
		PickupLocation:    req.PickupLocation,
		DropoffLocation:   req.DropoffLocation,
		CurrentCycleHours: req.CurrentCycleHours,
		StartDate:         req.StartDate,
	})
	if err != nil {
		log.Printf("req_id=%s create trip failed: %v", obs.RequestID(c.Request.Context()), err)
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusCreated, toTripResponse(trip))
}

func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.trips.ListTrips(c.Request.Context())
	if err != nil {
		log.Printf("req_id=%s list trips failed: %v", obs.RequestID(c.Request.Context()), err)
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.TripResponse, 0, len(trips))
	for _, t := range trips {
		res = append(res, toTripResponse(t))
	}
	c.JSON(http.StatusOK, res)
}

func (h *TripHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}

	trip, err := h.trips.GetTrip(c.Request.Context(), id)
	if errors.Is(err, ports.ErrTripNotFound) {
		writeError(c, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		log.Printf("req_id=%s get trip failed id=%d: %v", obs.RequestID(c.Request.Context()), id, err)
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, toTripResponse(trip))
}

func toTripResponse(t *domain.Trip) dto.TripResponse {
	plan := planjson.Plan{Logs: []planjson.DayLog{}}
	if t.Plan != nil {
		plan = planjson.FromDomain(t.Plan)
	}

	logDays := make([]dto.LogDayResponse, 0, len(t.LogDays))
	for _, d := range t.LogDays {
		day := planjson.FromDayLog(d)
		logDays = append(logDays, dto.LogDayResponse{Date: day.Date, SegmentsJSON: day.Segments})
	}

	return dto.TripResponse{
		ID:                t.TripID,
		DriverName:        t.DriverName,
		CreatedAt:         t.CreatedAt,
		CurrentLocation:   t.CurrentLocation,
		PickupLocation:    t.PickupLocation,
		DropoffLocation:   t.DropoffLocation,
		CurrentCycleHours: t.CurrentCycleHours,
		PlanJSON:          plan,
		LogDays:           logDays,
	}
}
