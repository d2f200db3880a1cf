package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trip-log-service/internal/api/dto"
	"trip-log-service/internal/domain"
	"trip-log-service/internal/platform/obs"
	"trip-log-service/internal/platform/planjson"
)

type planService interface {
	Plan(ctx context.Context, req domain.TripRequest) (*domain.RoutePlan, error)
}

// PlanHandler previews a plan without storing a trip.
type PlanHandler struct {
	planner planService
	now     func() time.Time
}

func NewPlanHandler(planner planService) *PlanHandler {
	return &PlanHandler{planner: planner, now: time.Now}
}

func (h *PlanHandler) Register(r *gin.RouterGroup) {
	r.POST("/plans", h.Plan)
}

func (h *PlanHandler) Plan(c *gin.Context) {
	var body dto.PlanRequest
	if !decodeJSON(c, &body) {
		return
	}

	req, err := toTripRequest(body)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.StartDate.IsZero() {
		req.StartDate = domain.DateOf(h.now())
	}

	plan, err := h.planner.Plan(c.Request.Context(), req)
	if err != nil {
		log.Printf("req_id=%s plan preview failed: %v", obs.RequestID(c.Request.Context()), err)
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, planjson.FromDomain(plan))
}
