package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"trip-log-service/internal/api/dto"
	"trip-log-service/internal/domain"
)

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// decodeJSON reads exactly one JSON object with no unknown fields into v.
// On failure it writes a 400 and returns false.
func decodeJSON(c *gin.Context, v any) bool {
	dec := json.NewDecoder(c.Request.Body)
	defer c.Request.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(c, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// toTripRequest validates a plan body. A zero StartDate is left for the
// caller to default.
func toTripRequest(req dto.PlanRequest) (domain.TripRequest, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"current_location", req.CurrentLocation},
		{"pickup_location", req.PickupLocation},
		{"dropoff_location", req.DropoffLocation},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return domain.TripRequest{}, fmt.Errorf("%s is required", f.name)
		}
	}

	if req.CurrentCycleHours == nil {
		return domain.TripRequest{}, errors.New("current_cycle_hours is required")
	}
	hours := *req.CurrentCycleHours
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
		return domain.TripRequest{}, errors.New("current_cycle_hours must be a non-negative number")
	}

	var start time.Time
	if s := strings.TrimSpace(req.StartDate); s != "" {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return domain.TripRequest{}, errors.New("start_date must be YYYY-MM-DD")
		}
		start = d
	}

	return domain.TripRequest{
		CurrentLocation:   strings.TrimSpace(req.CurrentLocation),
		PickupLocation:    strings.TrimSpace(req.PickupLocation),
		DropoffLocation:   strings.TrimSpace(req.DropoffLocation),
		CurrentCycleHours: hours,
		StartDate:         start,
	}, nil
}
