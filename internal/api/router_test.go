package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"trip-log-service/internal/adapters/distance"
	"trip-log-service/internal/adapters/gazetteer"
	"trip-log-service/internal/services"
)

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	planner := services.NewPlanner(gazetteer.NewStatic(), distance.NewHaversineEstimator(), nil, time.Hour)
	return NewRouter(planner, nil, db), mock
}

func TestRouter_HealthPingsDatabase(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	for _, want := range []int{http.StatusOK, http.StatusServiceUnavailable} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		r.ServeHTTP(w, req)

		if w.Code != want {
			t.Errorf("expected %d, got %d", want, w.Code)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRouter_RequestID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/cities/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("expected echoed request id, got %q", got)
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/cities/", nil)
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); len(got) != 36 {
		t.Errorf("expected generated uuid, got %q", got)
	}
}

func TestRouter_PlanPreview(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/plans", strings.NewReader(
		`{"current_location":"Chicago, IL","pickup_location":"Chicago, IL","dropoff_location":"Chicago, IL","current_cycle_hours":0,"start_date":"2026-03-02"}`,
	))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Route struct {
			Polyline      [][]float64      `json:"polyline"`
			DistanceMiles float64          `json:"distanceMiles"`
			DurationHours float64          `json:"durationHours"`
			Stops         []map[string]any `json:"stops"`
		} `json:"route"`
		Logs []struct {
			Date     string           `json:"date"`
			Segments []map[string]any `json:"segments"`
		} `json:"logs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !strings.Contains(w.Body.String(), `"polyline":[]`) {
		t.Errorf("expected empty polyline array, got %s", w.Body.String())
	}
	if resp.Route.DistanceMiles != 0 || resp.Route.DurationHours != 8 {
		t.Errorf("unexpected route %+v", resp.Route)
	}
	if len(resp.Route.Stops) != 1 || resp.Route.Stops[0]["type"] != "rest" || resp.Route.Stops[0]["hour"] != 8.0 {
		t.Errorf("unexpected stops %v", resp.Route.Stops)
	}
	if len(resp.Logs) != 1 || resp.Logs[0].Date != "2026-03-02" {
		t.Errorf("unexpected logs %+v", resp.Logs)
	}
}
