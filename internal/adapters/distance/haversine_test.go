package distance

import (
	"math"
	"testing"

	"trip-log-service/internal/domain"
)

var (
	denver  = domain.Coordinates{Lat: 39.7392, Lon: -104.9903}
	dallas  = domain.Coordinates{Lat: 32.7767, Lon: -96.7970}
	newYork = domain.Coordinates{Lat: 40.7128, Lon: -74.0060}
	la      = domain.Coordinates{Lat: 34.0522, Lon: -118.2437}
)

func TestEstimateDistanceMiles(t *testing.T) {
	got := EstimateDistanceMiles(denver, dallas)
	if math.Abs(got-662.57) > 0.05 {
		t.Fatalf("denver -> dallas = %.2f, want ~662.57", got)
	}

	got = EstimateDistanceMiles(newYork, la)
	if math.Abs(got-2445.56) > 0.05 {
		t.Fatalf("new york -> los angeles = %.2f, want ~2445.56", got)
	}
}

func TestEstimateDistanceMilesSymmetric(t *testing.T) {
	points := []domain.Coordinates{denver, dallas, newYork, la, {Lat: -33.8688, Lon: 151.2093}}

	for _, a := range points {
		for _, b := range points {
			ab := EstimateDistanceMiles(a, b)
			ba := EstimateDistanceMiles(b, a)
			if math.Abs(ab-ba) > 1e-9 {
				t.Fatalf("asymmetric distance %v <-> %v: %v vs %v", a, b, ab, ba)
			}
			if ab < 0 {
				t.Fatalf("negative distance %v -> %v: %v", a, b, ab)
			}
		}
	}
}

func TestEstimateDistanceMilesSamePoint(t *testing.T) {
	if got := EstimateDistanceMiles(denver, denver); got != 0 {
		t.Fatalf("same point distance = %v, want 0", got)
	}
}

func TestEstimateDistanceMilesAntipodal(t *testing.T) {
	a := domain.Coordinates{Lat: 0, Lon: 0}
	b := domain.Coordinates{Lat: 0, Lon: 180}

	got := EstimateDistanceMiles(a, b)
	if math.IsNaN(got) {
		t.Fatal("antipodal distance is NaN")
	}

	// Half the circumference of a 6371 km sphere.
	want := math.Pi * earthRadiusKm * milesPerKm
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("antipodal distance = %v, want %v", got, want)
	}
}

func TestFixedDistanceEstimator(t *testing.T) {
	p := NewFixedDistanceEstimator(2500)
	if got := p.EstimateMiles(denver, dallas); got != 2500 {
		t.Fatalf("fixed distance = %v, want 2500", got)
	}

	if got := NewFixedDistanceEstimator(-5).EstimateMiles(denver, dallas); got != 0 {
		t.Fatalf("negative fixed distance = %v, want 0", got)
	}
}
