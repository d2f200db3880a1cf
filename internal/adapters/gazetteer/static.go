package gazetteer

import (
	"slices"
	"strings"

	"trip-log-service/internal/domain"
	"trip-log-service/internal/ports"
)

var _ ports.Gazetteer = (*Static)(nil)

// Static is an in-memory gazetteer of major US cities.
// It is built once and never mutated, so it is safe for concurrent use.
type Static struct {
	coords map[string]domain.Coordinates
	sorted []domain.Place
}

func NewStatic() *Static {
	return NewStaticFrom(cityCoordinates)
}

// NewStaticFrom builds a gazetteer from a copy of the given table.
func NewStaticFrom(table map[string]domain.Coordinates) *Static {
	coords := make(map[string]domain.Coordinates, len(table))
	sorted := make([]domain.Place, 0, len(table))
	for name, c := range table {
		coords[name] = c
		sorted = append(sorted, domain.Place{Name: name, Coords: c})
	}

	slices.SortFunc(sorted, func(a, b domain.Place) int {
		return strings.Compare(a.Name, b.Name)
	})

	return &Static{coords: coords, sorted: sorted}
}

func (s *Static) Lookup(name string) (domain.Coordinates, bool) {
	c, ok := s.coords[name]
	return c, ok
}

// Places returns a fresh copy so callers cannot disturb the shared table.
func (s *Static) Places() []domain.Place {
	return slices.Clone(s.sorted)
}

var cityCoordinates = map[string]domain.Coordinates{
	"Atlanta, GA":       {Lat: 33.7490, Lon: -84.3880},
	"Boston, MA":        {Lat: 42.3601, Lon: -71.0589},
	"Chicago, IL":       {Lat: 41.8781, Lon: -87.6298},
	"Dallas, TX":        {Lat: 32.7767, Lon: -96.7970},
	"Denver, CO":        {Lat: 39.7392, Lon: -104.9903},
	"Detroit, MI":       {Lat: 42.3314, Lon: -83.0458},
	"Houston, TX":       {Lat: 29.7604, Lon: -95.3698},
	"Kansas City, MO":   {Lat: 39.0997, Lon: -94.5786},
	"Las Vegas, NV":     {Lat: 36.1699, Lon: -115.1398},
	"Los Angeles, CA":   {Lat: 34.0522, Lon: -118.2437},
	"Miami, FL":         {Lat: 25.7617, Lon: -80.1918},
	"Minneapolis, MN":   {Lat: 44.9778, Lon: -93.2650},
	"Nashville, TN":     {Lat: 36.1627, Lon: -86.7816},
	"New Orleans, LA":   {Lat: 29.9511, Lon: -90.0715},
	"New York, NY":      {Lat: 40.7128, Lon: -74.0060},
	"Philadelphia, PA":  {Lat: 39.9526, Lon: -75.1652},
	"Phoenix, AZ":       {Lat: 33.4484, Lon: -112.0740},
	"Portland, OR":      {Lat: 45.5152, Lon: -122.6784},
	"San Antonio, TX":   {Lat: 29.4241, Lon: -98.4936},
	"San Diego, CA":     {Lat: 32.7157, Lon: -117.1611},
	"San Francisco, CA": {Lat: 37.7749, Lon: -122.4194},
	"Seattle, WA":       {Lat: 47.6062, Lon: -122.3321},
	"St. Louis, MO":     {Lat: 38.6270, Lon: -90.1994},
	"Washington, DC":    {Lat: 38.9072, Lon: -77.0369},
}
