package domain

// Immutable geographic coordinates in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lat, lng] for map rendering.
func (c Coordinates) LatLng() []float64 { return []float64{c.Lat, c.Lon} }

// A named point from the gazetteer.
type Place struct {
	Name   string
	Coords Coordinates
}
