package ports

import "trip-log-service/internal/domain"

// Read-only lookup of place names to coordinates.
type Gazetteer interface {
	// Resolve a place name. Matching is exact and case-sensitive.
	Lookup(name string) (domain.Coordinates, bool)
	// Return all known places sorted by name.
	Places() []domain.Place
}
