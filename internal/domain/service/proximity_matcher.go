package service

import (
	"context"

	"github.com/paulmach/orb"
)

// Candidate is a user qualifying as an alert recipient.
type Candidate struct {
	UserID         string  `json:"user_id"`
	ExternalID     string  `json:"external_id"`
	DistanceMeters float64 `json:"distance_meters"` // Rounded to 2 decimal places.
}

// ProximityMatcher filters the location directory into a distance-sorted
// candidate list for a circular geofence. The default implementation is a
// bounded linear scan; a spatial index can be swapped in behind this
// interface.
type ProximityMatcher interface {
	// FindWithinRadius returns active users within radiusMeters of center
	// (boundary inclusive), sorted ascending by distance, excluding
	// excludeUserID when non-empty. center is (lon, lat) per orb convention.
	FindWithinRadius(ctx context.Context, center orb.Point, radiusMeters float64, excludeUserID string) ([]*Candidate, error)
}
