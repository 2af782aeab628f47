// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when no location is stored for a user.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for the location directory.
type LocationRepository interface {
	// UpsertLocation creates or overwrites the location record for a user.
	// Last write wins; no versioning or conflict detection.
	UpsertLocation(ctx context.Context, location *entity.UserLocation) error

	// FindLocationByUserID retrieves the stored location for a user.
	FindLocationByUserID(ctx context.Context, userID string) (*entity.UserLocation, error)

	// FindActiveLocations retrieves active users ordered by recency of their
	// last report. The scan is bounded by limit; excess entries are not read.
	FindActiveLocations(ctx context.Context, limit int) ([]*entity.UserLocation, error)

	// CountUsers returns the total number of known users.
	CountUsers(ctx context.Context) (int64, error)

	// CountActiveUsers returns the number of users marked active.
	CountActiveUsers(ctx context.Context) (int64, error)
}
