package usecase

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
)

// ReportLocationInput represents the input for reporting a user's position
type ReportLocationInput struct {
	UserID     string  `json:"user_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	ExternalID string  `json:"external_id"`
	DeviceType string  `json:"device_type"`
}

// LocationUsecase defines the interface for the location directory use cases
type LocationUsecase interface {
	// ReportLocation upserts the caller's position, last write wins
	ReportLocation(ctx context.Context, input *ReportLocationInput) (*entity.UserLocation, error)
	// GetLocation retrieves a single user's last known position
	GetLocation(ctx context.Context, userID string) (*entity.UserLocation, error)
	// FindNearby lists active users within radiusMeters of the given point
	FindNearby(ctx context.Context, latitude, longitude, radiusMeters float64) ([]*service.Candidate, error)
}
