package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/errors"
	"beacon/internal/usecase"

	"github.com/paulmach/orb"
)

const defaultDeviceType = "android"

type locationService struct {
	locationRepo repository.LocationRepository
	matcher      service.ProximityMatcher
	config       *config.Config
	logger       *slog.Logger
}

// NewLocationService creates a new location directory service instance
func NewLocationService(
	locationRepo repository.LocationRepository,
	matcher service.ProximityMatcher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		locationRepo: locationRepo,
		matcher:      matcher,
		config:       cfg,
		logger:       logger,
	}
}

// ReportLocation upserts the caller's position. Repeated reports for the
// same user overwrite each other, last write wins.
func (s *locationService) ReportLocation(ctx context.Context, input *usecase.ReportLocationInput) (*entity.UserLocation, error) {
	deviceType := input.DeviceType
	if deviceType == "" {
		deviceType = defaultDeviceType
	}

	location := &entity.UserLocation{
		UserID:     input.UserID,
		ExternalID: input.ExternalID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		DeviceType: deviceType,
		Active:     true,
		LastUpdate: time.Now().UTC(),
	}

	if err := s.locationRepo.UpsertLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to upsert location: %w", err)
	}

	s.logger.DebugContext(ctx, "location reported",
		slog.String("userID", input.UserID),
		slog.String("deviceType", deviceType),
	)

	return location, nil
}

// GetLocation retrieves a single user's last known position.
func (s *locationService) GetLocation(ctx context.Context, userID string) (*entity.UserLocation, error) {
	location, err := s.locationRepo.FindLocationByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find location by user ID: %w", err)
	}

	return location, nil
}

// FindNearby lists active users within radiusMeters of the given point,
// sorted ascending by distance.
func (s *locationService) FindNearby(ctx context.Context, latitude, longitude, radiusMeters float64) ([]*service.Candidate, error) {
	if radiusMeters <= 0 {
		radiusMeters = s.config.Alert.DefaultRadiusMeters
	}

	candidates, err := s.matcher.FindWithinRadius(ctx, orb.Point{longitude, latitude}, radiusMeters, "")
	if err != nil {
		return nil, fmt.Errorf("failed to match nearby users: %w", err)
	}

	return candidates, nil
}
