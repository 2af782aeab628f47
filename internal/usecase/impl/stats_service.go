package impl

import (
	"context"
	"fmt"
	"time"

	"beacon/internal/domain/repository"
	"beacon/internal/usecase"
)

type statsService struct {
	locationRepo repository.LocationRepository
	alertRepo    repository.AlertRepository
}

// NewStatsService creates a new statistics service instance
func NewStatsService(
	locationRepo repository.LocationRepository,
	alertRepo repository.AlertRepository,
) usecase.StatsUsecase {
	return &statsService{
		locationRepo: locationRepo,
		alertRepo:    alertRepo,
	}
}

// Overview returns a point-in-time snapshot of directory and alert volumes.
func (s *statsService) Overview(ctx context.Context) (*usecase.Stats, error) {
	totalUsers, err := s.locationRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	activeUsers, err := s.locationRepo.CountActiveUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}

	totalAlerts, err := s.alertRepo.CountAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count alerts: %w", err)
	}

	return &usecase.Stats{
		TotalUsers:  totalUsers,
		ActiveUsers: activeUsers,
		TotalAlerts: totalAlerts,
		Timestamp:   time.Now().UTC(),
	}, nil
}
