package usecase

import (
	"context"
	"time"
)

// Stats is a point-in-time snapshot of directory and alert volumes
type Stats struct {
	TotalUsers  int64     `json:"total_users"`
	ActiveUsers int64     `json:"active_users"`
	TotalAlerts int64     `json:"total_alerts"`
	Timestamp   time.Time `json:"timestamp"`
}

// StatsUsecase defines the interface for service statistics use cases
type StatsUsecase interface {
	Overview(ctx context.Context) (*Stats, error)
}
