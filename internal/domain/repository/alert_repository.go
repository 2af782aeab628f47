package repository

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAlertNotFound is returned when no alert exists for a sender.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository defines the interface for alert persistence.
type AlertRepository interface {
	// CreateAlert persists a new alert record.
	CreateAlert(ctx context.Context, alert *entity.Alert) error

	// FindLatestAlertBySender retrieves the most recently created alert for
	// a sender, irrespective of its status.
	FindLatestAlertBySender(ctx context.Context, senderID string) (*entity.Alert, error)

	// MarkAlertCancelled applies the single transition into Cancelled as one
	// conditional update. It reports false when the alert was already
	// cancelled, so repeat cancellations stay idempotent.
	MarkAlertCancelled(ctx context.Context, id uuid.UUID, cancelledAt time.Time) (bool, error)

	// FindAlertsBySender retrieves alerts for a sender ordered by creation
	// time descending, capped at limit.
	FindAlertsBySender(ctx context.Context, senderID string, limit int) ([]*entity.Alert, error)

	// CountAlerts returns the total number of alert records.
	CountAlerts(ctx context.Context) (int64, error)
}
