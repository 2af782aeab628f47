package postgres

import (
	"context"
	"encoding/json"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateAlert persists a new alert record.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	alertM, err := fromAlertDomain(alert)
	if err != nil {
		return errors.Wrap(err, "failed to encode alert")
	}

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("alert violates a data constraint")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAlertCreationFailed.WrapMessage("missing required alert information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	// Update the entity with generated values
	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return nil
}

// FindLatestAlertBySender retrieves the most recently created alert for a
// sender, irrespective of its status.
func (repo *alertRepository) FindLatestAlertBySender(ctx context.Context, senderID string) (*entity.Alert, error) {
	var alertM model.AlertModel

	if err := repo.db.WithContext(ctx).
		Where("sender_id = ?", senderID).
		Order("created_at DESC").
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest alert by sender")
	}

	return toAlertDomain(&alertM)
}

// MarkAlertCancelled applies the cancellation transition as a single
// conditional update. The cancelled_at guard makes the transition atomic:
// of two racing cancellations exactly one observes a row change.
func (repo *alertRepository) MarkAlertCancelled(ctx context.Context, id uuid.UUID, cancelledAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ? AND cancelled_at IS NULL", id).
		Updates(map[string]interface{}{
			"status":       string(entity.AlertStatusCancelled),
			"cancelled_at": cancelledAt,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark alert cancelled")
	}

	return result.RowsAffected > 0, nil
}

// FindAlertsBySender retrieves alerts for a sender ordered by creation time
// descending, capped at limit.
func (repo *alertRepository) FindAlertsBySender(ctx context.Context, senderID string, limit int) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	query := repo.db.WithContext(ctx).
		Where("sender_id = ?", senderID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by sender")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alert, err := toAlertDomain(alertM)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}

	return alerts, nil
}

// CountAlerts returns the total number of alert records.
func (repo *alertRepository) CountAlerts(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count alerts")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM AlertModel to a domain Alert entity.
func toAlertDomain(data *model.AlertModel) (*entity.Alert, error) {
	if data == nil {
		return nil, nil
	}

	var recipients []string
	if len(data.Recipients) > 0 {
		if err := json.Unmarshal(data.Recipients, &recipients); err != nil {
			return nil, errors.Wrap(err, "failed to decode alert recipients")
		}
	}

	return &entity.Alert{
		ID:             data.ID,
		AlertID:        data.AlertID,
		SenderID:       data.SenderID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		RadiusMeters:   data.RadiusMeters,
		Message:        data.Message,
		Status:         entity.AlertStatus(data.Status),
		DispatchStatus: data.DispatchStatus,
		DispatchError:  data.DispatchError,
		Recipients:     recipients,
		RecipientCount: data.RecipientCount,
		CreatedAt:      data.CreatedAt,
		CancelledAt:    data.CancelledAt,
	}, nil
}

// fromAlertDomain converts a domain Alert entity to a GORM AlertModel.
func fromAlertDomain(data *entity.Alert) (*model.AlertModel, error) {
	if data == nil {
		return nil, nil
	}

	recipients := data.Recipients
	if recipients == nil {
		recipients = []string{}
	}
	encoded, err := json.Marshal(recipients)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode alert recipients")
	}

	return &model.AlertModel{
		ID:             data.ID,
		AlertID:        data.AlertID,
		SenderID:       data.SenderID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		RadiusMeters:   data.RadiusMeters,
		Message:        data.Message,
		Status:         string(data.Status),
		DispatchStatus: data.DispatchStatus,
		DispatchError:  data.DispatchError,
		Recipients:     datatypes.JSON(encoded),
		RecipientCount: data.RecipientCount,
		CreatedAt:      data.CreatedAt,
		CancelledAt:    data.CancelledAt,
	}, nil
}
