// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// UpsertLocation creates or overwrites the location record for a user.
// Last write wins; concurrent reports for the same user race benignly
// because location is a point-in-time fact with a freshness timestamp.
func (repo *locationRepository) UpsertLocation(ctx context.Context, location *entity.UserLocation) error {
	if location.LastUpdate.IsZero() {
		location.LastUpdate = time.Now()
	}
	locationM := fromLocationDomain(location)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(locationM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrLocationUpsertFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert location")
	}

	return nil
}

// FindLocationByUserID retrieves the stored location for a user.
func (repo *locationRepository) FindLocationByUserID(ctx context.Context, userID string) (*entity.UserLocation, error) {
	var locationM model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by user ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindActiveLocations retrieves active users ordered by recency of their
// last report. The limit bounds the scan; exceeding entries are not read.
func (repo *locationRepository) FindActiveLocations(ctx context.Context, limit int) ([]*entity.UserLocation, error) {
	var locationModels []*model.UserLocationModel

	query := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("last_update DESC, user_id")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active locations")
	}

	locations := make([]*entity.UserLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// CountUsers returns the total number of known users.
func (repo *locationRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserLocationModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// CountActiveUsers returns the number of users marked active.
func (repo *locationRepository) CountActiveUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserLocationModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active users")
	}

	return count, nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM UserLocationModel to a domain UserLocation entity.
func toLocationDomain(data *model.UserLocationModel) *entity.UserLocation {
	if data == nil {
		return nil
	}

	return &entity.UserLocation{
		UserID:     data.UserID,
		ExternalID: data.ExternalID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		DeviceType: data.DeviceType,
		Active:     data.IsActive,
		LastUpdate: data.LastUpdate,
	}
}

// fromLocationDomain converts a domain UserLocation entity to a GORM UserLocationModel.
func fromLocationDomain(data *entity.UserLocation) *model.UserLocationModel {
	if data == nil {
		return nil
	}

	return &model.UserLocationModel{
		UserID:     data.UserID,
		ExternalID: data.ExternalID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		DeviceType: data.DeviceType,
		IsActive:   data.Active,
		LastUpdate: data.LastUpdate,
	}
}
