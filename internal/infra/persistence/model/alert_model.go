package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AlertModel is the GORM-specific struct for the 'alerts' table.
// One row per SOS broadcast; immutable after insert except for the single
// cancellation transition.
type AlertModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AlertID        string         `gorm:"type:text;not null"`
	SenderID       string         `gorm:"type:text;not null;index"`
	Latitude       float64        `gorm:"type:decimal(10,8);not null"`
	Longitude      float64        `gorm:"type:decimal(11,8);not null"`
	RadiusMeters   float64        `gorm:"not null;check:radius_meters > 0"`
	Message        string         `gorm:"type:text"`
	Status         string         `gorm:"type:text;not null"`
	DispatchStatus string         `gorm:"type:text;not null;default:''"`
	DispatchError  string         `gorm:"type:text;not null;default:''"`
	Recipients     datatypes.JSON `gorm:"type:jsonb"`
	RecipientCount int            `gorm:"not null;default:0"`
	CreatedAt      time.Time      `gorm:"not null;index"`
	CancelledAt    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}
