package model

import (
	"time"
)

// UserLocationModel is the GORM-specific struct for the 'user_locations' table.
// It holds the latest known position per user; rows are overwritten on every
// report and never deleted by the engine.
type UserLocationModel struct {
	UserID     string    `gorm:"type:text;primary_key"`
	ExternalID string    `gorm:"type:text;not null;default:''"`
	Latitude   float64   `gorm:"type:decimal(10,8);not null;index:idx_user_locations_coords"`
	Longitude  float64   `gorm:"type:decimal(11,8);not null;index:idx_user_locations_coords"`
	DeviceType string    `gorm:"type:text;not null;default:'android'"`
	IsActive   bool      `gorm:"not null;default:true;index"`
	LastUpdate time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}
