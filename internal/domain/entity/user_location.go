// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// UserLocation is the latest known position of a registered user together
// with the alias the push provider uses to address their device.
type UserLocation struct {
	UserID     string    `json:"user_id"`     // Unique application-level user identifier.
	ExternalID string    `json:"external_id"` // Opaque alias used by the push provider; required for delivery.
	Latitude   float64   `json:"latitude"`    // Decimal degrees, -90..90.
	Longitude  float64   `json:"longitude"`   // Decimal degrees, -180..180.
	DeviceType string    `json:"device_type"` // Reporting device platform (android, ios).
	Active     bool      `json:"active"`      // Eligible as an alert recipient.
	LastUpdate time.Time `json:"last_update"` // Timestamp of the most recent location report.
}

// HasCoordinates reports whether both coordinates have been set.
// A user that never reported a position carries the zero pair and is
// never eligible as a recipient.
func (l *UserLocation) HasCoordinates() bool {
	return l.Latitude != 0 || l.Longitude != 0
}
