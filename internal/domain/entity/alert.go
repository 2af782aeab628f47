package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertStatus is the lifecycle state of an SOS alert.
type AlertStatus string

const (
	// AlertStatusDispatched marks an alert whose dispatch step completed,
	// regardless of whether the provider accepted or rejected it.
	AlertStatusDispatched AlertStatus = "dispatched"
	// AlertStatusNoRecipients marks an alert that found no qualifying
	// recipients; the record is still persisted for history and stats.
	AlertStatusNoRecipients AlertStatus = "no_recipients"
	// AlertStatusCancelled marks an alert cancelled by its sender.
	AlertStatusCancelled AlertStatus = "cancelled"
)

// Alert type tags attached to every outbound push.
const (
	AlertTypeSOS       = "sos"
	AlertTypeCancelled = "sos_cancelled"
)

// NoRecipientsAlertID is the sentinel provider id recorded when an alert
// had no candidates and therefore no provider-assigned id.
const NoRecipientsAlertID = "no_recipients"

// Alert is a single SOS broadcast. Immutable after creation except for the
// one transition into Cancelled.
type Alert struct {
	ID             uuid.UUID   `json:"id"`              // Internal record identifier.
	AlertID        string      `json:"alert_id"`        // Provider-assigned notification id, or the no_recipients sentinel.
	SenderID       string      `json:"sender_id"`       // User who triggered the alert.
	Latitude       float64     `json:"latitude"`        // Origin latitude in decimal degrees.
	Longitude      float64     `json:"longitude"`       // Origin longitude in decimal degrees.
	RadiusMeters   float64     `json:"radius_meters"`   // Geofence radius, always > 0.
	Message        string      `json:"message"`         // Alert body shown to recipients.
	Status         AlertStatus `json:"status"`          // Lifecycle state.
	DispatchStatus string      `json:"dispatch_status"` // success or error; empty for no_recipients alerts.
	DispatchError  string      `json:"dispatch_error,omitempty"`
	Recipients     []string    `json:"recipients"`       // External ids targeted, fixed at creation.
	RecipientCount int         `json:"recipients_count"` // Number of qualifying candidates.
	CreatedAt      time.Time   `json:"created_at"`
	CancelledAt    *time.Time  `json:"cancelled_at,omitempty"`
}

// IsCancelled reports whether the alert has already been cancelled.
func (a *Alert) IsCancelled() bool {
	return a.CancelledAt != nil
}
