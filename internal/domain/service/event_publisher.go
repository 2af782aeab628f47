package service

import (
	"context"
)

// AlertEvent is published after an alert record is persisted so downstream
// consumers (dashboards, audit feeds) can react without polling.
type AlertEvent struct {
	AlertID        string   `json:"alert_id"`
	SenderID       string   `json:"sender_id"`
	AlertType      string   `json:"alert_type"` // sos or sos_cancelled
	Status         string   `json:"status"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	RadiusMeters   float64  `json:"radius_meters"`
	Recipients     []string `json:"recipients"`
	RequestID      string   `json:"request_id,omitempty"`
	IssuedAt       string   `json:"issued_at"`
}

// EventPublisher publishes alert events. Publishing is best-effort: the
// alert flow logs failures and moves on.
type EventPublisher interface {
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error
	Close() error
}
