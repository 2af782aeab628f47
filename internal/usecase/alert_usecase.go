package usecase

import (
	"context"

	"beacon/internal/domain/entity"
)

// TriggerSOSInput represents the input for raising an SOS alert
type TriggerSOSInput struct {
	UserID       string  `json:"user_id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
	Message      string  `json:"message"`
	ExternalID   string  `json:"external_id"`
}

// SOSResult summarizes a trigger attempt for the caller
type SOSResult struct {
	AlertID         string `json:"alert_id"`
	RecipientsCount int    `json:"recipients_count"`
	Status          string `json:"status"`
}

// CancelResult reports the outcome of a cancellation request
type CancelResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// AlertUsecase defines the interface for the SOS alert lifecycle use cases
type AlertUsecase interface {
	// TriggerSOS matches recipients, dispatches one batched push and
	// persists the alert record regardless of the dispatch outcome
	TriggerSOS(ctx context.Context, input *TriggerSOSInput) (*SOSResult, error)
	// CancelSOS cancels the sender's most recent alert and notifies its
	// recipients best-effort
	CancelSOS(ctx context.Context, senderID string) (*CancelResult, error)
	// AlertHistory lists the sender's alerts, newest first
	AlertHistory(ctx context.Context, senderID string, limit int) ([]*entity.Alert, error)
}
