// Package service defines interfaces for external collaborators of the
// alert engine.
package service

import (
	"context"
)

// Dispatch outcome statuses reported by a push provider.
const (
	DispatchStatusSuccess = "success"
	DispatchStatusError   = "error"
)

// DispatchRequest is a single batched push addressed to every recipient
// alias at once.
type DispatchRequest struct {
	Aliases []string          // Provider aliases (external ids) of all recipients.
	Title   string            // Localized notification title.
	Body    string            // Localized notification body.
	Data    map[string]string // Metadata payload attached to the push.
	// WithActions attaches the two fixed response actions
	// ("I'm coming to help" / "False alarm"). Set for SOS dispatches,
	// omitted for cancellation notices.
	WithActions bool
}

// DispatchOutcome is the normalized result of a dispatch attempt. It
// describes what the provider accepted, not on-device delivery.
type DispatchOutcome struct {
	Status         string // success or error
	NotificationID string // Provider-assigned id; empty on error.
	Recipients     int    // Recipient count acknowledged by the provider.
	ErrorMessage   string // Diagnostic message; empty on success.
}

// Succeeded reports whether the provider accepted the dispatch.
func (o *DispatchOutcome) Succeeded() bool {
	return o.Status == DispatchStatusSuccess
}

// PushService is the outbound push-notification provider. Implementations
// absorb every transport-level failure (timeout, non-2xx, malformed
// response) and normalize it into an error outcome; Dispatch never fails
// with a transport error.
type PushService interface {
	Dispatch(ctx context.Context, req *DispatchRequest) *DispatchOutcome
}
