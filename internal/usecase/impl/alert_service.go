package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"beacon/config"
	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/errors"
	"beacon/internal/usecase"

	"github.com/paulmach/orb"
)

const (
	defaultSOSMessage = "SOS Alert! Someone nearby needs help!"

	sosTitle    = "🆘 SOS Alert!"
	cancelTitle = "✅ SOS Cancelled"
	cancelBody  = "The SOS alert was cancelled by the sender"
)

// Cancellation statuses returned to the caller.
const (
	CancelStatusSuccess       = "success"
	CancelStatusNoActiveAlert = "no_active_alert"
)

type alertService struct {
	alertRepo repository.AlertRepository
	matcher   service.ProximityMatcher
	push      service.PushService
	publisher service.EventPublisher
	config    *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// NewAlertService creates a new SOS alert lifecycle service instance
func NewAlertService(
	alertRepo repository.AlertRepository,
	matcher service.ProximityMatcher,
	push service.PushService,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AlertUsecase {
	return &alertService{
		alertRepo: alertRepo,
		matcher:   matcher,
		push:      push,
		publisher: publisher,
		config:    cfg,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// TriggerSOS matches recipients around the origin, dispatches one batched
// push to all of them and persists the alert record. The record is written
// even when nobody qualifies or the provider rejects the dispatch.
func (s *alertService) TriggerSOS(ctx context.Context, input *usecase.TriggerSOSInput) (*usecase.SOSResult, error) {
	radius := input.RadiusMeters
	if radius <= 0 {
		radius = s.config.Alert.DefaultRadiusMeters
	}
	message := input.Message
	if message == "" {
		message = defaultSOSMessage
	}

	candidates, err := s.matcher.FindWithinRadius(ctx, orb.Point{input.Longitude, input.Latitude}, radius, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to match alert recipients: %w", err)
	}

	if len(candidates) == 0 {
		alert := &entity.Alert{
			AlertID:      entity.NoRecipientsAlertID,
			SenderID:     input.UserID,
			Latitude:     input.Latitude,
			Longitude:    input.Longitude,
			RadiusMeters: radius,
			Message:      message,
			Status:       entity.AlertStatusNoRecipients,
			Recipients:   []string{},
		}
		if err := s.alertRepo.CreateAlert(ctx, alert); err != nil {
			return nil, fmt.Errorf("failed to persist alert: %w", err)
		}

		s.publishEvent(ctx, alert, entity.AlertTypeSOS)

		return &usecase.SOSResult{
			AlertID:         entity.NoRecipientsAlertID,
			RecipientsCount: 0,
			Status:          string(entity.AlertStatusNoRecipients),
		}, nil
	}

	aliases := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		aliases = append(aliases, candidate.ExternalID)
	}

	outcome := s.push.Dispatch(ctx, &service.DispatchRequest{
		Aliases: aliases,
		Title:   sosTitle,
		Body:    message,
		Data: map[string]string{
			"alert_type": entity.AlertTypeSOS,
			"sender_id":  input.UserID,
			"latitude":   strconv.FormatFloat(input.Latitude, 'f', -1, 64),
			"longitude":  strconv.FormatFloat(input.Longitude, 'f', -1, 64),
			"timestamp":  s.now().Format(time.RFC3339),
		},
		WithActions: true,
	})

	alertID := outcome.NotificationID
	if alertID == "" {
		alertID = "unknown"
	}

	alert := &entity.Alert{
		AlertID:        alertID,
		SenderID:       input.UserID,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		RadiusMeters:   radius,
		Message:        message,
		Status:         entity.AlertStatusDispatched,
		DispatchStatus: outcome.Status,
		DispatchError:  outcome.ErrorMessage,
		Recipients:     aliases,
		RecipientCount: len(aliases),
	}
	if err := s.alertRepo.CreateAlert(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to persist alert: %w", err)
	}

	if !outcome.Succeeded() {
		s.log(ctx).WarnContext(ctx, "SOS dispatch failed",
			slog.String("senderID", input.UserID),
			slog.String("error", outcome.ErrorMessage),
		)
	}

	s.publishEvent(ctx, alert, entity.AlertTypeSOS)

	return &usecase.SOSResult{
		AlertID:         alertID,
		RecipientsCount: len(aliases),
		Status:          outcome.Status,
	}, nil
}

// CancelSOS cancels the sender's most recent alert. The cancelled_at guard
// in the repository makes the transition happen at most once; only the
// request that wins it re-notifies the recipients.
func (s *alertService) CancelSOS(ctx context.Context, senderID string) (*usecase.CancelResult, error) {
	latest, err := s.alertRepo.FindLatestAlertBySender(ctx, senderID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return &usecase.CancelResult{
				Status:  CancelStatusNoActiveAlert,
				Message: "No active SOS alert found",
			}, nil
		}

		return nil, fmt.Errorf("failed to find latest alert: %w", err)
	}

	transitioned, err := s.alertRepo.MarkAlertCancelled(ctx, latest.ID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to cancel alert: %w", err)
	}

	if transitioned && len(latest.Recipients) > 0 {
		outcome := s.push.Dispatch(ctx, &service.DispatchRequest{
			Aliases: latest.Recipients,
			Title:   cancelTitle,
			Body:    cancelBody,
			Data: map[string]string{
				"alert_type":        entity.AlertTypeCancelled,
				"original_alert_id": latest.AlertID,
			},
		})
		if !outcome.Succeeded() {
			s.log(ctx).WarnContext(ctx, "cancellation notice dispatch failed",
				slog.String("senderID", senderID),
				slog.String("alertID", latest.AlertID),
				slog.String("error", outcome.ErrorMessage),
			)
		}
	}

	if transitioned {
		latest.Status = entity.AlertStatusCancelled
		s.publishEvent(ctx, latest, entity.AlertTypeCancelled)
	}

	return &usecase.CancelResult{
		Status:  CancelStatusSuccess,
		Message: "SOS alert cancelled",
	}, nil
}

// AlertHistory lists the sender's alerts, newest first.
func (s *alertService) AlertHistory(ctx context.Context, senderID string, limit int) ([]*entity.Alert, error) {
	if limit <= 0 {
		limit = s.config.Alert.HistoryLimit
	}

	alerts, err := s.alertRepo.FindAlertsBySender(ctx, senderID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find alerts by sender: %w", err)
	}

	return alerts, nil
}

// log returns the request-scoped logger when the delivery layer attached
// one, falling back to the service logger.
func (s *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// publishEvent emits an alert event best-effort; failures are logged and
// never surfaced to the caller.
func (s *alertService) publishEvent(ctx context.Context, alert *entity.Alert, alertType string) {
	if s.publisher == nil {
		return
	}

	event := &service.AlertEvent{
		AlertID:      alert.AlertID,
		SenderID:     alert.SenderID,
		AlertType:    alertType,
		Status:       string(alert.Status),
		Latitude:     alert.Latitude,
		Longitude:    alert.Longitude,
		RadiusMeters: alert.RadiusMeters,
		Recipients:   alert.Recipients,
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		IssuedAt:     s.now().Format(time.RFC3339),
	}

	if err := s.publisher.PublishAlertEvent(ctx, event); err != nil {
		s.log(ctx).WarnContext(ctx, "failed to publish alert event",
			slog.String("alertID", alert.AlertID),
			slog.String("alertType", alertType),
			slog.Any("error", err),
		)
	}
}
