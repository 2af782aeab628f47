package push

import (
	"context"
	"log/slog"

	"beacon/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// Firebase limits multicast messages to 500 tokens per request.
const fcmBatchSize = 500

type fcmService struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFCMService creates a PushService backed by Firebase Cloud Messaging.
// Recipient aliases are treated as device registration tokens.
func NewFCMService(ctx context.Context, credentialsPath string, logger *slog.Logger) (service.PushService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmService{
		client: client,
		logger: logger,
	}, nil
}

// Dispatch fans the batch out through FCM multicast. FCM has no batch-level
// notification id, so the outcome carries a locally generated one; the
// recipient count is the number of tokens FCM accepted.
func (s *fcmService) Dispatch(ctx context.Context, req *service.DispatchRequest) *service.DispatchOutcome {
	accepted := 0
	for start := 0; start < len(req.Aliases); start += fcmBatchSize {
		end := min(start+fcmBatchSize, len(req.Aliases))

		message := &messaging.MulticastMessage{
			Tokens: req.Aliases[start:end],
			Notification: &messaging.Notification{
				Title: req.Title,
				Body:  req.Body,
			},
			Data: req.Data,
		}

		response, err := s.client.SendEachForMulticast(ctx, message)
		if err != nil {
			s.logger.Warn("FCM multicast failed",
				slog.Int("tokens", end-start),
				slog.Any("error", err),
			)

			return &service.DispatchOutcome{
				Status:       service.DispatchStatusError,
				ErrorMessage: err.Error(),
			}
		}

		accepted += response.SuccessCount
	}

	return &service.DispatchOutcome{
		Status:         service.DispatchStatusSuccess,
		NotificationID: uuid.New().String(),
		Recipients:     accepted,
	}
}
