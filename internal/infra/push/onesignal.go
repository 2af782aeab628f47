// Package push contains the outbound push-notification providers.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"beacon/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultOneSignalEndpoint = "https://api.onesignal.com/notifications"
	defaultDispatchTimeout   = 30 * time.Second

	// Undelivered pushes are dropped by the provider after this window
	// rather than delivered late.
	notificationTTLSeconds = 300
	notificationPriority   = 10
)

// oneSignalPayload is the request body for the OneSignal notifications API.
type oneSignalPayload struct {
	AppID          string            `json:"app_id"`
	TargetChannel  string            `json:"target_channel"`
	IncludeAliases oneSignalAliases  `json:"include_aliases"`
	Headings       map[string]string `json:"headings"`
	Contents       map[string]string `json:"contents"`
	Data           map[string]string `json:"data,omitempty"`
	Buttons        []oneSignalButton `json:"buttons,omitempty"`
	Priority       int               `json:"priority"`
	TTL            int               `json:"ttl"`
}

type oneSignalAliases struct {
	ExternalID []string `json:"external_id"`
}

type oneSignalButton struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// oneSignalResponse is the subset of the provider response the engine reads.
type oneSignalResponse struct {
	ID         string `json:"id"`
	Recipients int    `json:"recipients"`
}

// The two fixed response actions attached to every SOS dispatch.
var sosButtons = []oneSignalButton{
	{ID: "help_coming", Text: "I'm coming to help"},
	{ID: "false_alarm", Text: "False alarm"},
}

type oneSignalService struct {
	appID      string
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOneSignalService creates a PushService backed by the OneSignal REST
// API. endpoint overrides the production URL when non-empty (tests).
func NewOneSignalService(appID, apiKey, endpoint string, timeout time.Duration, logger *slog.Logger) service.PushService {
	if endpoint == "" {
		endpoint = defaultOneSignalEndpoint
	}
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}

	return &oneSignalService{
		appID:    appID,
		apiKey:   apiKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Dispatch sends one batched request addressed to all recipient aliases at
// once. Transport faults never escape; they degrade to an error outcome.
func (s *oneSignalService) Dispatch(ctx context.Context, req *service.DispatchRequest) *service.DispatchOutcome {
	payload := oneSignalPayload{
		AppID:          s.appID,
		TargetChannel:  "push",
		IncludeAliases: oneSignalAliases{ExternalID: req.Aliases},
		Headings:       map[string]string{"en": req.Title},
		Contents:       map[string]string{"en": req.Body},
		Data:           req.Data,
		Priority:       notificationPriority,
		TTL:            notificationTTLSeconds,
	}
	if req.WithActions {
		payload.Buttons = sosButtons
	}

	outcome, err := s.post(ctx, &payload)
	if err != nil {
		s.logger.Warn("OneSignal dispatch failed",
			slog.Int("aliases", len(req.Aliases)),
			slog.Any("error", err),
		)

		return &service.DispatchOutcome{
			Status:       service.DispatchStatusError,
			ErrorMessage: err.Error(),
		}
	}

	return outcome
}

func (s *oneSignalService) post(ctx context.Context, payload *oneSignalPayload) (*service.DispatchOutcome, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Key %s", s.apiKey))

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "onesignal request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read onesignal response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Errorf("onesignal returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed oneSignalResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, errors.Wrap(err, "malformed onesignal response")
	}

	return &service.DispatchOutcome{
		Status:         service.DispatchStatusSuccess,
		NotificationID: parsed.ID,
		Recipients:     parsed.Recipients,
	}, nil
}
