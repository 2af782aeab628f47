package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"beacon/config"
	"beacon/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEventHandler() *EventHandler {
	return &EventHandler{
		verifyPushAuth: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestEventHandler_HandlePush_Success(t *testing.T) {
	h := newTestEventHandler()

	event := &service.AlertEvent{
		AlertID:      "notif-123",
		SenderID:     "sender-1",
		AlertType:    "sos",
		Status:       "dispatched",
		Latitude:     50.45,
		Longitude:    30.52,
		RadiusMeters: 300,
		Recipients:   []string{"ext-2", "ext-3"},
		RequestID:    "req-1",
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	body := map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(payload),
			"attributes": map[string]string{"request_id": "req-1"},
			"messageId":  "m-1",
		},
		"subscription": "projects/test/subscriptions/alerts",
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(raw)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEventHandler_HandlePush_BadBase64(t *testing.T) {
	h := newTestEventHandler()

	body := `{"message":{"data":"%%%not-base64%%%","messageId":"m-1"},"subscription":"s"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventHandler_HandlePush_RejectsMissingToken(t *testing.T) {
	h := &EventHandler{
		verifyPushAuth: true,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewEventHandler_VerifiesOnlyGoogleOutsideDevelop(t *testing.T) {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: "google"},
	}
	cfg.Env.Env = "production"

	h := NewEventHandler(EventHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.True(t, h.verifyPushAuth)

	cfg.Env.Env = "develop"
	h = NewEventHandler(EventHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.False(t, h.verifyPushAuth)
}
