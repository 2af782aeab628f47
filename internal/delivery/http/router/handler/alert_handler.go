package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"beacon/internal/delivery/http/response"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler holds dependencies for SOS alert handlers
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// SOSRequest represents the request body for raising an SOS alert
type SOSRequest struct {
	UserID       string  `json:"user_id" validate:"required"`
	Latitude     float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusMeters float64 `json:"radius_meters" validate:"omitempty,gt=0"`
	Message      string  `json:"message"`
	ExternalID   string  `json:"external_id"`
}

// CancelRequest represents the request body for cancelling an SOS alert
type CancelRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// TriggerSOS handles POST /api/alerts/sos
func (h *AlertHandler) TriggerSOS(c echo.Context) error {
	var req SOSRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid SOS input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.TriggerSOSInput{
		UserID:       req.UserID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		Message:      req.Message,
		ExternalID:   req.ExternalID,
	}

	result, err := h.alertUC.TriggerSOS(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "SOS alert processed")
}

// CancelSOS handles POST /api/alerts/cancel
func (h *AlertHandler) CancelSOS(c echo.Context) error {
	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancel input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.alertUC.CancelSOS(c.Request().Context(), req.UserID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, result.Message)
}

// AlertHistory handles GET /api/alerts/history/:id
func (h *AlertHandler) AlertHistory(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return response.BadRequest(c, "INVALID_ID", "User ID is required")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "limit must be a positive integer")
		}
		limit = parsed
	}

	alerts, err := h.alertUC.AlertHistory(c.Request().Context(), userID, limit)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id":      userID,
		"total_alerts": len(alerts),
		"alerts":       alerts,
	}, "Alert history retrieved successfully")
}

// handleAppError handles application errors
func (h *AlertHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
