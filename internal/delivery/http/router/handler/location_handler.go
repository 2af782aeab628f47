package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"beacon/internal/delivery/http/response"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-directory handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ReportLocationRequest represents the request body for reporting a position
type ReportLocationRequest struct {
	UserID     string  `json:"user_id" validate:"required"`
	Latitude   float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64 `json:"longitude" validate:"min=-180,max=180"`
	ExternalID string  `json:"external_id" validate:"required"`
	DeviceType string  `json:"device_type"`
}

// LocationResponse is the wire form of a stored position
type LocationResponse struct {
	UserID     string    `json:"user_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	LastUpdate time.Time `json:"last_update"`
}

// ReportLocation handles POST /api/users/location
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	var req ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ReportLocationInput{
		UserID:     req.UserID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		ExternalID: req.ExternalID,
		DeviceType: req.DeviceType,
	}

	location, err := h.locationUC.ReportLocation(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id": location.UserID,
	}, "Location updated successfully")
}

// GetLocation handles GET /api/users/:id/location
func (h *LocationHandler) GetLocation(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return response.BadRequest(c, "INVALID_ID", "User ID is required")
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &LocationResponse{
		UserID:     location.UserID,
		Latitude:   location.Latitude,
		Longitude:  location.Longitude,
		LastUpdate: location.LastUpdate,
	}, "Location retrieved successfully")
}

// FindNearby handles GET /api/users/nearby
func (h *LocationHandler) FindNearby(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil || latitude < -90 || latitude > 90 {
		return response.BadRequest(c, "VALIDATION_ERROR", "latitude must be a number in [-90, 90]")
	}

	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil || longitude < -180 || longitude > 180 {
		return response.BadRequest(c, "VALIDATION_ERROR", "longitude must be a number in [-180, 180]")
	}

	radiusMeters := 0.0
	if raw := c.QueryParam("radius_meters"); raw != "" {
		radiusMeters, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusMeters <= 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "radius_meters must be a positive number")
		}
	}

	candidates, err := h.locationUC.FindNearby(c.Request().Context(), latitude, longitude, radiusMeters)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"latitude":  latitude,
		"longitude": longitude,
		"count":     len(candidates),
		"users":     candidates,
	}, "Nearby users retrieved successfully")
}

// handleAppError handles application errors
func (h *LocationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
