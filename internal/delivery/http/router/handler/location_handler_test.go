package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/service"
	mockUC "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationHandler_ReportLocation_Success(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := &LocationHandler{locationUC: mockLocationUC, logger: testHandlerLogger()}

	body := `{"user_id":"user-1","latitude":50.45,"longitude":30.52,"external_id":"ext-1","device_type":"ios"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/users/location", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockLocationUC.EXPECT().
		ReportLocation(mock.Anything, &usecase.ReportLocationInput{
			UserID:     "user-1",
			Latitude:   50.45,
			Longitude:  30.52,
			ExternalID: "ext-1",
			DeviceType: "ios",
		}).
		Return(&entity.UserLocation{UserID: "user-1"}, nil)

	require.NoError(t, h.ReportLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Location updated successfully")
}

func TestLocationHandler_ReportLocation_MissingUserID(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := &LocationHandler{locationUC: mockLocationUC, logger: testHandlerLogger()}

	body := `{"latitude":50.45,"longitude":30.52,"external_id":"ext-1"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/users/location", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ReportLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockLocationUC.AssertNotCalled(t, "ReportLocation", mock.Anything, mock.Anything)
}

func TestLocationHandler_GetLocation_Success(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := &LocationHandler{locationUC: mockLocationUC, logger: testHandlerLogger()}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/users/user-1/location", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user-1")

	lastUpdate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockLocationUC.EXPECT().
		GetLocation(mock.Anything, "user-1").
		Return(&entity.UserLocation{
			UserID:     "user-1",
			Latitude:   50.45,
			Longitude:  30.52,
			LastUpdate: lastUpdate,
		}, nil)

	require.NoError(t, h.GetLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data LocationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.Data.UserID)
	assert.InDelta(t, 50.45, resp.Data.Latitude, 1e-9)
	assert.InDelta(t, 30.52, resp.Data.Longitude, 1e-9)
	assert.True(t, lastUpdate.Equal(resp.Data.LastUpdate))
}

func TestLocationHandler_GetLocation_NotFound(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := &LocationHandler{locationUC: mockLocationUC, logger: testHandlerLogger()}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/users/missing/location", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	mockLocationUC.EXPECT().
		GetLocation(mock.Anything, "missing").
		Return(nil, domainerrors.ErrUserNotFound)

	require.NoError(t, h.GetLocation(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestLocationHandler_FindNearby_Success(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := &LocationHandler{locationUC: mockLocationUC, logger: testHandlerLogger()}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/users/nearby?latitude=50.45&longitude=30.52&radius_meters=300", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockLocationUC.EXPECT().
		FindNearby(mock.Anything, 50.45, 30.52, 300.0).
		Return([]*service.Candidate{
			{UserID: "user-2", ExternalID: "ext-2", DistanceMeters: 41.5},
		}, nil)

	require.NoError(t, h.FindNearby(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Count int                  `json:"count"`
			Users []*service.Candidate `json:"users"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Count)
	require.Len(t, resp.Data.Users, 1)
	assert.Equal(t, "user-2", resp.Data.Users[0].UserID)
}

func TestLocationHandler_FindNearby_RejectsBadCoordinates(t *testing.T) {
	mockLocationUC := mockUC.NewMockLocationUsecase(t)
	h := &LocationHandler{locationUC: mockLocationUC, logger: testHandlerLogger()}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/users/nearby?latitude=abc&longitude=30.52", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.FindNearby(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockLocationUC.AssertNotCalled(t, "FindNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
