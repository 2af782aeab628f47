package impl

import (
	"context"
	"testing"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	mockRepo "beacon/internal/mocks/repository"
	mockSvc "beacon/internal/mocks/service"
	"beacon/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationService_ReportLocation_Success(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockMatcher := mockSvc.NewMockProximityMatcher(t)
	svc := NewLocationService(mockLocationRepo, mockMatcher, testAlertConfig(), testLogger())

	ctx := context.Background()
	input := &usecase.ReportLocationInput{
		UserID:     "user-1",
		Latitude:   50.45,
		Longitude:  30.52,
		ExternalID: "ext-1",
		DeviceType: "ios",
	}

	var upserted *entity.UserLocation
	mockLocationRepo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Run(func(args mock.Arguments) {
			upserted = args.Get(1).(*entity.UserLocation)
		}).
		Return(nil)

	location, err := svc.ReportLocation(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, location)

	require.NotNil(t, upserted)
	assert.Equal(t, "user-1", upserted.UserID)
	assert.Equal(t, "ext-1", upserted.ExternalID)
	assert.Equal(t, "ios", upserted.DeviceType)
	assert.True(t, upserted.Active)
	assert.False(t, upserted.LastUpdate.IsZero())
}

func TestLocationService_ReportLocation_DefaultDeviceType(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockMatcher := mockSvc.NewMockProximityMatcher(t)
	svc := NewLocationService(mockLocationRepo, mockMatcher, testAlertConfig(), testLogger())

	ctx := context.Background()
	var upserted *entity.UserLocation
	mockLocationRepo.EXPECT().
		UpsertLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
		Run(func(args mock.Arguments) {
			upserted = args.Get(1).(*entity.UserLocation)
		}).
		Return(nil)

	_, err := svc.ReportLocation(ctx, &usecase.ReportLocationInput{
		UserID:     "user-1",
		Latitude:   1,
		Longitude:  2,
		ExternalID: "ext-1",
	})
	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.Equal(t, "android", upserted.DeviceType)
}

func TestLocationService_GetLocation_Found(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockMatcher := mockSvc.NewMockProximityMatcher(t)
	svc := NewLocationService(mockLocationRepo, mockMatcher, testAlertConfig(), testLogger())

	ctx := context.Background()
	expected := &entity.UserLocation{UserID: "user-1", Latitude: 50.45, Longitude: 30.52}

	mockLocationRepo.EXPECT().
		FindLocationByUserID(ctx, "user-1").
		Return(expected, nil)

	location, err := svc.GetLocation(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, expected, location)
}

func TestLocationService_GetLocation_NotFound(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockMatcher := mockSvc.NewMockProximityMatcher(t)
	svc := NewLocationService(mockLocationRepo, mockMatcher, testAlertConfig(), testLogger())

	ctx := context.Background()
	mockLocationRepo.EXPECT().
		FindLocationByUserID(ctx, "missing").
		Return(nil, repository.ErrLocationNotFound)

	location, err := svc.GetLocation(ctx, "missing")
	require.Error(t, err)
	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestLocationService_FindNearby_DefaultRadius(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockMatcher := mockSvc.NewMockProximityMatcher(t)
	svc := NewLocationService(mockLocationRepo, mockMatcher, testAlertConfig(), testLogger())

	ctx := context.Background()
	expected := []*service.Candidate{
		{UserID: "user-2", ExternalID: "ext-2", DistanceMeters: 166.77},
	}

	mockMatcher.EXPECT().
		FindWithinRadius(ctx, orb.Point{30.52, 50.45}, 200.0, "").
		Return(expected, nil)

	candidates, err := svc.FindNearby(ctx, 50.45, 30.52, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, candidates)
}
