package impl

import (
	"context"
	"testing"

	mockRepo "beacon/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Overview(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	svc := NewStatsService(mockLocationRepo, mockAlertRepo)

	ctx := context.Background()
	mockLocationRepo.EXPECT().CountUsers(ctx).Return(int64(12), nil)
	mockLocationRepo.EXPECT().CountActiveUsers(ctx).Return(int64(9), nil)
	mockAlertRepo.EXPECT().CountAlerts(ctx).Return(int64(4), nil)

	stats, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(9), stats.ActiveUsers)
	assert.Equal(t, int64(4), stats.TotalAlerts)
	assert.False(t, stats.Timestamp.IsZero())
}

func TestStatsService_Overview_CountError(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	mockAlertRepo := mockRepo.NewMockAlertRepository(t)
	svc := NewStatsService(mockLocationRepo, mockAlertRepo)

	ctx := context.Background()
	mockLocationRepo.EXPECT().CountUsers(ctx).Return(int64(0), errors.New("db down"))

	stats, err := svc.Overview(ctx)
	require.Error(t, err)
	assert.Nil(t, stats)
}
