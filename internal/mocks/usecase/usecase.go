// Package mocks provides testify-based mocks for the usecase interfaces.
package mocks

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockLocationUsecase is a mock implementation of usecase.LocationUsecase.
type MockLocationUsecase struct {
	mock.Mock
}

// NewMockLocationUsecase creates a new mock and registers cleanup assertions.
func NewMockLocationUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLocationUsecase {
	m := &MockLocationUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockLocationUsecaseExpecter provides a typed expectation builder.
type MockLocationUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (m *MockLocationUsecase) EXPECT() *MockLocationUsecaseExpecter {
	return &MockLocationUsecaseExpecter{mock: &m.Mock}
}

func (m *MockLocationUsecase) ReportLocation(ctx context.Context, input *usecase.ReportLocationInput) (*entity.UserLocation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.UserLocation), args.Error(1)
}

func (e *MockLocationUsecaseExpecter) ReportLocation(ctx any, input any) *mock.Call {
	return e.mock.On("ReportLocation", ctx, input)
}

func (m *MockLocationUsecase) GetLocation(ctx context.Context, userID string) (*entity.UserLocation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.UserLocation), args.Error(1)
}

func (e *MockLocationUsecaseExpecter) GetLocation(ctx any, userID any) *mock.Call {
	return e.mock.On("GetLocation", ctx, userID)
}

func (m *MockLocationUsecase) FindNearby(ctx context.Context, latitude, longitude, radiusMeters float64) ([]*service.Candidate, error) {
	args := m.Called(ctx, latitude, longitude, radiusMeters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*service.Candidate), args.Error(1)
}

func (e *MockLocationUsecaseExpecter) FindNearby(ctx, latitude, longitude, radiusMeters any) *mock.Call {
	return e.mock.On("FindNearby", ctx, latitude, longitude, radiusMeters)
}

// MockAlertUsecase is a mock implementation of usecase.AlertUsecase.
type MockAlertUsecase struct {
	mock.Mock
}

// NewMockAlertUsecase creates a new mock and registers cleanup assertions.
func NewMockAlertUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAlertUsecase {
	m := &MockAlertUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockAlertUsecaseExpecter provides a typed expectation builder.
type MockAlertUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (m *MockAlertUsecase) EXPECT() *MockAlertUsecaseExpecter {
	return &MockAlertUsecaseExpecter{mock: &m.Mock}
}

func (m *MockAlertUsecase) TriggerSOS(ctx context.Context, input *usecase.TriggerSOSInput) (*usecase.SOSResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.SOSResult), args.Error(1)
}

func (e *MockAlertUsecaseExpecter) TriggerSOS(ctx any, input any) *mock.Call {
	return e.mock.On("TriggerSOS", ctx, input)
}

func (m *MockAlertUsecase) CancelSOS(ctx context.Context, senderID string) (*usecase.CancelResult, error) {
	args := m.Called(ctx, senderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CancelResult), args.Error(1)
}

func (e *MockAlertUsecaseExpecter) CancelSOS(ctx any, senderID any) *mock.Call {
	return e.mock.On("CancelSOS", ctx, senderID)
}

func (m *MockAlertUsecase) AlertHistory(ctx context.Context, senderID string, limit int) ([]*entity.Alert, error) {
	args := m.Called(ctx, senderID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Alert), args.Error(1)
}

func (e *MockAlertUsecaseExpecter) AlertHistory(ctx any, senderID any, limit any) *mock.Call {
	return e.mock.On("AlertHistory", ctx, senderID, limit)
}

// MockStatsUsecase is a mock implementation of usecase.StatsUsecase.
type MockStatsUsecase struct {
	mock.Mock
}

// NewMockStatsUsecase creates a new mock and registers cleanup assertions.
func NewMockStatsUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStatsUsecase {
	m := &MockStatsUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockStatsUsecaseExpecter provides a typed expectation builder.
type MockStatsUsecaseExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (m *MockStatsUsecase) EXPECT() *MockStatsUsecaseExpecter {
	return &MockStatsUsecaseExpecter{mock: &m.Mock}
}

func (m *MockStatsUsecase) Overview(ctx context.Context) (*usecase.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.Stats), args.Error(1)
}

func (e *MockStatsUsecaseExpecter) Overview(ctx any) *mock.Call {
	return e.mock.On("Overview", ctx)
}
