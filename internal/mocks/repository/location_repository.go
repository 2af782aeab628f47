// Package mocks provides testify-based mocks for the repository interfaces.
package mocks

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockLocationRepository is a mock implementation of repository.LocationRepository.
type MockLocationRepository struct {
	mock.Mock
}

// NewMockLocationRepository creates a new mock and registers cleanup assertions.
func NewMockLocationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLocationRepository {
	m := &MockLocationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockLocationRepositoryExpecter provides a typed expectation builder.
type MockLocationRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (m *MockLocationRepository) EXPECT() *MockLocationRepositoryExpecter {
	return &MockLocationRepositoryExpecter{mock: &m.Mock}
}

func (m *MockLocationRepository) UpsertLocation(ctx context.Context, location *entity.UserLocation) error {
	args := m.Called(ctx, location)

	return args.Error(0)
}

func (e *MockLocationRepositoryExpecter) UpsertLocation(ctx any, location any) *mock.Call {
	return e.mock.On("UpsertLocation", ctx, location)
}

func (m *MockLocationRepository) FindLocationByUserID(ctx context.Context, userID string) (*entity.UserLocation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.UserLocation), args.Error(1)
}

func (e *MockLocationRepositoryExpecter) FindLocationByUserID(ctx any, userID any) *mock.Call {
	return e.mock.On("FindLocationByUserID", ctx, userID)
}

func (m *MockLocationRepository) FindActiveLocations(ctx context.Context, limit int) ([]*entity.UserLocation, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.UserLocation), args.Error(1)
}

func (e *MockLocationRepositoryExpecter) FindActiveLocations(ctx any, limit any) *mock.Call {
	return e.mock.On("FindActiveLocations", ctx, limit)
}

func (m *MockLocationRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (e *MockLocationRepositoryExpecter) CountUsers(ctx any) *mock.Call {
	return e.mock.On("CountUsers", ctx)
}

func (m *MockLocationRepository) CountActiveUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (e *MockLocationRepositoryExpecter) CountActiveUsers(ctx any) *mock.Call {
	return e.mock.On("CountActiveUsers", ctx)
}
