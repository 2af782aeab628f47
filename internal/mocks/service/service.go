// Package mocks provides testify-based mocks for the domain service interfaces.
package mocks

import (
	"context"

	"beacon/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/mock"
)

// MockPushService is a mock implementation of service.PushService.
type MockPushService struct {
	mock.Mock
}

// NewMockPushService creates a new mock and registers cleanup assertions.
func NewMockPushService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPushService {
	m := &MockPushService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPushServiceExpecter provides a typed expectation builder.
type MockPushServiceExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (m *MockPushService) EXPECT() *MockPushServiceExpecter {
	return &MockPushServiceExpecter{mock: &m.Mock}
}

func (m *MockPushService) Dispatch(ctx context.Context, req *service.DispatchRequest) *service.DispatchOutcome {
	args := m.Called(ctx, req)

	return args.Get(0).(*service.DispatchOutcome)
}

func (e *MockPushServiceExpecter) Dispatch(ctx any, req any) *mock.Call {
	return e.mock.On("Dispatch", ctx, req)
}

// MockProximityMatcher is a mock implementation of service.ProximityMatcher.
type MockProximityMatcher struct {
	mock.Mock
}

// NewMockProximityMatcher creates a new mock and registers cleanup assertions.
func NewMockProximityMatcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProximityMatcher {
	m := &MockProximityMatcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockProximityMatcherExpecter provides a typed expectation builder.
type MockProximityMatcherExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (m *MockProximityMatcher) EXPECT() *MockProximityMatcherExpecter {
	return &MockProximityMatcherExpecter{mock: &m.Mock}
}

func (m *MockProximityMatcher) FindWithinRadius(ctx context.Context, center orb.Point, radiusMeters float64, excludeUserID string) ([]*service.Candidate, error) {
	args := m.Called(ctx, center, radiusMeters, excludeUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*service.Candidate), args.Error(1)
}

func (e *MockProximityMatcherExpecter) FindWithinRadius(ctx, center, radiusMeters, excludeUserID any) *mock.Call {
	return e.mock.On("FindWithinRadius", ctx, center, radiusMeters, excludeUserID)
}

// MockEventPublisher is a mock implementation of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a new mock and registers cleanup assertions.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockEventPublisherExpecter provides a typed expectation builder.
type MockEventPublisherExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (m *MockEventPublisher) EXPECT() *MockEventPublisherExpecter {
	return &MockEventPublisherExpecter{mock: &m.Mock}
}

func (m *MockEventPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (e *MockEventPublisherExpecter) PublishAlertEvent(ctx any, event any) *mock.Call {
	return e.mock.On("PublishAlertEvent", ctx, event)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

func (e *MockEventPublisherExpecter) Close() *mock.Call {
	return e.mock.On("Close")
}
