package mocks

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAlertRepository is a mock implementation of repository.AlertRepository.
type MockAlertRepository struct {
	mock.Mock
}

// NewMockAlertRepository creates a new mock and registers cleanup assertions.
func NewMockAlertRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAlertRepository {
	m := &MockAlertRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockAlertRepositoryExpecter provides a typed expectation builder.
type MockAlertRepositoryExpecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation builder for this mock.
func (m *MockAlertRepository) EXPECT() *MockAlertRepositoryExpecter {
	return &MockAlertRepositoryExpecter{mock: &m.Mock}
}

func (m *MockAlertRepository) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	args := m.Called(ctx, alert)

	return args.Error(0)
}

func (e *MockAlertRepositoryExpecter) CreateAlert(ctx any, alert any) *mock.Call {
	return e.mock.On("CreateAlert", ctx, alert)
}

func (m *MockAlertRepository) FindLatestAlertBySender(ctx context.Context, senderID string) (*entity.Alert, error) {
	args := m.Called(ctx, senderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Alert), args.Error(1)
}

func (e *MockAlertRepositoryExpecter) FindLatestAlertBySender(ctx any, senderID any) *mock.Call {
	return e.mock.On("FindLatestAlertBySender", ctx, senderID)
}

func (m *MockAlertRepository) MarkAlertCancelled(ctx context.Context, id uuid.UUID, cancelledAt time.Time) (bool, error) {
	args := m.Called(ctx, id, cancelledAt)

	return args.Bool(0), args.Error(1)
}

func (e *MockAlertRepositoryExpecter) MarkAlertCancelled(ctx any, id any, cancelledAt any) *mock.Call {
	return e.mock.On("MarkAlertCancelled", ctx, id, cancelledAt)
}

func (m *MockAlertRepository) FindAlertsBySender(ctx context.Context, senderID string, limit int) ([]*entity.Alert, error) {
	args := m.Called(ctx, senderID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Alert), args.Error(1)
}

func (e *MockAlertRepositoryExpecter) FindAlertsBySender(ctx any, senderID any, limit any) *mock.Call {
	return e.mock.On("FindAlertsBySender", ctx, senderID, limit)
}

func (m *MockAlertRepository) CountAlerts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (e *MockAlertRepositoryExpecter) CountAlerts(ctx any) *mock.Call {
	return e.mock.On("CountAlerts", ctx)
}
