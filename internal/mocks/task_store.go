package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mytasks/mytasks-server/internal/model"
)

// TaskStore is a mock implementation of model.TaskStore.
type TaskStore struct {
	mock.Mock
}

func (m *TaskStore) Create(ctx context.Context, task model.Task) (model.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (model.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskStore) GetAll(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *TaskStore) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *TaskStore) GetByDateRange(ctx context.Context, start, end time.Time) ([]model.Task, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *TaskStore) Update(ctx context.Context, id uuid.UUID, params model.UpdateTaskParams) error {
	args := m.Called(ctx, id, params)
	return args.Error(0)
}

func (m *TaskStore) UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, params model.UpdateTaskParams) error {
	args := m.Called(ctx, id, ownerID, params)
	return args.Error(0)
}

func (m *TaskStore) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	args := m.Called(ctx, id, completed)
	return args.Error(0)
}

func (m *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TaskStore) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}
