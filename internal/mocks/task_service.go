package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mytasks/mytasks-server/internal/model"
)

// TaskService is a mock implementation of handler.TaskService.
type TaskService struct {
	mock.Mock
}

func (m *TaskService) CreateForOwner(ctx context.Context, ownerID uuid.UUID, params model.CreateTaskParams) (model.Task, error) {
	args := m.Called(ctx, ownerID, params)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskService) CreateGlobal(ctx context.Context, params model.CreateTaskParams) (model.Task, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Task), args.Error(1)
}

func (m *TaskService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *TaskService) ListAll(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *TaskService) UpdateOwned(ctx context.Context, ownerID, taskID uuid.UUID, params model.UpdateTaskParams) error {
	args := m.Called(ctx, ownerID, taskID, params)
	return args.Error(0)
}

func (m *TaskService) DeleteOwned(ctx context.Context, ownerID, taskID uuid.UUID) error {
	args := m.Called(ctx, ownerID, taskID)
	return args.Error(0)
}

func (m *TaskService) SetCompleted(ctx context.Context, taskID uuid.UUID, completed bool) error {
	args := m.Called(ctx, taskID, completed)
	return args.Error(0)
}

func (m *TaskService) DeleteGlobal(ctx context.Context, taskID uuid.UUID) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *TaskService) ListWeek(ctx context.Context, start *time.Time) ([]model.Task, error) {
	args := m.Called(ctx, start)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}
