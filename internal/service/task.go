package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mytasks/mytasks-server/internal/logger"
	"github.com/mytasks/mytasks-server/internal/model"
)

// weekSpan is the number of days after the start date included in a week
// listing; the window is inclusive on both ends.
const weekSpan = 6

// Task implements task operations and the ownership guard.
type Task struct {
	taskStore model.TaskStore
	logger    *logger.Logger
	now       func() time.Time
}

func NewTask(taskStore model.TaskStore, logger *logger.Logger) *Task {
	return &Task{
		taskStore: taskStore,
		logger:    logger,
		now:       time.Now,
	}
}

// Authorize confirms the task exists and belongs to ownerID. A missing task
// and a task owned by someone else both return model.ErrNotFound so callers
// cannot tell the cases apart.
func (s *Task) Authorize(ctx context.Context, ownerID, taskID uuid.UUID) (model.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return model.Task{}, err
	}

	if task.OwnerID == nil || *task.OwnerID != ownerID {
		return model.Task{}, model.ErrNotFound
	}

	return task, nil
}

// CreateForOwner creates a task on the owner's list. Unlike the global
// creation path, folder is required here.
func (s *Task) CreateForOwner(ctx context.Context, ownerID uuid.UUID, params model.CreateTaskParams) (model.Task, error) {
	if params.Folder == "" {
		return model.Task{}, model.NewValidationError("folder")
	}

	task := model.Task{
		ID:       uuid.New(),
		Text:     params.Text,
		DueDate:  params.DueDate,
		Priority: params.Priority,
		Folder:   params.Folder,
		OwnerID:  &ownerID,
	}

	savedTask, err := s.taskStore.Create(ctx, task)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task service: task created", "task_id", savedTask.ID, "owner_id", ownerID)

	return savedTask, nil
}

// CreateGlobal creates a task on the global, ownerless list. Folder defaults
// to "default" when absent.
func (s *Task) CreateGlobal(ctx context.Context, params model.CreateTaskParams) (model.Task, error) {
	if params.Folder == "" {
		params.Folder = model.DefaultFolder
	}

	task := model.Task{
		ID:       uuid.New(),
		Text:     params.Text,
		DueDate:  params.DueDate,
		Priority: params.Priority,
		Folder:   params.Folder,
	}

	savedTask, err := s.taskStore.Create(ctx, task)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task service: global task created", "task_id", savedTask.ID)

	return savedTask, nil
}

func (s *Task) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error) {
	tasks, err := s.taskStore.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by owner: %w", err)
	}

	return tasks, nil
}

func (s *Task) ListAll(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.taskStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	return tasks, nil
}

// UpdateOwned replaces the task's fields after the ownership guard passes.
// The write itself is keyed on (id, owner) so a concurrent delete surfaces as
// not found rather than touching another row.
func (s *Task) UpdateOwned(ctx context.Context, ownerID, taskID uuid.UUID, params model.UpdateTaskParams) error {
	if _, err := s.Authorize(ctx, ownerID, taskID); err != nil {
		return err
	}

	return s.taskStore.UpdateOwned(ctx, taskID, ownerID, params)
}

// DeleteOwned removes the task after the ownership guard passes.
func (s *Task) DeleteOwned(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if _, err := s.Authorize(ctx, ownerID, taskID); err != nil {
		return err
	}

	return s.taskStore.DeleteOwned(ctx, taskID, ownerID)
}

// SetCompleted flips the completion flag of a task on the global list. No
// ownership check applies on this path.
func (s *Task) SetCompleted(ctx context.Context, taskID uuid.UUID, completed bool) error {
	return s.taskStore.SetCompleted(ctx, taskID, completed)
}

// DeleteGlobal removes a task from the global list. No ownership check
// applies on this path.
func (s *Task) DeleteGlobal(ctx context.Context, taskID uuid.UUID) error {
	return s.taskStore.Delete(ctx, taskID)
}

// ListWeek returns tasks due within the seven-day window starting at start,
// inclusive of both the first and the last day. A nil start means today.
func (s *Task) ListWeek(ctx context.Context, start *time.Time) ([]model.Task, error) {
	from := s.now().Truncate(24 * time.Hour)
	if start != nil {
		from = *start
	}
	to := from.AddDate(0, 0, weekSpan)

	tasks, err := s.taskStore.GetByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks for week: %w", err)
	}

	return tasks, nil
}
