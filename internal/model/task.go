package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskStore defines persistence operations for tasks.
type TaskStore interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (Task, error)
	GetAll(ctx context.Context) ([]Task, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]Task, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]Task, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateTaskParams) error
	UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, params UpdateTaskParams) error
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error
}

// DefaultFolder is assigned to tasks created without an explicit folder.
const DefaultFolder = "default"

// Task represents a to-do item. OwnerID is nil for tasks on the global list.
type Task struct {
	ID        uuid.UUID
	Text      string
	DueDate   time.Time
	Priority  string
	Folder    string
	Completed bool
	OwnerID   *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateTaskParams carries fields for task creation.
type CreateTaskParams struct {
	Text     string
	DueDate  time.Time
	Priority string
	Folder   string
}

// UpdateTaskParams carries fields for a full task update.
type UpdateTaskParams struct {
	Text      string
	DueDate   time.Time
	Priority  string
	Folder    string
	Completed bool
}
