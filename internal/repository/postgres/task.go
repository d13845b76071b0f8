package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mytasks/mytasks-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

const taskColumns = `id, text, due_date, priority, folder, completed, owner_id, created_at, updated_at`

func scanTask(row pgx.Row) (model.Task, error) {
	var task model.Task
	err := row.Scan(
		&task.ID, &task.Text, &task.DueDate, &task.Priority, &task.Folder,
		&task.Completed, &task.OwnerID, &task.CreatedAt, &task.UpdatedAt,
	)
	return task, err
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query := `INSERT INTO tasks (id, text, due_date, priority, folder, completed, owner_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + taskColumns

	savedTask, err := scanTask(r.db.QueryRow(ctx, query,
		task.ID, task.Text, task.DueDate, task.Priority, task.Folder,
		task.Completed, task.OwnerID,
	))
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return savedTask, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) GetAll(ctx context.Context) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *TaskRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by owner: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// GetByDateRange returns tasks due between start and end, inclusive on both
// bounds.
func (r *TaskRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
			  WHERE due_date >= $1 AND due_date <= $2
			  ORDER BY due_date ASC`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by date range: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateTaskParams) error {
	query := `UPDATE tasks
			  SET text = $2, due_date = $3, priority = $4, folder = $5, completed = $6, updated_at = NOW()
			  WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id, params.Text, params.DueDate, params.Priority, params.Folder, params.Completed)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// UpdateOwned updates the task only when it belongs to ownerID. Keying the
// statement on both id and owner closes the window between the ownership
// check and the write; zero rows affected reads as not found.
func (r *TaskRepository) UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, params model.UpdateTaskParams) error {
	query := `UPDATE tasks
			  SET text = $3, due_date = $4, priority = $5, folder = $6, completed = $7, updated_at = NOW()
			  WHERE id = $1 AND owner_id = $2`

	cmd, err := r.db.Exec(ctx, query, id, ownerID, params.Text, params.DueDate, params.Priority, params.Folder, params.Completed)
	if err != nil {
		return fmt.Errorf("failed to update owned task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	query := `UPDATE tasks SET completed = $2, updated_at = NOW() WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id, completed)
	if err != nil {
		return fmt.Errorf("failed to set task completed: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteOwned deletes the task only when it belongs to ownerID.
func (r *TaskRepository) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`

	cmd, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete owned task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func collectTasks(rows pgx.Rows) ([]model.Task, error) {
	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
