package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mytasks/mytasks-server/internal/logger"
	"github.com/mytasks/mytasks-server/internal/model"
)

// TaskService defines task operations behind the HTTP surface.
type TaskService interface {
	CreateForOwner(ctx context.Context, ownerID uuid.UUID, params model.CreateTaskParams) (model.Task, error)
	CreateGlobal(ctx context.Context, params model.CreateTaskParams) (model.Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error)
	ListAll(ctx context.Context) ([]model.Task, error)
	UpdateOwned(ctx context.Context, ownerID, taskID uuid.UUID, params model.UpdateTaskParams) error
	DeleteOwned(ctx context.Context, ownerID, taskID uuid.UUID) error
	SetCompleted(ctx context.Context, taskID uuid.UUID, completed bool) error
	DeleteGlobal(ctx context.Context, taskID uuid.UUID) error
	ListWeek(ctx context.Context, start *time.Time) ([]model.Task, error)
}

// Task handles the owner-scoped and global task endpoints.
type Task struct {
	taskService    TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		taskService:    taskService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createTaskRequest struct {
	Text     string `json:"text"`
	Date     string `json:"date"`
	Priority string `json:"priority"`
	Folder   string `json:"folder"`
}

type updateTaskRequest struct {
	Text      string `json:"text"`
	Date      string `json:"date"`
	Priority  string `json:"priority"`
	Folder    string `json:"folder"`
	Completed *bool  `json:"completed"`
}

type patchTaskRequest struct {
	Completed *bool `json:"completed"`
}

// authorizedUserID resolves the mutation authority for owner-scoped routes:
// always the token's user id. The path segment must match it; a mismatch is
// answered with the same not-found shape the ownership guard produces.
func (h *Task) authorizedUserID(r *http.Request, pathVar string) (uuid.UUID, error) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		return uuid.Nil, model.ErrInvalidToken
	}

	pathID, err := uuid.Parse(mux.Vars(r)[pathVar])
	if err != nil || pathID != claims.UserID {
		return uuid.Nil, model.ErrNotFound
	}

	return claims.UserID, nil
}

// ListUserTasks handles GET /usuario/{id}/tasks.
func (h *Task) ListUserTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authorizedUserID(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	tasks, err := h.taskService.ListByOwner(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	// An empty list answers 404 rather than an empty array.
	if len(tasks) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no tasks found"})
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponses(tasks))
}

// CreateUserTask handles POST /usuario/{id}/task. Folder is required on this
// path, unlike global creation.
func (h *Task) CreateUserTask(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authorizedUserID(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Text == "" || req.Date == "" || req.Priority == "" || req.Folder == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text, date, priority and folder are required"})
		return
	}

	dueDate, err := parseDate(req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}

	task, err := h.taskService.CreateForOwner(r.Context(), userID, model.CreateTaskParams{
		Text:     req.Text,
		DueDate:  dueDate,
		Priority: req.Priority,
		Folder:   req.Folder,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": task.ID.String()})
}

// UpdateUserTask handles PUT /usuario/{uid}/task/{tid}.
func (h *Task) UpdateUserTask(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authorizedUserID(r, "uid")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	taskID, err := uuid.Parse(mux.Vars(r)["tid"])
	if err != nil {
		handleError(w, h.logger, model.ErrNotFound)
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Text == "" || req.Date == "" || req.Priority == "" || req.Folder == "" || req.Completed == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text, date, priority, folder and completed are required"})
		return
	}

	dueDate, err := parseDate(req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}

	err = h.taskService.UpdateOwned(r.Context(), userID, taskID, model.UpdateTaskParams{
		Text:      req.Text,
		DueDate:   dueDate,
		Priority:  req.Priority,
		Folder:    req.Folder,
		Completed: *req.Completed,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "task updated"})
}

// DeleteUserTask handles DELETE /usuario/{uid}/task/{tid}.
func (h *Task) DeleteUserTask(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authorizedUserID(r, "uid")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	taskID, err := uuid.Parse(mux.Vars(r)["tid"])
	if err != nil {
		handleError(w, h.logger, model.ErrNotFound)
		return
	}

	if err := h.taskService.DeleteOwned(r.Context(), userID, taskID); err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}

// CreateTask handles POST /tasks. Folder is optional and defaults server-side.
func (h *Task) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Text == "" || req.Date == "" || req.Priority == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text, date and priority are required"})
		return
	}

	dueDate, err := parseDate(req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}

	task, err := h.taskService.CreateGlobal(r.Context(), model.CreateTaskParams{
		Text:     req.Text,
		DueDate:  dueDate,
		Priority: req.Priority,
		Folder:   req.Folder,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(task))
}

// GetTasks handles GET /tasks.
func (h *Task) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListAll(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponses(tasks))
}

// DeleteTask handles DELETE /tasks/{id}.
func (h *Task) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		handleError(w, h.logger, model.ErrNotFound)
		return
	}

	if err := h.taskService.DeleteGlobal(r.Context(), taskID); err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}

// PatchTask handles PATCH /tasks/{id}. Only the completed flag may change.
func (h *Task) PatchTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		handleError(w, h.logger, model.ErrNotFound)
		return
	}

	var req patchTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Completed == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "completed is required"})
		return
	}

	if err := h.taskService.SetCompleted(r.Context(), taskID, *req.Completed); err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "task updated"})
}

// GetWeekTasks handles GET /tasks/week with an optional start query date.
func (h *Task) GetWeekTasks(w http.ResponseWriter, r *http.Request) {
	var start *time.Time
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "start must be YYYY-MM-DD"})
			return
		}
		start = &parsed
	}

	tasks, err := h.taskService.ListWeek(r.Context(), start)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponses(tasks))
}
