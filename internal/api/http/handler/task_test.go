package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/mytasks/mytasks-server/internal/api/http/context"
	"github.com/mytasks/mytasks-server/internal/mocks"
	"github.com/mytasks/mytasks-server/internal/model"
	"github.com/mytasks/mytasks-server/internal/testutil"
)

var ctxMgr = httpctx.NewManager()

// authedRequest builds a request carrying session claims and mux path vars.
func authedRequest(method, target, body string, userID uuid.UUID, vars map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := ctxMgr.SetClaimsToContext(req.Context(), model.SessionClaims{UserID: userID, Name: "Ana", Email: "a@x.com"})
	return mux.SetURLVars(req.WithContext(ctx), vars)
}

func newTaskHandler(svc *mocks.TaskService) *Task {
	return NewTask(svc, ctxMgr, testutil.MakeNoopLogger())
}

func TestTask_ListUserTasks(t *testing.T) {
	svc := &mocks.TaskService{}
	userID := uuid.New()
	svc.On("ListByOwner", mock.Anything, userID).Return([]model.Task{
		{ID: uuid.New(), Text: "write report", DueDate: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), Priority: "high", Folder: "work", OwnerID: &userID},
	}, nil)

	h := newTaskHandler(svc)
	rec := httptest.NewRecorder()
	h.ListUserTasks(rec, authedRequest(http.MethodGet, "/usuario/"+userID.String()+"/tasks", "", userID, map[string]string{"id": userID.String()}))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "2026-08-26", resp[0]["date"])
}

func TestTask_ListUserTasks_EmptyIs404(t *testing.T) {
	svc := &mocks.TaskService{}
	userID := uuid.New()
	svc.On("ListByOwner", mock.Anything, userID).Return([]model.Task{}, nil)

	h := newTaskHandler(svc)
	rec := httptest.NewRecorder()
	h.ListUserTasks(rec, authedRequest(http.MethodGet, "/usuario/"+userID.String()+"/tasks", "", userID, map[string]string{"id": userID.String()}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTask_ListUserTasks_PathMismatchIs404(t *testing.T) {
	svc := &mocks.TaskService{}
	userID := uuid.New()
	other := uuid.New()

	h := newTaskHandler(svc)
	rec := httptest.NewRecorder()
	h.ListUserTasks(rec, authedRequest(http.MethodGet, "/usuario/"+other.String()+"/tasks", "", userID, map[string]string{"id": other.String()}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
}

func TestTask_CreateUserTask_RequiresFolder(t *testing.T) {
	svc := &mocks.TaskService{}
	userID := uuid.New()

	h := newTaskHandler(svc)
	rec := httptest.NewRecorder()
	h.CreateUserTask(rec, authedRequest(http.MethodPost, "/usuario/"+userID.String()+"/task",
		`{"text":"write report","date":"2026-08-26","priority":"high"}`,
		userID, map[string]string{"id": userID.String()}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateForOwner", mock.Anything, mock.Anything, mock.Anything)
}

func TestTask_CreateUserTask_Success(t *testing.T) {
	svc := &mocks.TaskService{}
	userID := uuid.New()
	svc.On("CreateForOwner", mock.Anything, userID, model.CreateTaskParams{
		Text:     "write report",
		DueDate:  time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
		Priority: "high",
		Folder:   "work",
	}).Return(model.Task{ID: uuid.New(), OwnerID: &userID}, nil)

	h := newTaskHandler(svc)
	rec := httptest.NewRecorder()
	h.CreateUserTask(rec, authedRequest(http.MethodPost, "/usuario/"+userID.String()+"/task",
		`{"text":"write report","date":"2026-08-26","priority":"high","folder":"work"}`,
		userID, map[string]string{"id": userID.String()}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestTask_UpdateUserTask_NotOwnedIs404(t *testing.T) {
	svc := &mocks.TaskService{}
	userID := uuid.New()
	taskID := uuid.New()
	svc.On("UpdateOwned", mock.Anything, userID, taskID, mock.Anything).Return(model.ErrNotFound)

	h := newTaskHandler(svc)
	rec := httptest.NewRecorder()
	h.UpdateUserTask(rec, authedRequest(http.MethodPut, "/usuario/"+userID.String()+"/task/"+taskID.String(),
		`{"text":"x","date":"2026-08-26","priority":"low","folder":"work","completed":true}`,
		userID, map[string]string{"uid": userID.String(), "tid": taskID.String()}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTask_UpdateUserTask_MissingCompleted(t *testing.T) {
	svc := &mocks.TaskService{}
	userID := uuid.New()
	taskID := uuid.New()

	h := newTaskHandler(svc)
	rec := httptest.NewRecorder()
	h.UpdateUserTask(rec, authedRequest(http.MethodPut, "/usuario/"+userID.String()+"/task/"+taskID.String(),
		`{"text":"x","date":"2026-08-26","priority":"low","folder":"work"}`,
		userID, map[string]string{"uid": userID.String(), "tid": taskID.String()}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "UpdateOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTask_DeleteUserTask_Success(t *testing.T) {
	svc := &mocks.TaskService{}
	userID := uuid.New()
	taskID := uuid.New()
	svc.On("DeleteOwned", mock.Anything, userID, taskID).Return(nil)

	h := newTaskHandler(svc)
	rec := httptest.NewRecorder()
	h.DeleteUserTask(rec, authedRequest(http.MethodDelete, "/usuario/"+userID.String()+"/task/"+taskID.String(), "",
		userID, map[string]string{"uid": userID.String(), "tid": taskID.String()}))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestTask_CreateTask_FolderOptional(t *testing.T) {
	svc := &mocks.TaskService{}
	svc.On("CreateGlobal", mock.Anything, model.CreateTaskParams{
		Text:     "buy milk",
		DueDate:  time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
		Priority: "low",
	}).Return(model.Task{ID: uuid.New(), Text: "buy milk", Folder: model.DefaultFolder, DueDate: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), Priority: "low"}, nil)

	h := newTaskHandler(svc)
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"text":"buy milk","date":"2026-08-26","priority":"low"}`))
	rec := httptest.NewRecorder()
	h.CreateTask(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "default", resp["folder"])
}

func TestTask_CreateTask_MissingFields(t *testing.T) {
	svc := &mocks.TaskService{}
	h := newTaskHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"text":"buy milk"}`))
	rec := httptest.NewRecorder()
	h.CreateTask(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTask_PatchTask(t *testing.T) {
	taskID := uuid.New()

	t.Run("missing completed is 400", func(t *testing.T) {
		svc := &mocks.TaskService{}
		h := newTaskHandler(svc)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodPatch, "/tasks/"+taskID.String(), strings.NewReader(`{}`)),
			map[string]string{"id": taskID.String()})
		rec := httptest.NewRecorder()
		h.PatchTask(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "SetCompleted", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		svc := &mocks.TaskService{}
		svc.On("SetCompleted", mock.Anything, taskID, true).Return(model.ErrNotFound)
		h := newTaskHandler(svc)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodPatch, "/tasks/"+taskID.String(), strings.NewReader(`{"completed":true}`)),
			map[string]string{"id": taskID.String()})
		rec := httptest.NewRecorder()
		h.PatchTask(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &mocks.TaskService{}
		svc.On("SetCompleted", mock.Anything, taskID, true).Return(nil)
		h := newTaskHandler(svc)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodPatch, "/tasks/"+taskID.String(), strings.NewReader(`{"completed":true}`)),
			map[string]string{"id": taskID.String()})
		rec := httptest.NewRecorder()
		h.PatchTask(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTask_DeleteTask_UnknownIs404(t *testing.T) {
	svc := &mocks.TaskService{}
	taskID := uuid.New()
	svc.On("DeleteGlobal", mock.Anything, taskID).Return(model.ErrNotFound)

	h := newTaskHandler(svc)
	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/tasks/"+taskID.String(), nil),
		map[string]string{"id": taskID.String()})
	rec := httptest.NewRecorder()
	h.DeleteTask(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTask_GetWeekTasks(t *testing.T) {
	t.Run("explicit start", func(t *testing.T) {
		svc := &mocks.TaskService{}
		start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
		svc.On("ListWeek", mock.Anything, &start).Return([]model.Task{}, nil)

		h := newTaskHandler(svc)
		rec := httptest.NewRecorder()
		h.GetWeekTasks(rec, httptest.NewRequest(http.MethodGet, "/tasks/week?start=2026-08-10", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("bad start", func(t *testing.T) {
		svc := &mocks.TaskService{}
		h := newTaskHandler(svc)
		rec := httptest.NewRecorder()
		h.GetWeekTasks(rec, httptest.NewRequest(http.MethodGet, "/tasks/week?start=yesterday", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("default start", func(t *testing.T) {
		svc := &mocks.TaskService{}
		svc.On("ListWeek", mock.Anything, (*time.Time)(nil)).Return([]model.Task{}, nil)

		h := newTaskHandler(svc)
		rec := httptest.NewRecorder()
		h.GetWeekTasks(rec, httptest.NewRequest(http.MethodGet, "/tasks/week", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
