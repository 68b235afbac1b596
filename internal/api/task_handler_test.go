package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jmorrow/taskdeck/internal/api"
	"github.com/jmorrow/taskdeck/internal/api/shared"
	"github.com/jmorrow/taskdeck/internal/domain"
	"github.com/jmorrow/taskdeck/internal/service"
	"github.com/jmorrow/taskdeck/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTaskService returns canned results so handler behavior can be
// tested in isolation from the store and cache.
type stubTaskService struct {
	tasks []*domain.Task
	task  *domain.Task
	err   error

	lastRequester uuid.UUID
	lastTaskID    uuid.UUID
	lastPatch     store.TaskPatch
}

var _ service.TaskService = (*stubTaskService)(nil)

func (s *stubTaskService) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	s.lastRequester = ownerID
	return s.tasks, s.err
}

func (s *stubTaskService) CreateTask(ctx context.Context, ownerID uuid.UUID, title string, completed bool) (*domain.Task, error) {
	s.lastRequester = ownerID
	if s.err != nil {
		return nil, s.err
	}
	return s.task, nil
}

func (s *stubTaskService) GetTask(ctx context.Context, requesterID, taskID uuid.UUID) (*domain.Task, error) {
	s.lastRequester = requesterID
	s.lastTaskID = taskID
	if s.err != nil {
		return nil, s.err
	}
	return s.task, nil
}

func (s *stubTaskService) UpdateTask(ctx context.Context, requesterID, taskID uuid.UUID, patch store.TaskPatch) (*domain.Task, error) {
	s.lastRequester = requesterID
	s.lastTaskID = taskID
	s.lastPatch = patch
	if s.err != nil {
		return nil, s.err
	}
	return s.task, nil
}

func (s *stubTaskService) DeleteTask(ctx context.Context, requesterID, taskID uuid.UUID) error {
	s.lastRequester = requesterID
	s.lastTaskID = taskID
	return s.err
}

func mustTask(t *testing.T, ownerID uuid.UUID, title string) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(ownerID, title, false)
	require.NoError(t, err)
	return task
}

// newTaskRequest builds a request carrying the authenticated user in
// the context and, when taskID is non-empty, a chi route parameter.
func newTaskRequest(method, target string, body []byte, userID uuid.UUID, taskID string) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := req.Context()
	if userID != uuid.Nil {
		ctx = context.WithValue(ctx, shared.UserIDContextKey, userID)
	}
	if taskID != "" {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", taskID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}
	return req.WithContext(ctx)
}

func TestTaskHandler_ListTasks(t *testing.T) {
	userID := uuid.New()

	t.Run("returns_tasks", func(t *testing.T) {
		svc := &stubTaskService{tasks: []*domain.Task{
			mustTask(t, userID, "first task"),
			mustTask(t, userID, "second task"),
		}}
		handler := api.NewTaskHandler(svc, nil)

		req := newTaskRequest(http.MethodGet, "/api/tasks", nil, userID, "")
		rec := httptest.NewRecorder()
		handler.ListTasks(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, svc.lastRequester)

		var resp []api.TaskResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "first task", resp[0].Title)
	})

	t.Run("empty_list_is_json_array", func(t *testing.T) {
		svc := &stubTaskService{tasks: []*domain.Task{}}
		handler := api.NewTaskHandler(svc, nil)

		req := newTaskRequest(http.MethodGet, "/api/tasks", nil, userID, "")
		rec := httptest.NewRecorder()
		handler.ListTasks(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("missing_context_user_unauthorized", func(t *testing.T) {
		svc := &stubTaskService{}
		handler := api.NewTaskHandler(svc, nil)

		req := newTaskRequest(http.MethodGet, "/api/tasks", nil, uuid.Nil, "")
		rec := httptest.NewRecorder()
		handler.ListTasks(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("store_unavailable_maps_to_503", func(t *testing.T) {
		svc := &stubTaskService{err: store.ErrUnavailable}
		handler := api.NewTaskHandler(svc, nil)

		req := newTaskRequest(http.MethodGet, "/api/tasks", nil, userID, "")
		rec := httptest.NewRecorder()
		handler.ListTasks(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestTaskHandler_CreateTask(t *testing.T) {
	userID := uuid.New()

	t.Run("creates_task", func(t *testing.T) {
		created := mustTask(t, userID, "Buy milk")
		svc := &stubTaskService{task: created}
		handler := api.NewTaskHandler(svc, nil)

		body := []byte(`{"title":"Buy milk"}`)
		req := newTaskRequest(http.MethodPost, "/api/tasks", body, userID, "")
		rec := httptest.NewRecorder()
		handler.CreateTask(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.TaskResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, created.ID.String(), resp.ID)
		assert.Equal(t, "Buy milk", resp.Title)
		assert.False(t, resp.Completed)
	})

	t.Run("title_too_short", func(t *testing.T) {
		svc := &stubTaskService{}
		handler := api.NewTaskHandler(svc, nil)

		body := []byte(`{"title":"ab"}`)
		req := newTaskRequest(http.MethodPost, "/api/tasks", body, userID, "")
		rec := httptest.NewRecorder()
		handler.CreateTask(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing_title", func(t *testing.T) {
		svc := &stubTaskService{}
		handler := api.NewTaskHandler(svc, nil)

		body := []byte(`{"completed":true}`)
		req := newTaskRequest(http.MethodPost, "/api/tasks", body, userID, "")
		rec := httptest.NewRecorder()
		handler.CreateTask(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown_fields_rejected", func(t *testing.T) {
		svc := &stubTaskService{}
		handler := api.NewTaskHandler(svc, nil)

		body := []byte(`{"title":"Buy milk","owner":"someone-else"}`)
		req := newTaskRequest(http.MethodPost, "/api/tasks", body, userID, "")
		rec := httptest.NewRecorder()
		handler.CreateTask(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("whitespace_title_rejected_by_service", func(t *testing.T) {
		// "   ab   " passes the struct min=3 check but fails domain
		// validation after trimming.
		svc := &stubTaskService{err: domain.NewValidationError("title", "must be at least 3 characters", domain.ErrValidation)}
		handler := api.NewTaskHandler(svc, nil)

		body := []byte(`{"title":"   ab   "}`)
		req := newTaskRequest(http.MethodPost, "/api/tasks", body, userID, "")
		rec := httptest.NewRecorder()
		handler.CreateTask(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid title")
	})
}

func TestTaskHandler_GetTask(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "not_found", serviceErr: store.ErrTaskNotFound, wantStatus: http.StatusNotFound},
		{name: "not_owned", serviceErr: service.ErrTaskNotOwned, wantStatus: http.StatusForbidden},
		{name: "unavailable", serviceErr: store.ErrUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubTaskService{task: mustTask(t, userID, "the task"), err: tt.serviceErr}
			handler := api.NewTaskHandler(svc, nil)

			req := newTaskRequest(http.MethodGet, "/api/tasks/"+taskID.String(), nil, userID, taskID.String())
			rec := httptest.NewRecorder()
			handler.GetTask(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, taskID, svc.lastTaskID)
			assert.Equal(t, userID, svc.lastRequester)

			if tt.serviceErr != nil {
				assert.NotContains(t, rec.Body.String(), "the task", "error responses must not leak task content")
			}
		})
	}

	t.Run("invalid_id_format", func(t *testing.T) {
		svc := &stubTaskService{}
		handler := api.NewTaskHandler(svc, nil)

		req := newTaskRequest(http.MethodGet, "/api/tasks/not-a-uuid", nil, userID, "not-a-uuid")
		rec := httptest.NewRecorder()
		handler.GetTask(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTaskHandler_UpdateTask(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()

	t.Run("partial_update_forwards_patch", func(t *testing.T) {
		updated := mustTask(t, userID, "renamed task")
		updated.Completed = true
		svc := &stubTaskService{task: updated}
		handler := api.NewTaskHandler(svc, nil)

		body := []byte(`{"completed":true}`)
		req := newTaskRequest(http.MethodPut, "/api/tasks/"+taskID.String(), body, userID, taskID.String())
		rec := httptest.NewRecorder()
		handler.UpdateTask(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, svc.lastPatch.Title, "absent field must stay nil in the patch")
		require.NotNil(t, svc.lastPatch.Completed)
		assert.True(t, *svc.lastPatch.Completed)
	})

	t.Run("empty_patch_rejected", func(t *testing.T) {
		svc := &stubTaskService{}
		handler := api.NewTaskHandler(svc, nil)

		body := []byte(`{}`)
		req := newTaskRequest(http.MethodPut, "/api/tasks/"+taskID.String(), body, userID, taskID.String())
		rec := httptest.NewRecorder()
		handler.UpdateTask(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "At least one field")
	})

	t.Run("title_too_short", func(t *testing.T) {
		svc := &stubTaskService{}
		handler := api.NewTaskHandler(svc, nil)

		body := []byte(`{"title":"ab"}`)
		req := newTaskRequest(http.MethodPut, "/api/tasks/"+taskID.String(), body, userID, taskID.String())
		rec := httptest.NewRecorder()
		handler.UpdateTask(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not_owned_forbidden", func(t *testing.T) {
		svc := &stubTaskService{err: service.ErrTaskNotOwned}
		handler := api.NewTaskHandler(svc, nil)

		body := []byte(`{"completed":true}`)
		req := newTaskRequest(http.MethodPut, "/api/tasks/"+taskID.String(), body, userID, taskID.String())
		rec := httptest.NewRecorder()
		handler.UpdateTask(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()

	t.Run("success_no_content", func(t *testing.T) {
		svc := &stubTaskService{}
		handler := api.NewTaskHandler(svc, nil)

		req := newTaskRequest(http.MethodDelete, "/api/tasks/"+taskID.String(), nil, userID, taskID.String())
		rec := httptest.NewRecorder()
		handler.DeleteTask(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("not_found_after_delete", func(t *testing.T) {
		svc := &stubTaskService{err: store.ErrTaskNotFound}
		handler := api.NewTaskHandler(svc, nil)

		req := newTaskRequest(http.MethodDelete, "/api/tasks/"+taskID.String(), nil, userID, taskID.String())
		rec := httptest.NewRecorder()
		handler.DeleteTask(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing_context_user_unauthorized", func(t *testing.T) {
		svc := &stubTaskService{}
		handler := api.NewTaskHandler(svc, nil)

		req := newTaskRequest(http.MethodDelete, "/api/tasks/"+taskID.String(), nil, uuid.Nil, taskID.String())
		rec := httptest.NewRecorder()
		handler.DeleteTask(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestTaskResponseTimestamps(t *testing.T) {
	userID := uuid.New()
	task := mustTask(t, userID, "timestamped")
	svc := &stubTaskService{task: task}
	handler := api.NewTaskHandler(svc, nil)

	req := newTaskRequest(http.MethodGet, "/api/tasks/"+task.ID.String(), nil, userID, task.ID.String())
	rec := httptest.NewRecorder()
	handler.GetTask(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TaskResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.WithinDuration(t, task.CreatedAt, resp.CreatedAt, time.Second)
	assert.Equal(t, userID.String(), resp.UserID)
}
