package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmorrow/taskdeck/internal/cache"
	"github.com/jmorrow/taskdeck/internal/domain"
	"github.com/jmorrow/taskdeck/internal/platform/logger"
	"github.com/jmorrow/taskdeck/internal/store"
)

// TaskService provides authenticated access to task records. Every call
// takes an explicit, already-verified identity; the service applies the
// ownership check on each id-addressed operation and keeps the result
// cache coherent with the store.
type TaskService interface {
	// ListTasks returns all tasks owned by ownerID, ordered by creation
	// time ascending. Results are served from the cache when a fresh
	// entry exists; otherwise the store is consulted and the cache
	// populated.
	ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)

	// CreateTask validates the input, persists a new task owned by
	// ownerID, and invalidates the owner's cache entry before
	// returning the created task.
	CreateTask(ctx context.Context, ownerID uuid.UUID, title string, completed bool) (*domain.Task, error)

	// GetTask fetches a single task.
	// Returns store.ErrTaskNotFound if no task has that id, or
	// ErrTaskNotOwned if the task belongs to someone other than
	// requesterID. The forbidden path never returns task content.
	GetTask(ctx context.Context, requesterID, taskID uuid.UUID) (*domain.Task, error)

	// UpdateTask applies the patch to a task owned by requesterID and
	// invalidates the owner's cache entry before returning the updated
	// task. Returns store.ErrTaskNotFound, ErrTaskNotOwned, or a
	// validation error.
	UpdateTask(ctx context.Context, requesterID, taskID uuid.UUID, patch store.TaskPatch) (*domain.Task, error)

	// DeleteTask removes a task owned by requesterID and invalidates
	// the owner's cache entry.
	// Returns store.ErrTaskNotFound or ErrTaskNotOwned.
	DeleteTask(ctx context.Context, requesterID, taskID uuid.UUID) error
}

// Verify interface compliance at compile time
var _ TaskService = (*taskServiceImpl)(nil)

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	taskStore store.TaskStore
	taskCache cache.TaskCache
	cacheTTL  time.Duration
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService implementation. cacheTTL <= 0
// leaves the TTL choice to the cache implementation's default.
func NewTaskService(
	taskStore store.TaskStore,
	taskCache cache.TaskCache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) TaskService {
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}
	if taskCache == nil {
		panic("taskCache cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		taskCache: taskCache,
		cacheTTL:  cacheTTL,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

// ListTasks implements TaskService.ListTasks.
func (s *taskServiceImpl) ListTasks(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if tasks, ok := s.taskCache.Get(ctx, ownerID); ok {
		log.Debug("task list served from cache",
			slog.String("user_id", ownerID.String()),
			slog.Int("count", len(tasks)))
		return tasks, nil
	}

	tasks, err := s.taskStore.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	s.taskCache.Set(ctx, ownerID, tasks, s.cacheTTL)

	log.Debug("task list served from store",
		slog.String("user_id", ownerID.String()),
		slog.Int("count", len(tasks)))
	return tasks, nil
}

// CreateTask implements TaskService.CreateTask.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	title string,
	completed bool,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(ownerID, title, completed)
	if err != nil {
		log.Warn("task validation failed",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	// Invalidate before acknowledging the write so a list that starts
	// after this call returns observes the new task.
	s.taskCache.Invalidate(ctx, ownerID)

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", ownerID.String()))
	return task, nil
}

// GetTask implements TaskService.GetTask.
func (s *taskServiceImpl) GetTask(ctx context.Context, requesterID, taskID uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.authorizeTask(ctx, requesterID, taskID)
	if err != nil {
		return nil, err
	}

	log.Debug("task retrieved",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", requesterID.String()))
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	requesterID, taskID uuid.UUID,
	patch store.TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.authorizeTask(ctx, requesterID, taskID); err != nil {
		return nil, err
	}

	task, err := s.taskStore.Update(ctx, taskID, patch)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) || domain.IsValidationError(err) {
			return nil, err
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.taskCache.Invalidate(ctx, requesterID)

	log.Info("task updated",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", requesterID.String()))
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, requesterID, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.authorizeTask(ctx, requesterID, taskID); err != nil {
		return err
	}

	if err := s.taskStore.Delete(ctx, taskID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return err
		}
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.taskCache.Invalidate(ctx, requesterID)

	log.Info("task deleted",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", requesterID.String()))
	return nil
}

// authorizeTask fetches the task and verifies the requester owns it.
// Returns store.ErrTaskNotFound if the task does not exist and
// ErrTaskNotOwned if it belongs to a different owner.
func (s *taskServiceImpl) authorizeTask(ctx context.Context, requesterID, taskID uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("task not found",
				slog.String("task_id", taskID.String()),
				slog.String("user_id", requesterID.String()))
			return nil, err
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if task.UserID != requesterID {
		log.Warn("user does not own task",
			slog.String("task_id", taskID.String()),
			slog.String("user_id", requesterID.String()),
			slog.String("owner_id", task.UserID.String()))
		return nil, ErrTaskNotOwned
	}

	return task, nil
}
