package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmorrow/taskdeck/internal/domain"
)

// TaskPatch describes a partial update to a task. Nil fields are left
// unchanged. Ownership is not patchable: a task's owner is set at
// creation and never reassigned.
type TaskPatch struct {
	Title     *string
	Completed *bool
}

// TaskStore defines the interface for task data persistence.
// All operations are atomic with respect to a single task id; no
// cross-task transactions are required.
type TaskStore interface {
	// Create saves a new task to the store.
	// It handles domain validation internally.
	// Returns validation errors from the domain Task if data is invalid.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListByOwner retrieves all tasks belonging to the given owner,
	// ordered by creation time ascending. Returns an empty slice if the
	// owner has no tasks.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)

	// Update applies the patch to an existing task and bumps its
	// updated_at timestamp. A patched title is validated before the
	// write. Returns the updated task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id uuid.UUID, patch TaskPatch) (*domain.Task, error)

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
