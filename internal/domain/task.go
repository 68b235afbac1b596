package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinTitleLength is the minimum task title length after trimming
// surrounding whitespace.
const MinTitleLength = 3

// Task represents a single tracked task. Every task has exactly one
// owner, set at creation and never reassigned; it is visible and
// mutable only by that owner.
type Task struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTask creates a new Task owned by the given user. It generates the
// task ID, trims the title, and sets the creation/update timestamps.
// Returns a ValidationError if validation fails.
func NewTask(userID uuid.UUID, title string, completed bool) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     strings.TrimSpace(title),
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns a ValidationError if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	if t.UserID == uuid.Nil {
		return NewValidationError("user_id", "cannot be empty", ErrInvalidID)
	}

	if err := ValidateTitle(t.Title); err != nil {
		return err
	}

	return nil
}

// ValidateTitle checks a task title against the length constraint.
// The title is expected to already be trimmed; untrimmed input is
// trimmed before the check so callers cannot pad their way past it.
func ValidateTitle(title string) error {
	if len(strings.TrimSpace(title)) < MinTitleLength {
		return NewValidationError("title", "must be at least 3 characters", ErrValidation)
	}
	return nil
}
