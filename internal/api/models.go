package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmorrow/taskdeck/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Token is the JWT session token used for API authorization
	Token string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// CreateTaskRequest represents the request body for creating a new task.
type CreateTaskRequest struct {
	Title     string `json:"title"     validate:"required,min=3"`
	Completed bool   `json:"completed"`
}

// UpdateTaskRequest represents the request body for updating a task.
// Nil fields are left unchanged; ownership is not patchable.
type UpdateTaskRequest struct {
	Title     *string `json:"title"     validate:"omitempty,min=3"`
	Completed *bool   `json:"completed"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID.String(),
		UserID:    task.UserID.String(),
		Title:     task.Title,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// tasksToResponse converts a slice of domain tasks, preserving order.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
