package service

import "errors"

// Common service errors.
var (
	// ErrTaskNotOwned indicates a valid identity attempted to access a
	// task that belongs to a different owner. A task id alone never
	// grants access across owners.
	ErrTaskNotOwned = errors.New("task does not belong to the requesting user")
)
