// Package recordapi defines the backend-agnostic contract for the record service.
package recordapi

import "context"

// Client defines the interface for record service operations.
// All remote calls go through this interface.
// Stores never import the HTTP backend directly.
type Client interface {
	// ListUsers returns the full user directory.
	ListUsers(ctx context.Context) ([]User, error)

	// ListTasks returns all tasks in service order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task for the given user.
	// New tasks are always created uncompleted.
	// The id on the returned task is server-assigned and advisory:
	// callers that keep a local cache assign their own.
	CreateTask(ctx context.Context, userID int, title string) (Task, error)
}
