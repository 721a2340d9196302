// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todostate/pkg/recordapi"
)

// FakeClient is an in-memory implementation of recordapi.Client for testing.
type FakeClient struct {
	mu    sync.RWMutex
	users []recordapi.User
	tasks []recordapi.Task

	// ServerID is the id the fake assigns to created tasks, mimicking
	// a service that reports its own id (advisory for callers).
	ServerID int

	// Error injection for testing
	ListUsersErr  error
	ListTasksErr  error
	CreateTaskErr error

	// Call counters
	ListUsersCalls  int
	ListTasksCalls  int
	CreateTaskCalls int
}

// NewFakeClient creates an empty FakeClient.
func NewFakeClient() *FakeClient {
	return &FakeClient{ServerID: 201}
}

// AddUser seeds a directory entry.
func (f *FakeClient) AddUser(id int, username, phone string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, recordapi.User{ID: id, Username: username, Phone: phone})
}

// AddTask seeds a task record.
func (f *FakeClient) AddTask(id, userID int, title string, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, recordapi.Task{ID: id, UserID: userID, Title: title, Completed: completed})
}

// ListUsers implements recordapi.Client.
func (f *FakeClient) ListUsers(ctx context.Context) ([]recordapi.User, error) {
	f.mu.Lock()
	f.ListUsersCalls++
	f.mu.Unlock()
	if f.ListUsersErr != nil {
		return nil, f.ListUsersErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]recordapi.User, len(f.users))
	copy(result, f.users)
	return result, nil
}

// ListTasks implements recordapi.Client.
func (f *FakeClient) ListTasks(ctx context.Context) ([]recordapi.Task, error) {
	f.mu.Lock()
	f.ListTasksCalls++
	f.mu.Unlock()
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]recordapi.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// CreateTask implements recordapi.Client.
// The created task is NOT added to the fake's task list: the real
// service's collection is equally detached from the client cache.
func (f *FakeClient) CreateTask(ctx context.Context, userID int, title string) (recordapi.Task, error) {
	f.mu.Lock()
	f.CreateTaskCalls++
	f.mu.Unlock()
	if f.CreateTaskErr != nil {
		return recordapi.Task{}, f.CreateTaskErr
	}
	return recordapi.Task{
		ID:        f.ServerID,
		UserID:    userID,
		Title:     title,
		Completed: false,
	}, nil
}
