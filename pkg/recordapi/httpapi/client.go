// Package httpapi implements the recordapi.Client interface over a REST record service.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"todostate/pkg/recordapi"
)

const (
	// UsersPath is the user directory endpoint.
	UsersPath = "/users"

	// TasksPath is the task collection endpoint.
	TasksPath = "/todos"

	// APITimeout is the timeout for record service calls.
	APITimeout = 5 * time.Second
)

// Client implements recordapi.Client against a JSON-over-HTTP record service.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// New creates a record service client for the given base URL.
// httpClient may be nil, in which case http.DefaultClient is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     slog.Default(),
	}
}

// SetLogger replaces the client's logger. A nil logger is ignored.
func (c *Client) SetLogger(log *slog.Logger) {
	if log != nil {
		c.log = log
	}
}

// ListUsers returns the full user directory.
func (c *Client) ListUsers(ctx context.Context) ([]recordapi.User, error) {
	var users []recordapi.User
	if err := c.get(ctx, UsersPath, &users); err != nil {
		return nil, err
	}
	c.log.Debug("listed users", "count", len(users))
	return users, nil
}

// ListTasks returns all tasks in service order.
func (c *Client) ListTasks(ctx context.Context) ([]recordapi.Task, error) {
	var tasks []recordapi.Task
	if err := c.get(ctx, TasksPath, &tasks); err != nil {
		return nil, err
	}
	c.log.Debug("listed tasks", "count", len(tasks))
	return tasks, nil
}

// CreateTask creates a task for the given user.
func (c *Client) CreateTask(ctx context.Context, userID int, title string) (recordapi.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	payload, err := json.Marshal(recordapi.Task{UserID: userID, Title: title, Completed: false})
	if err != nil {
		return recordapi.Task{}, wrapError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+TasksPath, bytes.NewReader(payload))
	if err != nil {
		return recordapi.Task{}, wrapError(err)
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := c.http.Do(req)
	if err != nil {
		return recordapi.Task{}, wrapError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return recordapi.Task{}, fmt.Errorf("record service returned %s", resp.Status)
	}

	var created recordapi.Task
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return recordapi.Task{}, fmt.Errorf("invalid response body: %w", err)
	}

	c.log.Debug("created task", "userId", userID, "serverId", created.ID)
	return created, nil
}

// get performs a GET against path and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return wrapError(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return wrapError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("record service returned %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response body: %w", err)
	}
	return nil
}

// wrapError wraps transport errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	return err
}
