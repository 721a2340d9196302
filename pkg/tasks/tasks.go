// Package tasks owns the cached task list and the derived filtered view.
package tasks

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"todostate/pkg/favorites"
	"todostate/pkg/recordapi"
)

const (
	// MsgFetchFailed is set when the task list cannot be fetched.
	MsgFetchFailed = "Failed to fetch tasks"

	// MsgCreateFailed is set when a task cannot be created.
	MsgCreateFailed = "Failed to create task"
)

// Store caches the task list and derives the visible subset from the
// current filter criteria and favorite set.
//
// Unlike login errors, fetch and create errors do not expire: they stay
// readable until the next successful operation of the same kind or an
// explicit ClearErr.
type Store struct {
	client recordapi.Client
	favs   *favorites.Store
	log    *slog.Logger

	mu      sync.Mutex
	cache   []recordapi.Task
	loading bool
	err     string
	filter  Criteria

	// createMu serializes Create calls so two in-flight creates cannot
	// both read the same max id.
	createMu sync.Mutex
}

// New creates a task store.
func New(client recordapi.Client, favs *favorites.Store) *Store {
	return &Store{
		client: client,
		favs:   favs,
		log:    slog.Default(),
	}
}

// SetLogger replaces the store's logger. A nil logger is ignored.
func (s *Store) SetLogger(log *slog.Logger) {
	if log != nil {
		s.log = log
	}
}

// Fetch replaces the whole cache with the record service task list.
// On failure the existing cache is left untouched and Err reports
// MsgFetchFailed.
func (s *Store) Fetch(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)
	s.setErr("")

	list, err := s.client.ListTasks(ctx)
	if err != nil {
		s.log.Warn("task fetch failed", "error", err)
		s.setErr(MsgFetchFailed)
		return
	}

	s.mu.Lock()
	s.cache = list
	s.mu.Unlock()
}

// Create asks the record service to create a task and inserts the result
// at the front of the cache under a locally assigned id: one more than
// the current maximum (0 for an empty cache). The server-assigned id is
// discarded. Returns true on success; on failure the cache is unchanged
// and Err reports MsgCreateFailed.
func (s *Store) Create(ctx context.Context, userID int, title string) bool {
	s.createMu.Lock()
	defer s.createMu.Unlock()

	created, err := s.client.CreateTask(ctx, userID, title)
	if err != nil {
		s.log.Warn("task create failed", "error", err)
		s.setErr(MsgCreateFailed)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created.ID = s.maxIDLocked() + 1
	s.cache = append([]recordapi.Task{created}, s.cache...)
	s.err = ""
	return true
}

// Loading reports whether a fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the current fetch/create error message, or "".
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ClearErr clears the fetch/create error message.
func (s *Store) ClearErr() {
	s.setErr("")
}

// All returns a copy of the whole cache in cache order.
func (s *Store) All() []recordapi.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]recordapi.Task, len(s.cache))
	copy(out, s.cache)
	return out
}

// UserIDs returns the distinct user ids across the whole cache,
// sorted ascending. The filter criteria do not apply here.
func (s *Store) UserIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int]bool)
	var ids []int
	for _, t := range s.cache {
		if !seen[t.UserID] {
			seen[t.UserID] = true
			ids = append(ids, t.UserID)
		}
	}
	sort.Ints(ids)
	return ids
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *Store) setErr(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}

func (s *Store) maxIDLocked() int {
	max := 0
	for _, t := range s.cache {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}
