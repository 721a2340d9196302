// Package favorites maintains the per-user set of favorited task ids.
package favorites

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"sync"

	"todostate/pkg/storage"
)

// KeyPrefix is the durable storage key prefix; the owning user id is appended.
const KeyPrefix = "favorites_user_"

// Store holds the favorite task ids for at most one user at a time.
// The set is persisted durably on every change; Clear resets only the
// in-memory view so a returning user finds their favorites restored.
type Store struct {
	kv    storage.KV
	log   *slog.Logger
	mu    sync.Mutex
	owner int // 0 means no active scope
	ids   map[int]bool
}

// New creates a favorites store on the given durable backend.
func New(kv storage.KV) *Store {
	return &Store{
		kv:  kv,
		log: slog.Default(),
		ids: make(map[int]bool),
	}
}

// SetLogger replaces the store's logger. A nil logger is ignored.
func (s *Store) SetLogger(log *slog.Logger) {
	if log != nil {
		s.log = log
	}
}

// Load switches the scope to userID and reads that user's persisted set.
// A missing entry yields an empty set; a corrupt entry is removed and
// likewise yields an empty set.
func (s *Store) Load(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.owner = userID
	s.ids = make(map[int]bool)

	key := Key(userID)
	data, err := s.kv.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("failed to read favorites", "userId", userID, "error", err)
		}
		return
	}

	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		s.log.Warn("discarding corrupt favorites entry", "userId", userID, "error", err)
		s.kv.Delete(key)
		return
	}
	for _, id := range ids {
		s.ids[id] = true
	}
}

// Toggle adds taskID to the set if absent, removes it if present, and
// persists the updated set. No-op when no scope is active.
func (s *Store) Toggle(taskID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.owner == 0 {
		return
	}

	if s.ids[taskID] {
		delete(s.ids, taskID)
	} else {
		s.ids[taskID] = true
	}
	s.persist()
}

// IsFavorite reports whether taskID is in the active set.
func (s *Store) IsFavorite(taskID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[taskID]
}

// IDs returns the active set as a sorted slice.
func (s *Store) IDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked()
}

// Clear resets the in-memory scope to unowned and empty.
// The durable copy is left untouched.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.owner = 0
	s.ids = make(map[int]bool)
}

// Key returns the durable storage key for userID.
func Key(userID int) string {
	return KeyPrefix + strconv.Itoa(userID)
}

func (s *Store) persist() {
	data, err := json.Marshal(s.sortedLocked())
	if err != nil {
		return
	}
	if err := s.kv.Set(Key(s.owner), data); err != nil {
		s.log.Warn("failed to persist favorites", "userId", s.owner, "error", err)
	}
}

func (s *Store) sortedLocked() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
