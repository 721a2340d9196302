package tasks

import (
	"strings"

	"todostate/pkg/recordapi"
)

// Status selects tasks by completion state.
type Status string

const (
	StatusAll         Status = "all"
	StatusCompleted   Status = "completed"
	StatusUncompleted Status = "uncompleted"
	StatusFavorites   Status = "favorites"
)

// Criteria holds the three filter inputs.
// A zero UserID means no user filter.
type Criteria struct {
	Status Status
	UserID int
	Search string
}

// SetStatusFilter sets the completion-state filter.
func (s *Store) SetStatusFilter(status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Status = status
}

// SetUserFilter keeps only tasks owned by userID.
func (s *Store) SetUserFilter(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.UserID = userID
}

// ClearUserFilter removes the user filter.
func (s *Store) ClearUserFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.UserID = 0
}

// SetSearch sets the title search query.
func (s *Store) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Search = query
}

// Criteria returns the current filter criteria.
func (s *Store) Criteria() Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Visible derives the filtered task list from the cache, the favorite
// set and the current criteria. Filters apply in a fixed order: status,
// then user, then search. The result is a fresh slice; the cache is
// never mutated.
func (s *Store) Visible() []recordapi.Task {
	s.mu.Lock()
	cache := make([]recordapi.Task, len(s.cache))
	copy(cache, s.cache)
	criteria := s.filter
	s.mu.Unlock()

	isFav := func(int) bool { return false }
	if s.favs != nil {
		isFav = s.favs.IsFavorite
	}
	return Apply(cache, criteria, isFav)
}

// Apply filters tasks by criteria in the fixed status, user, search
// order. isFavorite resolves favorite membership for StatusFavorites.
// Apply is a pure function of its inputs.
func Apply(list []recordapi.Task, criteria Criteria, isFavorite func(int) bool) []recordapi.Task {
	if isFavorite == nil {
		isFavorite = func(int) bool { return false }
	}

	result := make([]recordapi.Task, 0, len(list))
	for _, t := range list {
		result = append(result, t)
	}

	switch criteria.Status {
	case StatusCompleted:
		result = keep(result, func(t recordapi.Task) bool { return t.Completed })
	case StatusUncompleted:
		result = keep(result, func(t recordapi.Task) bool { return !t.Completed })
	case StatusFavorites:
		result = keep(result, func(t recordapi.Task) bool { return isFavorite(t.ID) })
	}

	if criteria.UserID != 0 {
		result = keep(result, func(t recordapi.Task) bool { return t.UserID == criteria.UserID })
	}

	if query := strings.ToLower(strings.TrimSpace(criteria.Search)); query != "" {
		result = keep(result, func(t recordapi.Task) bool {
			return strings.Contains(strings.ToLower(t.Title), query)
		})
	}

	return result
}

func keep(list []recordapi.Task, pred func(recordapi.Task) bool) []recordapi.Task {
	out := list[:0]
	for _, t := range list {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}
