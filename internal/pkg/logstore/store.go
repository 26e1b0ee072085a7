// Package logstore holds the per-view copy of the last fetched attendance
// log list.
package logstore

import (
	"sync"

	"github.com/attendly/attendance-gateway/internal/domain/attendance"
	"github.com/google/uuid"
)

// Store is the state container of one dashboard view. Every fetch acquires a
// generation token via Begin; only the fetch holding the latest generation
// may publish or reset, so a slow response that was superseded by a newer
// fetch can never overwrite newer state.
type Store struct {
	mu         sync.Mutex
	logs       []attendance.AttendanceLog
	generation uuid.UUID
}

func New() *Store {
	return &Store{}
}

// Begin marks the start of a fetch and returns its generation token,
// invalidating all fetches that started earlier.
func (s *Store) Begin() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation = uuid.New()
	return s.generation
}

// Publish stores the fetched logs if gen is still the latest generation.
// Reports whether the result was applied.
func (s *Store) Publish(gen uuid.UUID, logs []attendance.AttendanceLog) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.logs = logs
	return true
}

// Reset clears the list, the recovery path for a failed fetch. Like Publish
// it is ignored when gen has been superseded.
func (s *Store) Reset(gen uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.logs = nil
	return true
}

// Logs returns the current list. The slice is shared; callers must treat it
// as read-only.
func (s *Store) Logs() []attendance.AttendanceLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logs
}
