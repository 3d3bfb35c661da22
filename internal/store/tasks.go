package store

import (
	"sync"
	"time"

	"payslip-processor/internal/domain"
)

// MemoryTaskStore is an in-process implementation of domain.TaskStore.
// It is the single place task state lives; the coordinator and handlers get
// it passed explicitly instead of going through package-level state.
type MemoryTaskStore struct {
	mu    sync.RWMutex
	tasks map[string]*domain.Task
}

// NewMemoryTaskStore creates an empty task store
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{
		tasks: make(map[string]*domain.Task),
	}
}

// Create registers a new task in StatePending. An existing task with the
// same ID is replaced; IDs are UUIDs so that does not happen in practice.
func (s *MemoryTaskStore) Create(id string) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	task := &domain.Task{
		ID:        id,
		State:     domain.StatePending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.tasks[id] = task
	return *task
}

// Get returns a snapshot copy of the task. The Result pointer is shared but
// results are immutable once set.
func (s *MemoryTaskStore) Get(id string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, false
	}
	return *task, true
}

// SetProgress moves the task to StateProgress with the given counters.
func (s *MemoryTaskStore) SetProgress(id string, progress domain.Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return
	}
	task.State = domain.StateProgress
	task.Progress = progress
	task.UpdatedAt = time.Now()
}

// SetSuccess moves the task to StateSuccess with its final result.
func (s *MemoryTaskStore) SetSuccess(id string, result *domain.TaskResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return
	}
	task.State = domain.StateSuccess
	task.Result = result
	task.Error = ""
	task.UpdatedAt = time.Now()
}

// SetFailure moves the task to StateFailure with a short error description.
func (s *MemoryTaskStore) SetFailure(id string, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return
	}
	task.State = domain.StateFailure
	task.Error = message
	task.UpdatedAt = time.Now()
}
