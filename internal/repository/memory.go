package repository

import (
	"context"
	"errors"
	"sync"

	"console-tools/internal/domain"
)

// DefaultCapacity is the number of students a store holds when no capacity
// is configured.
const DefaultCapacity = 50

// ErrFull is returned by Append when the store is at capacity.
var ErrFull = errors.New("repository: store is at capacity")

// StudentStore is the ordered, append-only record storage consumed by the
// grade book.
type StudentStore interface {
	Append(ctx context.Context, rec domain.StudentRecord) error
	List(ctx context.Context) ([]domain.StudentRecord, error)
	Len() int
	Capacity() int
}

// MemoryStore keeps records in insertion order for the lifetime of the
// process.
type MemoryStore struct {
	mu       sync.RWMutex
	records  []domain.StudentRecord
	capacity int
}

// NewMemoryStore creates a store holding at most capacity records.
// A non-positive capacity falls back to DefaultCapacity.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		records:  make([]domain.StudentRecord, 0, capacity),
		capacity: capacity,
	}
}

func (s *MemoryStore) Append(_ context.Context, rec domain.StudentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) >= s.capacity {
		return ErrFull
	}
	s.records = append(s.records, rec)
	return nil
}

// List returns a copy of all records in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]domain.StudentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.StudentRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *MemoryStore) Capacity() int {
	return s.capacity
}
