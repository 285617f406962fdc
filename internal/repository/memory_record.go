package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/alexanderramin/ladder/internal/domain"
)

// MemoryRecordRepo implements RecordRepo in process memory. Contents last
// for the lifetime of the process.
type MemoryRecordRepo[T domain.Record[T]] struct {
	mu      sync.RWMutex
	records []T
	lastID  int
}

// NewMemoryRecordRepo creates a store holding seed in the given order. Seed
// records keep their ids.
func NewMemoryRecordRepo[T domain.Record[T]](seed ...T) *MemoryRecordRepo[T] {
	r := &MemoryRecordRepo[T]{records: slices.Clone(seed)}
	for _, rec := range seed {
		r.lastID = max(r.lastID, rec.RecordID())
	}
	return r
}

func (r *MemoryRecordRepo[T]) Add(_ context.Context, rec T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	stored := rec.WithID(r.lastID)
	r.records = append(r.records, stored)
	return stored, nil
}

func (r *MemoryRecordRepo[T]) Update(_ context.Context, id int, rec T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		var zero T
		return zero, notFound[T](id)
	}
	stored := rec.WithID(id)
	r.records[i] = stored
	return stored, nil
}

func (r *MemoryRecordRepo[T]) Modify(_ context.Context, id int, change func(T) (T, error)) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	i := r.indexOf(id)
	if i < 0 {
		return zero, notFound[T](id)
	}
	next, err := change(r.records[i])
	if err != nil {
		return zero, err
	}
	stored := next.WithID(id)
	r.records[i] = stored
	return stored, nil
}

func (r *MemoryRecordRepo[T]) Remove(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return notFound[T](id)
	}
	r.records = slices.Delete(r.records, i, i+1)
	return nil
}

func (r *MemoryRecordRepo[T]) Get(_ context.Context, id int) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		var zero T
		return zero, notFound[T](id)
	}
	return r.records[i], nil
}

func (r *MemoryRecordRepo[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.records), nil
}

// indexOf must be called with mu held.
func (r *MemoryRecordRepo[T]) indexOf(id int) int {
	return slices.IndexFunc(r.records, func(rec T) bool { return rec.RecordID() == id })
}

func notFound[T domain.Record[T]](id int) error {
	return fmt.Errorf("%s %d: %w", kindOf[T](), id, ErrNotFound)
}

// MemoryProfileRepo implements ProfileRepo in process memory.
type MemoryProfileRepo struct {
	mu      sync.RWMutex
	profile domain.Profile
}

func NewMemoryProfileRepo(initial domain.Profile) *MemoryProfileRepo {
	return &MemoryProfileRepo{profile: initial}
}

func (r *MemoryProfileRepo) Get(_ context.Context) (domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile, nil
}

func (r *MemoryProfileRepo) Save(_ context.Context, p domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = p
	return nil
}
