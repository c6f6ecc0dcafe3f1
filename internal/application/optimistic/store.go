// Package optimistic applies a mutation to mirrored state before the platform
// confirms it, restoring the previous value when the platform rejects it.
package optimistic

import (
	"context"
	"sync"
)

// Store holds the mirrored value of a resource by key.
type Store[T any] interface {
	Load(ctx context.Context, key string) (T, bool, error)
	Save(ctx context.Context, key string, value T) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore is a process-local Store used by the CLI and tests.
type MemoryStore[T any] struct {
	mu     sync.RWMutex
	values map[string]T
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{values: make(map[string]T)}
}

func (s *MemoryStore[T]) Load(_ context.Context, key string) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore[T]) Save(_ context.Context, key string, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
