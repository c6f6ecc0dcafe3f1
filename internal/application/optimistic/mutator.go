package optimistic

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/codearena/arena-admin/internal/shared/logger"
)

// RollbackError is returned by Apply when the commit failed and the snapshot
// was put back. RestoreErr is set when even the restore failed, in which case
// the mirror may hold the optimistic value until it expires.
type RollbackError struct {
	Key        string
	Err        error
	RestoreErr error
}

func (e *RollbackError) Error() string {
	if e.RestoreErr != nil {
		return fmt.Sprintf("commit %s failed: %v (restore failed: %v)", e.Key, e.Err, e.RestoreErr)
	}
	return fmt.Sprintf("commit %s failed, rolled back: %v", e.Key, e.Err)
}

func (e *RollbackError) Unwrap() []error {
	if e.RestoreErr != nil {
		return []error{e.Err, e.RestoreErr}
	}
	return []error{e.Err}
}

// IsRollback reports whether err came from a rolled back commit.
func IsRollback(err error) bool {
	var rbErr *RollbackError
	return errors.As(err, &rbErr)
}

type (
	SeedFunc[T any]   func(ctx context.Context) (T, error)
	MutateFunc[T any] func(current T) (T, error)
	CommitFunc[T any] func(ctx context.Context, next T) error
	// ConfirmFunc commits next and returns the value the platform settled on.
	ConfirmFunc[T any] func(ctx context.Context, next T) (T, error)
)

// Mutator runs snapshot/apply/commit/restore cycles against a Store.
type Mutator[T any] struct {
	store      Store[T]
	locks      *keyedMutex
	onRollback func(key string)
	logger     logger.Interface
}

type MutatorOption[T any] func(*Mutator[T])

// WithRollbackHook registers fn to be called after every rollback.
func WithRollbackHook[T any](fn func(key string)) MutatorOption[T] {
	return func(m *Mutator[T]) {
		m.onRollback = fn
	}
}

func NewMutator[T any](store Store[T], log logger.Interface, opts ...MutatorOption[T]) *Mutator[T] {
	m := &Mutator[T]{
		store:  store,
		locks:  newKeyedMutex(),
		logger: log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Store returns the underlying store so readers can serve the mirrored value.
func (m *Mutator[T]) Store() Store[T] {
	return m.store
}

// Apply loads the value under key (seeding it when absent), saves mutate's
// result, then calls commit. When commit fails the previous value is restored
// and a *RollbackError is returned. A mutate error aborts before any write.
func (m *Mutator[T]) Apply(ctx context.Context, key string, seed SeedFunc[T], mutate MutateFunc[T], commit CommitFunc[T]) (T, error) {
	return m.apply(ctx, key, seed, mutate, func(ctx context.Context, next T) (T, error) {
		return next, commit(ctx, next)
	}, false)
}

// ApplyConfirmed is Apply for commits that answer with the authoritative
// value. That value replaces the optimistic one before the key is released.
func (m *Mutator[T]) ApplyConfirmed(ctx context.Context, key string, seed SeedFunc[T], mutate MutateFunc[T], confirm ConfirmFunc[T]) (T, error) {
	return m.apply(ctx, key, seed, mutate, confirm, true)
}

func (m *Mutator[T]) apply(ctx context.Context, key string, seed SeedFunc[T], mutate MutateFunc[T], confirm ConfirmFunc[T], saveConfirmed bool) (T, error) {
	var zero T

	unlock := m.locks.lock(key)
	defer unlock()

	snapshot, ok, err := m.store.Load(ctx, key)
	if err != nil {
		return zero, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		if snapshot, err = seed(ctx); err != nil {
			return zero, err
		}
	}

	next, err := mutate(snapshot)
	if err != nil {
		return zero, err
	}

	if err := m.store.Save(ctx, key, next); err != nil {
		return zero, fmt.Errorf("failed to save %s: %w", key, err)
	}

	confirmed, err := confirm(ctx, next)
	if err != nil {
		rbErr := &RollbackError{Key: key, Err: err}
		// the request context may already be cancelled; the restore must still happen
		if restoreErr := m.store.Save(context.WithoutCancel(ctx), key, snapshot); restoreErr != nil {
			rbErr.RestoreErr = restoreErr
			m.logger.Errorw("failed to restore snapshot", "key", key, "error", restoreErr)
		}
		m.logger.Warnw("optimistic update rolled back", "key", key, "error", err)
		if m.onRollback != nil {
			m.onRollback(key)
		}
		return zero, rbErr
	}

	if saveConfirmed {
		if err := m.store.Save(context.WithoutCancel(ctx), key, confirmed); err != nil {
			m.logger.Warnw("failed to store confirmed value", "key", key, "error", err)
		}
	}
	return confirmed, nil
}

// Fill returns the mirrored value under key, loading it with fetch when
// absent. The fetch runs under the key lock so it cannot overwrite a
// mutation that finished while it was in flight.
func (m *Mutator[T]) Fill(ctx context.Context, key string, fetch SeedFunc[T]) (T, error) {
	if v, ok, err := m.store.Load(ctx, key); err == nil && ok {
		return v, nil
	}

	unlock := m.locks.lock(key)
	defer unlock()

	v, ok, err := m.store.Load(ctx, key)
	if err != nil {
		m.logger.Warnw("failed to read mirror", "key", key, "error", err)
	}
	if ok {
		return v, nil
	}

	if v, err = fetch(ctx); err != nil {
		return v, err
	}
	if err := m.store.Save(ctx, key, v); err != nil {
		m.logger.Warnw("failed to fill mirror", "key", key, "error", err)
	}
	return v, nil
}

// Invalidate drops the mirrored value under key once in-flight work on it is done.
func (m *Mutator[T]) Invalidate(ctx context.Context, key string) error {
	unlock := m.locks.lock(key)
	defer unlock()
	return m.store.Delete(ctx, key)
}

// keyedMutex serialises work per key and frees the entry once nobody waits.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyedLock)}
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
