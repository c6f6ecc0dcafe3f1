package optimistic

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	apperrors "github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func seedWith(v []string) SeedFunc[[]string] {
	return func(context.Context) ([]string, error) { return v, nil }
}

func TestMutator_Apply_CommitSuccess(t *testing.T) {
	store := NewMemoryStore[[]string]()
	m := NewMutator[[]string](store, logger.NewNop())

	got, err := m.Apply(context.Background(), "languages",
		seedWith([]string{"go", "cpp", "py"}),
		func(cur []string) ([]string, error) { return Reorder(cur, []string{"py", "go", "cpp"}) },
		func(context.Context, []string) error { return nil },
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"py", "go", "cpp"}, got)

	stored, ok, err := store.Load(context.Background(), "languages")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"py", "go", "cpp"}, stored)
}

func TestMutator_Apply_CommitFailureRestoresSnapshot(t *testing.T) {
	store := NewMemoryStore[[]string]()
	require.NoError(t, store.Save(context.Background(), "languages", []string{"go", "cpp"}))

	var rolledBack []string
	m := NewMutator[[]string](store, logger.NewNop(), WithRollbackHook[[]string](func(key string) {
		rolledBack = append(rolledBack, key)
	}))

	commitErr := errors.New("platform said no")
	var seenDuringCommit []string
	_, err := m.Apply(context.Background(), "languages",
		seedWith(nil),
		func(cur []string) ([]string, error) { return Reorder(cur, []string{"cpp", "go"}) },
		func(ctx context.Context, next []string) error {
			seenDuringCommit, _, _ = store.Load(ctx, "languages")
			return commitErr
		},
	)

	require.Error(t, err)
	assert.True(t, IsRollback(err))
	assert.ErrorIs(t, err, commitErr)
	assert.Equal(t, []string{"cpp", "go"}, seenDuringCommit)
	assert.Equal(t, []string{"languages"}, rolledBack)

	stored, _, _ := store.Load(context.Background(), "languages")
	assert.Equal(t, []string{"go", "cpp"}, stored)
}

func TestMutator_Apply_MutateErrorWritesNothing(t *testing.T) {
	store := NewMemoryStore[[]string]()
	m := NewMutator[[]string](store, logger.NewNop())

	committed := false
	_, err := m.Apply(context.Background(), "languages",
		seedWith([]string{"go"}),
		func(cur []string) ([]string, error) { return Reorder(cur, []string{"go", "go"}) },
		func(context.Context, []string) error { committed = true; return nil },
	)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.False(t, IsRollback(err))
	assert.False(t, committed)

	_, ok, _ := store.Load(context.Background(), "languages")
	assert.False(t, ok)
}

func TestMutator_Apply_SeedError(t *testing.T) {
	m := NewMutator[int](NewMemoryStore[int](), logger.NewNop())
	seedErr := errors.New("unreachable")

	_, err := m.Apply(context.Background(), "k",
		func(context.Context) (int, error) { return 0, seedErr },
		func(v int) (int, error) { return v + 1, nil },
		func(context.Context, int) error { return nil },
	)

	assert.ErrorIs(t, err, seedErr)
}

type failingSaveStore struct {
	*MemoryStore[int]
	saves int
}

func (s *failingSaveStore) Save(ctx context.Context, key string, v int) error {
	s.saves++
	if s.saves > 1 {
		return errors.New("redis down")
	}
	return s.MemoryStore.Save(ctx, key, v)
}

func TestMutator_Apply_RestoreFailureIsReported(t *testing.T) {
	store := &failingSaveStore{MemoryStore: NewMemoryStore[int]()}
	m := NewMutator[int](store, logger.NewNop())

	_, err := m.Apply(context.Background(), "k",
		func(context.Context) (int, error) { return 1, nil },
		func(v int) (int, error) { return v + 1, nil },
		func(context.Context, int) error { return errors.New("rejected") },
	)

	var rbErr *RollbackError
	require.True(t, errors.As(err, &rbErr))
	assert.EqualError(t, rbErr.RestoreErr, "redis down")
}

func TestMutator_Apply_SerialisesSameKey(t *testing.T) {
	store := NewMemoryStore[int]()
	m := NewMutator[int](store, logger.NewNop())

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Apply(context.Background(), "counter",
				func(context.Context) (int, error) { return 0, nil },
				func(v int) (int, error) { return v + 1, nil },
				func(context.Context, int) error { return nil },
			)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	v, _, _ := store.Load(context.Background(), "counter")
	assert.Equal(t, n, v)
	assert.Empty(t, m.locks.locks)
}

func TestMutator_Fill(t *testing.T) {
	m := NewMutator[[]string](NewMemoryStore[[]string](), logger.NewNop())

	fetches := 0
	fetch := func(context.Context) ([]string, error) {
		fetches++
		return []string{"go", "cpp"}, nil
	}

	got, err := m.Fill(context.Background(), "languages", fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "cpp"}, got)

	got, err = m.Fill(context.Background(), "languages", fetch)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "cpp"}, got)
	assert.Equal(t, 1, fetches)

	require.NoError(t, m.Invalidate(context.Background(), "languages"))
	_, err = m.Fill(context.Background(), "languages", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestMutator_Fill_FetchErrorLeavesKeyEmpty(t *testing.T) {
	store := NewMemoryStore[[]string]()
	m := NewMutator[[]string](store, logger.NewNop())

	_, err := m.Fill(context.Background(), "languages", func(context.Context) ([]string, error) {
		return nil, errors.New("timeout")
	})
	require.Error(t, err)

	_, ok, _ := store.Load(context.Background(), "languages")
	assert.False(t, ok)
}

func TestMutator_FillWaitsForApply(t *testing.T) {
	store := NewMemoryStore[[]string]()
	m := NewMutator[[]string](store, logger.NewNop())

	committing := make(chan struct{})
	release := make(chan struct{})
	applied := make(chan error, 1)
	go func() {
		_, err := m.Apply(context.Background(), "languages",
			seedWith([]string{"go", "cpp"}),
			func(cur []string) ([]string, error) { return Reorder(cur, []string{"cpp", "go"}) },
			func(context.Context, []string) error {
				close(committing)
				<-release
				return nil
			},
		)
		applied <- err
	}()
	<-committing
	close(release)

	got, err := m.Fill(context.Background(), "languages", seedWith([]string{"go", "cpp"}))
	require.NoError(t, err)
	require.NoError(t, <-applied)
	assert.Equal(t, []string{"cpp", "go"}, got)
}
