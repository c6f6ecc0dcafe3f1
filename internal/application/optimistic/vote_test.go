package optimistic

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codearena/arena-admin/internal/shared/logger"
)

func TestToggle(t *testing.T) {
	tests := []struct {
		name  string
		state VoteState
		dir   int
		want  VoteState
	}{
		{
			name:  "add upvote",
			state: VoteState{UserVote: VoteNone, Upvotes: 2, Downvotes: 1},
			dir:   VoteUp,
			want:  VoteState{UserVote: VoteUp, Upvotes: 3, Downvotes: 1},
		},
		{
			name:  "add downvote",
			state: VoteState{UserVote: VoteNone, Upvotes: 2, Downvotes: 1},
			dir:   VoteDown,
			want:  VoteState{UserVote: VoteDown, Upvotes: 2, Downvotes: 2},
		},
		{
			name:  "remove upvote",
			state: VoteState{UserVote: VoteUp, Upvotes: 3, Downvotes: 1},
			dir:   VoteUp,
			want:  VoteState{UserVote: VoteNone, Upvotes: 2, Downvotes: 1},
		},
		{
			name:  "switch up to down",
			state: VoteState{UserVote: VoteUp, Upvotes: 3, Downvotes: 1},
			dir:   VoteDown,
			want:  VoteState{UserVote: VoteDown, Upvotes: 2, Downvotes: 2},
		},
		{
			name:  "switch down to up",
			state: VoteState{UserVote: VoteDown, Upvotes: 0, Downvotes: 1},
			dir:   VoteUp,
			want:  VoteState{UserVote: VoteUp, Upvotes: 1, Downvotes: 0},
		},
		{
			name:  "counts never negative",
			state: VoteState{UserVote: VoteUp, Upvotes: 0, Downvotes: 0},
			dir:   VoteUp,
			want:  VoteState{UserVote: VoteNone, Upvotes: 0, Downvotes: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Toggle(tt.state, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToggle_InvalidDirection(t *testing.T) {
	state := VoteState{UserVote: VoteUp, Upvotes: 1}
	got, err := Toggle(state, 0)
	assert.Error(t, err)
	assert.Equal(t, state, got)
}

func TestToggle_TwiceRestores(t *testing.T) {
	start := VoteState{UserVote: VoteNone, Upvotes: 4, Downvotes: 2}
	once, err := Toggle(start, VoteDown)
	require.NoError(t, err)
	twice, err := Toggle(once, VoteDown)
	require.NoError(t, err)
	assert.Equal(t, start, twice)
}

func TestVote_StoresServerState(t *testing.T) {
	m := NewMutator[VoteState](NewMemoryStore[VoteState](), logger.NewNop())
	seed := func(context.Context) (VoteState, error) {
		return VoteState{Upvotes: 4}, nil
	}

	var sent int
	got, err := Vote(context.Background(), m, "solution:s1:u1", VoteUp, seed, func(_ context.Context, value int) (VoteState, error) {
		sent = value
		// someone else voted in the meantime
		return VoteState{UserVote: value, Upvotes: 6}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, VoteUp, sent)
	assert.Equal(t, VoteState{UserVote: VoteUp, Upvotes: 6}, got)

	stored, ok, _ := m.Store().Load(context.Background(), "solution:s1:u1")
	require.True(t, ok)
	assert.Equal(t, got, stored)

	// a second click removes the vote
	_, err = Vote(context.Background(), m, "solution:s1:u1", VoteUp, seed, func(_ context.Context, value int) (VoteState, error) {
		sent = value
		return VoteState{UserVote: value, Upvotes: 5}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, VoteNone, sent)
}

func TestVote_RollsBack(t *testing.T) {
	m := NewMutator[VoteState](NewMemoryStore[VoteState](), logger.NewNop())
	seed := func(context.Context) (VoteState, error) {
		return VoteState{UserVote: VoteDown, Downvotes: 1}, nil
	}

	_, err := Vote(context.Background(), m, "comment:c1:u1", VoteUp, seed, func(context.Context, int) (VoteState, error) {
		return VoteState{}, errors.New("503")
	})
	require.Error(t, err)
	assert.True(t, IsRollback(err))

	stored, ok, _ := m.Store().Load(context.Background(), "comment:c1:u1")
	require.True(t, ok)
	assert.Equal(t, VoteState{UserVote: VoteDown, Downvotes: 1}, stored)
}

// blockingStore pauses the n-th Save until release is closed.
type blockingStore struct {
	*MemoryStore[VoteState]
	mu      sync.Mutex
	saves   int
	blockAt int
	reached chan struct{}
	release chan struct{}
}

func (s *blockingStore) Save(ctx context.Context, key string, v VoteState) error {
	s.mu.Lock()
	s.saves++
	n := s.saves
	s.mu.Unlock()
	if n == s.blockAt {
		close(s.reached)
		<-s.release
	}
	return s.MemoryStore.Save(ctx, key, v)
}

func TestVote_ConfirmedStateSavedBeforeNextVote(t *testing.T) {
	store := &blockingStore{
		MemoryStore: NewMemoryStore[VoteState](),
		blockAt:     2, // the first vote's confirmed save
		reached:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	m := NewMutator[VoteState](store, logger.NewNop())

	var (
		serverMu sync.Mutex
		server   = VoteState{Upvotes: 99}
	)
	send := func(_ context.Context, value int) (VoteState, error) {
		serverMu.Lock()
		defer serverMu.Unlock()
		server = VoteState{UserVote: value, Upvotes: 99}
		if value == VoteUp {
			server.Upvotes = 100
		}
		return server, nil
	}
	seed := func(context.Context) (VoteState, error) { return VoteState{Upvotes: 99}, nil }

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := Vote(context.Background(), m, "solution:s1:u1", VoteUp, seed, send)
		assert.NoError(t, err)
	}()
	<-store.reached

	secondSent := make(chan int, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := Vote(context.Background(), m, "solution:s1:u1", VoteUp, seed, func(ctx context.Context, value int) (VoteState, error) {
			secondSent <- value
			return send(ctx, value)
		})
		assert.NoError(t, err)
	}()

	select {
	case <-secondSent:
		t.Fatal("second vote ran while the first still held the key")
	case <-time.After(50 * time.Millisecond):
	}

	close(store.release)
	wg.Wait()

	assert.Equal(t, VoteNone, <-secondSent, "second click on up removes the vote")

	stored, ok, _ := m.Store().Load(context.Background(), "solution:s1:u1")
	require.True(t, ok)
	serverMu.Lock()
	assert.Equal(t, server, stored)
	serverMu.Unlock()
	assert.Equal(t, VoteState{UserVote: VoteNone, Upvotes: 99}, stored)
}
