package optimistic

import (
	"context"
	"fmt"

	"github.com/codearena/arena-admin/internal/shared/errors"
)

const (
	VoteDown = -1
	VoteNone = 0
	VoteUp   = 1
)

// VoteState is a staff member's vote on an item together with the item's counts.
type VoteState struct {
	UserVote  int `json:"user_vote"`
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// Toggle applies a click on the up (1) or down (-1) button. Clicking the
// current direction removes the vote, the opposite direction switches it.
func Toggle(state VoteState, dir int) (VoteState, error) {
	if dir != VoteUp && dir != VoteDown {
		return state, errors.NewValidationError("invalid vote direction", fmt.Sprintf("%d", dir))
	}

	next := state
	switch state.UserVote {
	case dir:
		next.UserVote = VoteNone
		next.adjust(dir, -1)
	case -dir:
		next.UserVote = dir
		next.adjust(-dir, -1)
		next.adjust(dir, 1)
	default:
		next.UserVote = dir
		next.adjust(dir, 1)
	}
	return next, nil
}

func (s *VoteState) adjust(dir, delta int) {
	if dir == VoteUp {
		s.Upvotes = max(0, s.Upvotes+delta)
		return
	}
	s.Downvotes = max(0, s.Downvotes+delta)
}

// SendVoteFunc submits value (-1, 0 or 1) and returns the server's resulting state.
type SendVoteFunc func(ctx context.Context, value int) (VoteState, error)

// Vote toggles the vote under key optimistically. On success the mirror holds
// the server's counts so later toggles start from them.
func Vote(ctx context.Context, m *Mutator[VoteState], key string, dir int, seed SeedFunc[VoteState], send SendVoteFunc) (VoteState, error) {
	return m.ApplyConfirmed(ctx, key, seed,
		func(current VoteState) (VoteState, error) {
			return Toggle(current, dir)
		},
		func(ctx context.Context, next VoteState) (VoteState, error) {
			return send(ctx, next.UserVote)
		},
	)
}
