package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/application/common/staff"
	"github.com/codearena/arena-admin/internal/application/optimistic"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

// VoteCommentCommand carries the state the caller last saw, since the
// platform has no single-comment endpoint to seed from.
type VoteCommentCommand struct {
	ID        string               `json:"-"`
	Direction int                  `json:"direction" validate:"oneof=-1 1"`
	Current   optimistic.VoteState `json:"current"`
}

type VoteCommentUseCase struct {
	gateway DiscussGateway
	votes   *VoteMutator
	audit   audit.Sink
	logger  logger.Interface
}

func NewVoteCommentUseCase(gateway DiscussGateway, votes *VoteMutator, sink audit.Sink, logger logger.Interface) *VoteCommentUseCase {
	return &VoteCommentUseCase{gateway: gateway, votes: votes, audit: sink, logger: logger}
}

func (uc *VoteCommentUseCase) Execute(ctx context.Context, cmd VoteCommentCommand) (state optimistic.VoteState, err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "comments.vote", Resource: "comment", ResourceID: cmd.ID, Payload: map[string]int{
			"direction": cmd.Direction,
		}}, err)
	}()

	if err := utils.ValidateID(cmd.ID); err != nil {
		return state, err
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		return state, err
	}
	if cmd.Current.UserVote < optimistic.VoteDown || cmd.Current.UserVote > optimistic.VoteUp {
		return state, errors.NewValidationError("Validation failed", "current.user_vote must be -1, 0 or 1")
	}

	key := "comment:" + cmd.ID + ":" + staff.FromContext(ctx).ID
	state, err = optimistic.Vote(ctx, uc.votes, key, cmd.Direction,
		func(context.Context) (optimistic.VoteState, error) {
			return cmd.Current, nil
		},
		func(ctx context.Context, value int) (optimistic.VoteState, error) {
			res, err := uc.gateway.VoteComment(ctx, cmd.ID, value)
			if err != nil {
				return optimistic.VoteState{}, err
			}
			return optimistic.VoteState{UserVote: res.UserVote, Upvotes: res.Upvotes, Downvotes: res.Downvotes}, nil
		},
	)
	if err != nil {
		uc.logger.Errorw("failed to vote on comment", "id", cmd.ID, "error", err)
		return optimistic.VoteState{}, errors.FromPlatform(err, "failed to vote on comment")
	}

	return state, nil
}
