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

type VoteSolutionCommand struct {
	ID        string `json:"-"`
	Direction int    `json:"direction" validate:"oneof=-1 1"`
}

// VoteSolutionUseCase toggles the acting staff member's vote.
type VoteSolutionUseCase struct {
	gateway SolutionGateway
	votes   *VoteMutator
	audit   audit.Sink
	logger  logger.Interface
}

func NewVoteSolutionUseCase(gateway SolutionGateway, votes *VoteMutator, sink audit.Sink, logger logger.Interface) *VoteSolutionUseCase {
	return &VoteSolutionUseCase{gateway: gateway, votes: votes, audit: sink, logger: logger}
}

func (uc *VoteSolutionUseCase) Execute(ctx context.Context, cmd VoteSolutionCommand) (state optimistic.VoteState, err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "solutions.vote", Resource: "solution", ResourceID: cmd.ID, Payload: cmd}, err)
	}()

	if err := utils.ValidateID(cmd.ID); err != nil {
		return state, err
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		return state, err
	}

	key := "solution:" + cmd.ID + ":" + staff.FromContext(ctx).ID
	state, err = optimistic.Vote(ctx, uc.votes, key, cmd.Direction,
		func(ctx context.Context) (optimistic.VoteState, error) {
			s, err := uc.gateway.GetSolution(ctx, cmd.ID)
			if err != nil {
				return optimistic.VoteState{}, errors.FromPlatform(err, "failed to get solution")
			}
			return optimistic.VoteState{UserVote: s.UserVote, Upvotes: s.Upvotes, Downvotes: s.Downvotes}, nil
		},
		func(ctx context.Context, value int) (optimistic.VoteState, error) {
			res, err := uc.gateway.VoteSolution(ctx, cmd.ID, value)
			if err != nil {
				return optimistic.VoteState{}, err
			}
			return optimistic.VoteState{UserVote: res.UserVote, Upvotes: res.Upvotes, Downvotes: res.Downvotes}, nil
		},
	)
	if err != nil {
		uc.logger.Errorw("failed to vote on solution", "id", cmd.ID, "error", err)
		return optimistic.VoteState{}, errors.FromPlatform(err, "failed to vote on solution")
	}

	return state, nil
}
