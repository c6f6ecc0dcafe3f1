package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/optimistic"
	"github.com/codearena/arena-admin/sdk/platform"
)

type SolutionGateway interface {
	ListSolutions(ctx context.Context, params platform.ListParams) (*platform.Page[platform.Solution], error)
	GetSolution(ctx context.Context, id string) (*platform.Solution, error)
	DeleteSolution(ctx context.Context, id string) error
	VoteSolution(ctx context.Context, id string, value int) (*platform.VoteResult, error)
}

// VoteMutator mirrors per-staff vote state.
type VoteMutator = optimistic.Mutator[optimistic.VoteState]
