package console

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codearena/arena-admin/internal/application/optimistic"
	solutionUsecases "github.com/codearena/arena-admin/internal/application/solution/usecases"
	"github.com/codearena/arena-admin/sdk/platform"
)

var (
	solutionHead = []string{"ID", "PROBLEM", "TITLE", "AUTHOR", "LANGUAGE", "VOTES", "CREATED"}
	voteHead     = []string{"YOUR VOTE", "UP", "DOWN"}
)

func solutionRow(s platform.Solution) []string {
	return []string{
		s.ID, truncate(s.ProblemTitle, 30), truncate(s.Title, 40), s.AuthorName, s.LanguageID,
		fmt.Sprintf("+%d/-%d", s.Upvotes, s.Downvotes), when(s.CreatedAt),
	}
}

func voteRow(v optimistic.VoteState) []string {
	mine := "none"
	switch v.UserVote {
	case optimistic.VoteUp:
		mine = "up"
	case optimistic.VoteDown:
		mine = "down"
	}
	return []string{mine, itoa(v.Upvotes), itoa(v.Downvotes)}
}

func (a *App) voteMutator() *optimistic.Mutator[optimistic.VoteState] {
	return optimistic.NewMutator[optimistic.VoteState](optimistic.NewMemoryStore[optimistic.VoteState](), a.log)
}

// voteDirection reads --up/--down; exactly one must be given.
func voteDirection(cmd *cobra.Command) (int, error) {
	up, _ := cmd.Flags().GetBool("up")
	down, _ := cmd.Flags().GetBool("down")
	switch {
	case up && !down:
		return optimistic.VoteUp, nil
	case down && !up:
		return optimistic.VoteDown, nil
	default:
		return 0, fmt.Errorf("pass exactly one of --up or --down")
	}
}

func registerVoteFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("up", false, "Upvote; repeating the same vote removes it")
	cmd.Flags().Bool("down", false, "Downvote; repeating the same vote removes it")
	cmd.MarkFlagsMutuallyExclusive("up", "down")
}

func newSolutionsCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "solutions",
		Aliases: []string{"solution"},
		Short:   "Moderate community solutions",
	}

	var (
		lf                              listFlags
		problemID, languageID, authorID string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List solutions",
		Args:  cobra.NoArgs,
		RunE: o.run(func(ctx context.Context, app *App, _ []string) error {
			uc := solutionUsecases.NewListSolutionsUseCase(app.client, app.fetcher, app.log)
			res, err := uc.Execute(ctx, solutionUsecases.ListSolutionsQuery{
				ListQuery:  lf.query(),
				ProblemID:  problemID,
				LanguageID: languageID,
				AuthorID:   authorID,
			})
			if err != nil {
				return err
			}
			return app.out.Print(listView(res, solutionHead, solutionRow))
		}),
	}
	lf.register(list)
	list.Flags().StringVar(&problemID, "problem", "", "Filter by problem id")
	list.Flags().StringVar(&languageID, "language", "", "Filter by language id")
	list.Flags().StringVar(&authorID, "author", "", "Filter by author id")

	vote := &cobra.Command{
		Use:   "vote <id> --up|--down",
		Short: "Vote on a solution",
		Args:  cobra.ExactArgs(1),
	}
	vote.RunE = o.run(func(ctx context.Context, app *App, args []string) error {
		dir, err := voteDirection(vote)
		if err != nil {
			return err
		}
		uc := solutionUsecases.NewVoteSolutionUseCase(app.client, app.voteMutator(), app.sink, app.log)
		state, err := uc.Execute(ctx, solutionUsecases.VoteSolutionCommand{ID: args[0], Direction: dir})
		if err != nil {
			return err
		}
		return app.out.Print(itemView(state, voteHead, voteRow))
	})
	registerVoteFlags(vote)

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show a solution with its content",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				s, err := solutionUsecases.NewGetSolutionUseCase(app.client, markdownRenderer, app.log).Execute(ctx, args[0])
				if err != nil {
					return err
				}
				if err := app.out.Print(itemView(*s, solutionHead, func(s solutionUsecases.SolutionDTO) []string {
					return solutionRow(s.Solution)
				})); err != nil {
					return err
				}
				app.out.Message("\n%s", s.Content)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a solution",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				if err := solutionUsecases.NewDeleteSolutionUseCase(app.client, app.sink, app.log).Execute(ctx, args[0]); err != nil {
					return err
				}
				app.out.Message("Solution %s deleted", args[0])
				return nil
			}),
		},
		vote,
	)

	return cmd
}
