package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	discussUsecases "github.com/codearena/arena-admin/internal/application/discuss/usecases"
	"github.com/codearena/arena-admin/internal/application/optimistic"
	"github.com/codearena/arena-admin/internal/shared/constants"
	"github.com/codearena/arena-admin/internal/shared/services/markdown"
	"github.com/codearena/arena-admin/sdk/platform"
)

var markdownRenderer = markdown.NewRenderer()

var (
	postHead    = []string{"ID", "TITLE", "AUTHOR", "TAGS", "PINNED", "COMMENTS", "VOTES", "CREATED"}
	commentHead = []string{"ID", "AUTHOR", "CONTENT", "VOTES", "CREATED"}
)

func postRow(p discussUsecases.PostDTO) []string {
	return []string{
		p.ID, truncate(p.Title, 40), p.AuthorName, strings.Join(p.Tags, ","), yesNo(p.Pinned),
		itoa(p.CommentCount), fmt.Sprintf("+%d/-%d", p.Upvotes, p.Downvotes), when(p.CreatedAt),
	}
}

func commentRow(c platform.Comment) []string {
	return []string{c.ID, c.AuthorName, truncate(c.Content, 60), fmt.Sprintf("+%d/-%d", c.Upvotes, c.Downvotes), when(c.CreatedAt)}
}

func newPostsCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "posts",
		Aliases: []string{"post"},
		Short:   "Moderate discussion posts",
	}

	var (
		lf            listFlags
		authorID, tag string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List posts",
		Args:  cobra.NoArgs,
	}
	list.RunE = o.run(func(ctx context.Context, app *App, _ []string) error {
		uc := discussUsecases.NewListPostsUseCase(app.client, app.fetcher, markdownRenderer, app.log)
		res, err := uc.Execute(ctx, discussUsecases.ListPostsQuery{
			ListQuery: lf.query(),
			AuthorID:  authorID,
			Tag:       tag,
			Pinned:    optionalBool(list, "pinned"),
		})
		if err != nil {
			return err
		}
		return app.out.Print(listView(res, postHead, postRow))
	})
	lf.register(list)
	list.Flags().StringVar(&authorID, "author", "", "Filter by author id")
	list.Flags().StringVar(&tag, "tag", "", "Filter by tag")
	list.Flags().Bool("pinned", false, "Filter by pinned state")

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show a post with its content",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				p, err := discussUsecases.NewGetPostUseCase(app.client, markdownRenderer, app.log).Execute(ctx, args[0])
				if err != nil {
					return err
				}
				if err := app.out.Print(itemView(*p, postHead, postRow)); err != nil {
					return err
				}
				app.out.Message("\n%s", p.Content)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a post",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				if err := discussUsecases.NewDeletePostUseCase(app.client, app.sink, app.log).Execute(ctx, args[0]); err != nil {
					return err
				}
				app.out.Message("Post %s deleted", args[0])
				return nil
			}),
		},
		newPinCommand(o, true),
		newPinCommand(o, false),
	)

	return cmd
}

func newPinCommand(o *Options, pinned bool) *cobra.Command {
	use, short := "pin <id>", "Pin a post to the top of the forum"
	if !pinned {
		use, short = "unpin <id>", "Unpin a post"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, app *App, args []string) error {
			uc := discussUsecases.NewPinPostUseCase(app.client, app.sink, app.log)
			p, err := uc.Execute(ctx, discussUsecases.PinPostCommand{ID: args[0], Pinned: pinned})
			if err != nil {
				return err
			}
			app.out.Message("Post %s pinned: %s", p.ID, yesNo(p.Pinned))
			return nil
		}),
	}
}

func newCommentsCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comments",
		Aliases: []string{"comment"},
		Short:   "Moderate post comments",
	}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list <post-id>",
		Short: "List a post's comments",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, app *App, args []string) error {
			uc := discussUsecases.NewListCommentsUseCase(app.client, app.fetcher, app.log)
			res, err := uc.Execute(ctx, discussUsecases.ListCommentsQuery{ListQuery: lf.query(), PostID: args[0]})
			if err != nil {
				return err
			}
			return app.out.Print(listView(res, commentHead, commentRow))
		}),
	}
	lf.register(list)

	var postID string
	vote := &cobra.Command{
		Use:   "vote <id> --post <post-id> --up|--down",
		Short: "Vote on a comment",
		Args:  cobra.ExactArgs(1),
	}
	vote.RunE = o.run(func(ctx context.Context, app *App, args []string) error {
		dir, err := voteDirection(vote)
		if err != nil {
			return err
		}
		current, err := findComment(ctx, app, postID, args[0])
		if err != nil {
			return err
		}
		uc := discussUsecases.NewVoteCommentUseCase(app.client, app.voteMutator(), app.sink, app.log)
		state, err := uc.Execute(ctx, discussUsecases.VoteCommentCommand{
			ID:        args[0],
			Direction: dir,
			Current:   optimistic.VoteState{UserVote: current.UserVote, Upvotes: current.Upvotes, Downvotes: current.Downvotes},
		})
		if err != nil {
			return err
		}
		return app.out.Print(itemView(state, voteHead, voteRow))
	})
	registerVoteFlags(vote)
	vote.Flags().StringVar(&postID, "post", "", "Post the comment belongs to")
	_ = vote.MarkFlagRequired("post")

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a comment",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				if err := discussUsecases.NewDeleteCommentUseCase(app.client, app.sink, app.log).Execute(ctx, args[0]); err != nil {
					return err
				}
				app.out.Message("Comment %s deleted", args[0])
				return nil
			}),
		},
		vote,
	)

	return cmd
}

// findComment pages through a post's comments; the platform has no
// single-comment endpoint and a vote needs the current counts.
func findComment(ctx context.Context, app *App, postID, commentID string) (*platform.Comment, error) {
	uc := discussUsecases.NewListCommentsUseCase(app.client, app.fetcher, app.log)
	for page := 1; ; page++ {
		res, err := uc.Execute(ctx, discussUsecases.ListCommentsQuery{
			ListQuery: dto.ListQuery{Page: page, PageSize: constants.MaxPageSize},
			PostID:    postID,
		})
		if err != nil {
			return nil, err
		}
		for i := range res.Items {
			if res.Items[i].ID == commentID {
				return &res.Items[i], nil
			}
		}
		if len(res.Items) == 0 || int64(page*res.PageSize) >= res.Total {
			return nil, fmt.Errorf("comment %s not found on post %s", commentID, postID)
		}
	}
}
