package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codearena/arena-admin/internal/application/audit/audittest"
	"github.com/codearena/arena-admin/internal/application/common/listing"
	"github.com/codearena/arena-admin/internal/application/common/staff"
	"github.com/codearena/arena-admin/internal/application/optimistic"
	domainaudit "github.com/codearena/arena-admin/internal/domain/audit"
	apperrors "github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/services/markdown"
	"github.com/codearena/arena-admin/sdk/platform"
)

func TestListPosts_Excerpts(t *testing.T) {
	long := "# Title\n\n" + strings.Repeat("word ", 100)
	gw := &mockDiscussGateway{ListPostsFunc: func(_ context.Context, p platform.ListParams) (*platform.Page[platform.Post], error) {
		assert.Equal(t, "true", p.Filters["pinned"])
		return &platform.Page[platform.Post]{Items: []platform.Post{{ID: "p1", Content: long}}, Total: 1, Page: 1, Limit: 20}, nil
	}}
	uc := NewListPostsUseCase(gw, listing.NewFetcher(), markdown.NewRenderer(), logger.NewNop())

	pinned := true
	res, err := uc.Execute(context.Background(), ListPostsQuery{Pinned: &pinned})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.True(t, strings.HasPrefix(res.Items[0].Excerpt, "Title word"))
	assert.True(t, strings.HasSuffix(res.Items[0].Excerpt, "…"))
	assert.Empty(t, res.Items[0].Content)
}

func TestGetPost_SanitizedPreview(t *testing.T) {
	gw := &mockDiscussGateway{GetPostFunc: func(_ context.Context, id string) (*platform.Post, error) {
		return &platform.Post{ID: id, Content: "[x](javascript:alert(1)) and `code`"}, nil
	}}
	uc := NewGetPostUseCase(gw, markdown.NewRenderer(), logger.NewNop())

	post, err := uc.Execute(context.Background(), "p1")
	require.NoError(t, err)
	assert.Contains(t, post.ContentHTML, "<code>code</code>")
	assert.NotContains(t, post.ContentHTML, "javascript:")
}

func TestPinPost(t *testing.T) {
	sink := audittest.NewSink()
	uc := NewPinPostUseCase(&mockDiscussGateway{}, sink, logger.NewNop())

	post, err := uc.Execute(context.Background(), PinPostCommand{ID: "p1", Pinned: true})
	require.NoError(t, err)
	assert.True(t, post.Pinned)
	assert.Equal(t, "posts.pin", sink.Last().Action.Name)
}

func TestListComments_RequiresPost(t *testing.T) {
	uc := NewListCommentsUseCase(&mockDiscussGateway{}, listing.NewFetcher(), logger.NewNop())

	_, err := uc.Execute(context.Background(), ListCommentsQuery{})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestVoteComment_SeedsFromCallerState(t *testing.T) {
	var sent int
	gw := &mockDiscussGateway{VoteCommentFunc: func(_ context.Context, _ string, value int) (*platform.VoteResult, error) {
		sent = value
		return &platform.VoteResult{UserVote: value, Upvotes: 2, Downvotes: 0}, nil
	}}
	votes := optimistic.NewMutator(optimistic.NewMemoryStore[optimistic.VoteState](), logger.NewNop())
	uc := NewVoteCommentUseCase(gw, votes, audittest.NewSink(), logger.NewNop())
	ctx := staff.WithActor(context.Background(), staff.Actor{ID: "m1", Username: "mod", Role: "moderator"})

	state, err := uc.Execute(ctx, VoteCommentCommand{
		ID:        "c1",
		Direction: optimistic.VoteUp,
		Current:   optimistic.VoteState{UserVote: optimistic.VoteDown, Upvotes: 1, Downvotes: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, optimistic.VoteUp, sent, "switching from down to up")
	assert.Equal(t, optimistic.VoteState{UserVote: 1, Upvotes: 2}, state)
}

func TestVoteComment_RollbackIsAudited(t *testing.T) {
	gw := &mockDiscussGateway{VoteCommentFunc: func(context.Context, string, int) (*platform.VoteResult, error) {
		return nil, errors.New("connection reset")
	}}
	votes := optimistic.NewMutator(optimistic.NewMemoryStore[optimistic.VoteState](), logger.NewNop())
	sink := audittest.NewSink()
	uc := NewVoteCommentUseCase(gw, votes, sink, logger.NewNop())

	_, err := uc.Execute(context.Background(), VoteCommentCommand{ID: "c1", Direction: optimistic.VoteDown})
	require.Error(t, err)
	assert.Equal(t, domainaudit.OutcomeRolledBack, sink.Last().Outcome)

	_, err = uc.Execute(context.Background(), VoteCommentCommand{ID: "c1", Direction: optimistic.VoteDown, Current: optimistic.VoteState{UserVote: 5}})
	assert.True(t, apperrors.IsValidationError(err))
}
