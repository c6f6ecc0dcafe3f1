package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/optimistic"
	"github.com/codearena/arena-admin/sdk/platform"
)

type DiscussGateway interface {
	ListPosts(ctx context.Context, params platform.ListParams) (*platform.Page[platform.Post], error)
	GetPost(ctx context.Context, id string) (*platform.Post, error)
	DeletePost(ctx context.Context, id string) error
	SetPostPinned(ctx context.Context, id string, pinned bool) (*platform.Post, error)
	ListComments(ctx context.Context, postID string, params platform.ListParams) (*platform.Page[platform.Comment], error)
	DeleteComment(ctx context.Context, id string) error
	VoteComment(ctx context.Context, id string, value int) (*platform.VoteResult, error)
}

type VoteMutator = optimistic.Mutator[optimistic.VoteState]

const excerptRunes = 160

type PostDTO struct {
	platform.Post
	Excerpt     string `json:"excerpt,omitempty"`
	ContentHTML string `json:"content_html,omitempty"`
}
