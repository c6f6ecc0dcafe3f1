package usecases

import (
	"context"

	"github.com/codearena/arena-admin/sdk/platform"
)

type mockDiscussGateway struct {
	ListPostsFunc     func(ctx context.Context, params platform.ListParams) (*platform.Page[platform.Post], error)
	GetPostFunc       func(ctx context.Context, id string) (*platform.Post, error)
	DeletePostFunc    func(ctx context.Context, id string) error
	SetPostPinnedFunc func(ctx context.Context, id string, pinned bool) (*platform.Post, error)
	ListCommentsFunc  func(ctx context.Context, postID string, params platform.ListParams) (*platform.Page[platform.Comment], error)
	DeleteCommentFunc func(ctx context.Context, id string) error
	VoteCommentFunc   func(ctx context.Context, id string, value int) (*platform.VoteResult, error)
}

func (m *mockDiscussGateway) ListPosts(ctx context.Context, params platform.ListParams) (*platform.Page[platform.Post], error) {
	if m.ListPostsFunc != nil {
		return m.ListPostsFunc(ctx, params)
	}
	return &platform.Page[platform.Post]{}, nil
}

func (m *mockDiscussGateway) GetPost(ctx context.Context, id string) (*platform.Post, error) {
	if m.GetPostFunc != nil {
		return m.GetPostFunc(ctx, id)
	}
	return &platform.Post{ID: id}, nil
}

func (m *mockDiscussGateway) DeletePost(ctx context.Context, id string) error {
	if m.DeletePostFunc != nil {
		return m.DeletePostFunc(ctx, id)
	}
	return nil
}

func (m *mockDiscussGateway) SetPostPinned(ctx context.Context, id string, pinned bool) (*platform.Post, error) {
	if m.SetPostPinnedFunc != nil {
		return m.SetPostPinnedFunc(ctx, id, pinned)
	}
	return &platform.Post{ID: id, Pinned: pinned}, nil
}

func (m *mockDiscussGateway) ListComments(ctx context.Context, postID string, params platform.ListParams) (*platform.Page[platform.Comment], error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, postID, params)
	}
	return &platform.Page[platform.Comment]{}, nil
}

func (m *mockDiscussGateway) DeleteComment(ctx context.Context, id string) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, id)
	}
	return nil
}

func (m *mockDiscussGateway) VoteComment(ctx context.Context, id string, value int) (*platform.VoteResult, error) {
	if m.VoteCommentFunc != nil {
		return m.VoteCommentFunc(ctx, id, value)
	}
	return &platform.VoteResult{UserVote: value}, nil
}
