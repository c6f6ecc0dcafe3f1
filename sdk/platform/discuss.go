package platform

import (
	"context"
	"net/http"
)

func (c *Client) ListPosts(ctx context.Context, params ListParams) (*Page[Post], error) {
	var page Page[Post]
	if err := c.do(ctx, "posts.list", http.MethodGet, "/admin/posts", params.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	var post Post
	if err := c.do(ctx, "posts.get", http.MethodGet, "/admin/posts/"+escape(id), nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, "posts.delete", http.MethodDelete, "/admin/posts/"+escape(id), nil, nil, nil)
}

func (c *Client) SetPostPinned(ctx context.Context, id string, pinned bool) (*Post, error) {
	var post Post
	body := map[string]bool{"pinned": pinned}
	if err := c.do(ctx, "posts.pin", http.MethodPatch, "/admin/posts/"+escape(id)+"/pin", nil, body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) ListComments(ctx context.Context, postID string, params ListParams) (*Page[Comment], error) {
	var page Page[Comment]
	path := "/admin/posts/" + escape(postID) + "/comments"
	if err := c.do(ctx, "comments.list", http.MethodGet, path, params.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.do(ctx, "comments.delete", http.MethodDelete, "/admin/comments/"+escape(id), nil, nil, nil)
}

// VoteComment sets the caller's vote to value (-1, 0 or 1).
func (c *Client) VoteComment(ctx context.Context, id string, value int) (*VoteResult, error) {
	var res VoteResult
	body := map[string]int{"value": value}
	if err := c.do(ctx, "comments.vote", http.MethodPut, "/comments/"+escape(id)+"/vote", nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
