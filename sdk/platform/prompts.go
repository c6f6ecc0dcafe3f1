package platform

import (
	"context"
	"net/http"
)

func (c *Client) ListPrompts(ctx context.Context) ([]AIPrompt, error) {
	var prompts []AIPrompt
	if err := c.do(ctx, "prompts.list", http.MethodGet, "/admin/ai-prompts", nil, nil, &prompts); err != nil {
		return nil, err
	}
	return prompts, nil
}

func (c *Client) GetPrompt(ctx context.Context, id string) (*AIPrompt, error) {
	var p AIPrompt
	if err := c.do(ctx, "prompts.get", http.MethodGet, "/admin/ai-prompts/"+escape(id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreatePrompt(ctx context.Context, in PromptInput) (*AIPrompt, error) {
	var p AIPrompt
	if err := c.do(ctx, "prompts.create", http.MethodPost, "/admin/ai-prompts", nil, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdatePrompt(ctx context.Context, id string, in PromptInput) (*AIPrompt, error) {
	var p AIPrompt
	if err := c.do(ctx, "prompts.update", http.MethodPut, "/admin/ai-prompts/"+escape(id), nil, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeletePrompt(ctx context.Context, id string) error {
	return c.do(ctx, "prompts.delete", http.MethodDelete, "/admin/ai-prompts/"+escape(id), nil, nil, nil)
}
