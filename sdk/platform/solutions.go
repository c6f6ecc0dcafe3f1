package platform

import (
	"context"
	"net/http"
)

func (c *Client) ListSolutions(ctx context.Context, params ListParams) (*Page[Solution], error) {
	var page Page[Solution]
	if err := c.do(ctx, "solutions.list", http.MethodGet, "/admin/solutions", params.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetSolution(ctx context.Context, id string) (*Solution, error) {
	var s Solution
	if err := c.do(ctx, "solutions.get", http.MethodGet, "/admin/solutions/"+escape(id), nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) DeleteSolution(ctx context.Context, id string) error {
	return c.do(ctx, "solutions.delete", http.MethodDelete, "/admin/solutions/"+escape(id), nil, nil, nil)
}

// VoteSolution sets the caller's vote to value (-1, 0 or 1).
func (c *Client) VoteSolution(ctx context.Context, id string, value int) (*VoteResult, error) {
	var res VoteResult
	body := map[string]int{"value": value}
	if err := c.do(ctx, "solutions.vote", http.MethodPut, "/solutions/"+escape(id)+"/vote", nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
