package platform

import (
	"context"
	"net/http"
)

func (c *Client) ListUsers(ctx context.Context, params ListParams) (*Page[User], error) {
	var page Page[User]
	if err := c.do(ctx, "users.list", http.MethodGet, "/admin/users", params.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.do(ctx, "users.get", http.MethodGet, "/admin/users/"+escape(id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUserRole(ctx context.Context, id, role string) (*User, error) {
	var user User
	body := map[string]string{"role": role}
	if err := c.do(ctx, "users.role", http.MethodPatch, "/admin/users/"+escape(id)+"/role", nil, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetUserBanned bans (with reason) or unbans a user.
func (c *Client) SetUserBanned(ctx context.Context, id string, banned bool, reason string) (*User, error) {
	var user User
	body := map[string]any{"banned": banned, "reason": reason}
	if err := c.do(ctx, "users.ban", http.MethodPatch, "/admin/users/"+escape(id)+"/ban", nil, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, "users.delete", http.MethodDelete, "/admin/users/"+escape(id), nil, nil, nil)
}
