package usecases

import (
	"context"

	"github.com/codearena/arena-admin/sdk/platform"
)

type mockUserGateway struct {
	ListUsersFunc      func(ctx context.Context, params platform.ListParams) (*platform.Page[platform.User], error)
	GetUserFunc        func(ctx context.Context, id string) (*platform.User, error)
	UpdateUserRoleFunc func(ctx context.Context, id, role string) (*platform.User, error)
	SetUserBannedFunc  func(ctx context.Context, id string, banned bool, reason string) (*platform.User, error)
	DeleteUserFunc     func(ctx context.Context, id string) error
}

func (m *mockUserGateway) ListUsers(ctx context.Context, params platform.ListParams) (*platform.Page[platform.User], error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx, params)
	}
	return &platform.Page[platform.User]{}, nil
}

func (m *mockUserGateway) GetUser(ctx context.Context, id string) (*platform.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return &platform.User{ID: id}, nil
}

func (m *mockUserGateway) UpdateUserRole(ctx context.Context, id, role string) (*platform.User, error) {
	if m.UpdateUserRoleFunc != nil {
		return m.UpdateUserRoleFunc(ctx, id, role)
	}
	return &platform.User{ID: id, Role: role}, nil
}

func (m *mockUserGateway) SetUserBanned(ctx context.Context, id string, banned bool, reason string) (*platform.User, error) {
	if m.SetUserBannedFunc != nil {
		return m.SetUserBannedFunc(ctx, id, banned, reason)
	}
	return &platform.User{ID: id, Banned: banned, BanReason: reason}, nil
}

func (m *mockUserGateway) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}
