package usecases

import (
	"context"

	"github.com/codearena/arena-admin/sdk/platform"
)

type UserGateway interface {
	ListUsers(ctx context.Context, params platform.ListParams) (*platform.Page[platform.User], error)
	GetUser(ctx context.Context, id string) (*platform.User, error)
	UpdateUserRole(ctx context.Context, id, role string) (*platform.User, error)
	SetUserBanned(ctx context.Context, id string, banned bool, reason string) (*platform.User, error)
	DeleteUser(ctx context.Context, id string) error
}
