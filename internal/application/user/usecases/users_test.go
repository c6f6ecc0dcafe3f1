package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codearena/arena-admin/internal/application/audit/audittest"
	"github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/application/common/listing"
	"github.com/codearena/arena-admin/internal/application/common/staff"
	domainaudit "github.com/codearena/arena-admin/internal/domain/audit"
	apperrors "github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

func TestListUsers_PassesFilters(t *testing.T) {
	var got platform.ListParams
	gw := &mockUserGateway{ListUsersFunc: func(_ context.Context, p platform.ListParams) (*platform.Page[platform.User], error) {
		got = p
		return &platform.Page[platform.User]{Items: []platform.User{{ID: "u1"}}, Total: 41, Page: 3, Limit: 20}, nil
	}}
	uc := NewListUsersUseCase(gw, listing.NewFetcher(), logger.NewNop())

	banned := true
	res, err := uc.Execute(context.Background(), ListUsersQuery{
		ListQuery: dto.ListQuery{Page: 3, Search: "ali"},
		Role:      "moderator",
		Banned:    &banned,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(41), res.Total)
	assert.Equal(t, 3, res.Page)

	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 20, got.Limit)
	assert.Equal(t, "ali", got.Search)
	assert.Equal(t, "moderator", got.Filters["role"])
	assert.Equal(t, "true", got.Filters["banned"])
}

func TestListUsers_RejectsUnknownRole(t *testing.T) {
	uc := NewListUsersUseCase(&mockUserGateway{}, listing.NewFetcher(), logger.NewNop())

	_, err := uc.Execute(context.Background(), ListUsersQuery{Role: "owner"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestChangeUserRole(t *testing.T) {
	sink := audittest.NewSink()
	uc := NewChangeUserRoleUseCase(&mockUserGateway{}, sink, logger.NewNop())
	ctx := staff.WithActor(context.Background(), staff.Actor{ID: "admin-1", Username: "root", Role: "admin"})

	user, err := uc.Execute(ctx, ChangeUserRoleCommand{ID: "u1", Role: "moderator"})
	require.NoError(t, err)
	assert.Equal(t, "moderator", user.Role)
	assert.Equal(t, domainaudit.OutcomeSucceeded, sink.Last().Outcome)

	_, err = uc.Execute(ctx, ChangeUserRoleCommand{ID: "u1", Role: "owner"})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(ctx, ChangeUserRoleCommand{ID: "admin-1", Role: "user"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeForbidden, apperrors.GetAppError(err).Type)
}

func TestSetUserBan_ReasonRequired(t *testing.T) {
	uc := NewSetUserBanUseCase(&mockUserGateway{}, audittest.NewSink(), logger.NewNop())

	_, err := uc.Execute(context.Background(), SetUserBanCommand{ID: "u1", Banned: true, Reason: "  "})
	assert.True(t, apperrors.IsValidationError(err))

	user, err := uc.Execute(context.Background(), SetUserBanCommand{ID: "u1", Banned: true, Reason: " spam "})
	require.NoError(t, err)
	assert.True(t, user.Banned)
	assert.Equal(t, "spam", user.BanReason)

	user, err = uc.Execute(context.Background(), SetUserBanCommand{ID: "u1", Banned: false})
	require.NoError(t, err)
	assert.False(t, user.Banned)
}

func TestDeleteUser_NotSelf(t *testing.T) {
	uc := NewDeleteUserUseCase(&mockUserGateway{}, audittest.NewSink(), logger.NewNop())
	ctx := staff.WithActor(context.Background(), staff.Actor{ID: "u1", Username: "me", Role: "admin"})

	err := uc.Execute(ctx, "u1")
	require.Error(t, err)
	assert.NoError(t, uc.Execute(ctx, "u2"))
}
