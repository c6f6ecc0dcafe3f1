package usecases

import (
	"context"
	"strconv"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/application/common/listing"
	"github.com/codearena/arena-admin/internal/shared/authorization"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

type ListUsersQuery struct {
	dto.ListQuery
	Role   string
	Banned *bool
}

type ListUsersUseCase struct {
	gateway UserGateway
	fetcher *listing.Fetcher
	logger  logger.Interface
}

func NewListUsersUseCase(gateway UserGateway, fetcher *listing.Fetcher, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{gateway: gateway, fetcher: fetcher, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*dto.ListResult[platform.User], error) {
	if query.Role != "" && !authorization.UserRole(query.Role).IsValid() {
		return nil, errors.NewValidationError("invalid role filter", query.Role)
	}

	q := query.ListQuery
	q.Filters = map[string]string{"role": query.Role}
	if query.Banned != nil {
		q.Filters["banned"] = strconv.FormatBool(*query.Banned)
	}

	page, err := listing.Do(ctx, uc.fetcher, listing.Key("users", q), func(ctx context.Context) (*platform.Page[platform.User], error) {
		return uc.gateway.ListUsers(ctx, q.Params())
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.FromPlatform(err, "failed to list users")
	}

	return dto.FromPage(page, q), nil
}
