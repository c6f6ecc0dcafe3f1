package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/application/common/listing"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type ListCommentsQuery struct {
	dto.ListQuery
	PostID string
}

type ListCommentsUseCase struct {
	gateway DiscussGateway
	fetcher *listing.Fetcher
	logger  logger.Interface
}

func NewListCommentsUseCase(gateway DiscussGateway, fetcher *listing.Fetcher, logger logger.Interface) *ListCommentsUseCase {
	return &ListCommentsUseCase{gateway: gateway, fetcher: fetcher, logger: logger}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) (*dto.ListResult[platform.Comment], error) {
	if err := utils.ValidateID(query.PostID); err != nil {
		return nil, err
	}

	q := query.ListQuery
	page, err := listing.Do(ctx, uc.fetcher, listing.Key("posts/"+query.PostID+"/comments", q), func(ctx context.Context) (*platform.Page[platform.Comment], error) {
		return uc.gateway.ListComments(ctx, query.PostID, q.Params())
	})
	if err != nil {
		uc.logger.Errorw("failed to list comments", "post_id", query.PostID, "error", err)
		return nil, errors.FromPlatform(err, "failed to list comments")
	}

	return dto.FromPage(page, q), nil
}
