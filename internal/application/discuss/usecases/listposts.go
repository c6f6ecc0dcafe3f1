package usecases

import (
	"context"
	"strconv"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/application/common/listing"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/services/markdown"
	"github.com/codearena/arena-admin/sdk/platform"
)

type ListPostsQuery struct {
	dto.ListQuery
	AuthorID string
	Tag      string
	Pinned   *bool
}

type ListPostsUseCase struct {
	gateway  DiscussGateway
	fetcher  *listing.Fetcher
	renderer markdown.Renderer
	logger   logger.Interface
}

func NewListPostsUseCase(gateway DiscussGateway, fetcher *listing.Fetcher, renderer markdown.Renderer, logger logger.Interface) *ListPostsUseCase {
	return &ListPostsUseCase{gateway: gateway, fetcher: fetcher, renderer: renderer, logger: logger}
}

func (uc *ListPostsUseCase) Execute(ctx context.Context, query ListPostsQuery) (*dto.ListResult[PostDTO], error) {
	q := query.ListQuery
	q.Filters = map[string]string{"author_id": query.AuthorID, "tag": query.Tag}
	if query.Pinned != nil {
		q.Filters["pinned"] = strconv.FormatBool(*query.Pinned)
	}

	page, err := listing.Do(ctx, uc.fetcher, listing.Key("posts", q), func(ctx context.Context) (*platform.Page[platform.Post], error) {
		return uc.gateway.ListPosts(ctx, q.Params())
	})
	if err != nil {
		uc.logger.Errorw("failed to list posts", "error", err)
		return nil, errors.FromPlatform(err, "failed to list posts")
	}

	res := dto.FromPage(page, q)
	items := make([]PostDTO, 0, len(res.Items))
	for _, p := range res.Items {
		item := PostDTO{Post: p}
		if item.Excerpt, err = uc.renderer.Excerpt(p.Content, excerptRunes); err != nil {
			uc.logger.Warnw("failed to build post excerpt", "id", p.ID, "error", err)
		}
		item.Content = ""
		items = append(items, item)
	}

	return &dto.ListResult[PostDTO]{Items: items, Total: res.Total, Page: res.Page, PageSize: res.PageSize}, nil
}
