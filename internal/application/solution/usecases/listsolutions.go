package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/application/common/listing"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

type ListSolutionsQuery struct {
	dto.ListQuery
	ProblemID  string
	LanguageID string
	AuthorID   string
}

type ListSolutionsUseCase struct {
	gateway SolutionGateway
	fetcher *listing.Fetcher
	logger  logger.Interface
}

func NewListSolutionsUseCase(gateway SolutionGateway, fetcher *listing.Fetcher, logger logger.Interface) *ListSolutionsUseCase {
	return &ListSolutionsUseCase{gateway: gateway, fetcher: fetcher, logger: logger}
}

func (uc *ListSolutionsUseCase) Execute(ctx context.Context, query ListSolutionsQuery) (*dto.ListResult[platform.Solution], error) {
	q := query.ListQuery
	q.Filters = map[string]string{
		"problem_id":  query.ProblemID,
		"language_id": query.LanguageID,
		"author_id":   query.AuthorID,
	}

	page, err := listing.Do(ctx, uc.fetcher, listing.Key("solutions", q), func(ctx context.Context) (*platform.Page[platform.Solution], error) {
		return uc.gateway.ListSolutions(ctx, q.Params())
	})
	if err != nil {
		uc.logger.Errorw("failed to list solutions", "error", err)
		return nil, errors.FromPlatform(err, "failed to list solutions")
	}

	return dto.FromPage(page, q), nil
}
