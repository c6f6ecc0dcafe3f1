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

type ListReportsQuery struct {
	dto.ListQuery
	Status    string `json:"status" validate:"omitempty,oneof=open resolved dismissed"`
	ProblemID string `json:"problem_id"`
}

type ListReportsUseCase struct {
	gateway ReportGateway
	fetcher *listing.Fetcher
	logger  logger.Interface
}

func NewListReportsUseCase(gateway ReportGateway, fetcher *listing.Fetcher, logger logger.Interface) *ListReportsUseCase {
	return &ListReportsUseCase{gateway: gateway, fetcher: fetcher, logger: logger}
}

func (uc *ListReportsUseCase) Execute(ctx context.Context, query ListReportsQuery) (*dto.ListResult[platform.ProblemReport], error) {
	if err := utils.ValidateStruct(query); err != nil {
		return nil, err
	}

	q := query.ListQuery
	q.Filters = map[string]string{"status": query.Status, "problem_id": query.ProblemID}

	page, err := listing.Do(ctx, uc.fetcher, listing.Key("reports", q), func(ctx context.Context) (*platform.Page[platform.ProblemReport], error) {
		return uc.gateway.ListReports(ctx, q.Params())
	})
	if err != nil {
		uc.logger.Errorw("failed to list reports", "error", err)
		return nil, errors.FromPlatform(err, "failed to list reports")
	}

	return dto.FromPage(page, q), nil
}
