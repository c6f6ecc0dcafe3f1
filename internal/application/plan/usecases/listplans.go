package usecases

import (
	"context"
	"strings"

	commondto "github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/application/common/listing"
	"github.com/codearena/arena-admin/internal/application/plan/dto"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

type ListPlansQuery struct {
	commondto.ListQuery
	Active *bool
}

type ListPlansUseCase struct {
	gateway PlanGateway
	fetcher *listing.Fetcher
	logger  logger.Interface
}

func NewListPlansUseCase(gateway PlanGateway, fetcher *listing.Fetcher, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{gateway: gateway, fetcher: fetcher, logger: logger}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, query ListPlansQuery) (*commondto.ListResult[dto.PlanDTO], error) {
	plans, err := listing.Do(ctx, uc.fetcher, "plans", func(ctx context.Context) ([]platform.SubscriptionPlan, error) {
		return uc.gateway.ListPlans(ctx)
	})
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, errors.FromPlatform(err, "failed to list plans")
	}

	search := strings.ToLower(strings.TrimSpace(query.Search))
	items := make([]dto.PlanDTO, 0, len(plans))
	for _, p := range plans {
		if query.Active != nil && p.Active != *query.Active {
			continue
		}
		item := dto.ToPlanDTO(p)
		if search != "" && !strings.Contains(strings.ToLower(item.DisplayName), search) {
			continue
		}
		items = append(items, item)
	}

	return commondto.Slice(items, query.ListQuery), nil
}
