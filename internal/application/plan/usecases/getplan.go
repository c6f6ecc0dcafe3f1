package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/plan/dto"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type GetPlanUseCase struct {
	gateway PlanGateway
	logger  logger.Interface
}

func NewGetPlanUseCase(gateway PlanGateway, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{gateway: gateway, logger: logger}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, id string) (*dto.PlanDTO, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}

	plan, err := uc.gateway.GetPlan(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "id", id, "error", err)
		return nil, errors.FromPlatform(err, "failed to get plan")
	}

	result := dto.ToPlanDTO(*plan)
	return &result, nil
}
