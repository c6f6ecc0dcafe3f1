package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/application/plan/dto"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

type CreatePlanUseCase struct {
	gateway PlanGateway
	audit   audit.Sink
	logger  logger.Interface
}

func NewCreatePlanUseCase(gateway PlanGateway, sink audit.Sink, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{gateway: gateway, audit: sink, logger: logger}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd PlanCommand) (result *dto.PlanDTO, err error) {
	defer func() {
		action := audit.Action{Name: "plans.create", Resource: "plan", Payload: cmd}
		if result != nil {
			action.ResourceID = result.ID
		}
		uc.audit.Record(ctx, action, err)
	}()

	if err := cmd.validate(); err != nil {
		return nil, err
	}

	plan, err := uc.gateway.CreatePlan(ctx, cmd.input())
	if err != nil {
		uc.logger.Errorw("failed to create plan", "error", err)
		return nil, errors.FromPlatform(err, "failed to create plan")
	}

	uc.logger.Infow("plan created", "id", plan.ID)
	out := dto.ToPlanDTO(*plan)
	return &out, nil
}
