package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/application/plan/dto"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type UpdatePlanCommand struct {
	ID string `json:"-"`
	PlanCommand
}

type UpdatePlanUseCase struct {
	gateway PlanGateway
	audit   audit.Sink
	logger  logger.Interface
}

func NewUpdatePlanUseCase(gateway PlanGateway, sink audit.Sink, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{gateway: gateway, audit: sink, logger: logger}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (result *dto.PlanDTO, err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "plans.update", Resource: "plan", ResourceID: cmd.ID, Payload: cmd.PlanCommand}, err)
	}()

	if err := utils.ValidateID(cmd.ID); err != nil {
		return nil, err
	}
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	plan, err := uc.gateway.UpdatePlan(ctx, cmd.ID, cmd.input())
	if err != nil {
		uc.logger.Errorw("failed to update plan", "id", cmd.ID, "error", err)
		return nil, errors.FromPlatform(err, "failed to update plan")
	}

	uc.logger.Infow("plan updated", "id", plan.ID)
	out := dto.ToPlanDTO(*plan)
	return &out, nil
}
