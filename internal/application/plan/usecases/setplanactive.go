package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/application/plan/dto"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type SetPlanActiveCommand struct {
	ID     string `json:"-"`
	Active bool   `json:"active"`
}

type SetPlanActiveUseCase struct {
	gateway PlanGateway
	audit   audit.Sink
	logger  logger.Interface
}

func NewSetPlanActiveUseCase(gateway PlanGateway, sink audit.Sink, logger logger.Interface) *SetPlanActiveUseCase {
	return &SetPlanActiveUseCase{gateway: gateway, audit: sink, logger: logger}
}

func (uc *SetPlanActiveUseCase) Execute(ctx context.Context, cmd SetPlanActiveCommand) (result *dto.PlanDTO, err error) {
	name := "plans.deactivate"
	if cmd.Active {
		name = "plans.activate"
	}
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: name, Resource: "plan", ResourceID: cmd.ID}, err)
	}()

	if err := utils.ValidateID(cmd.ID); err != nil {
		return nil, err
	}

	plan, err := uc.gateway.SetPlanActive(ctx, cmd.ID, cmd.Active)
	if err != nil {
		uc.logger.Errorw("failed to change plan status", "id", cmd.ID, "active", cmd.Active, "error", err)
		return nil, errors.FromPlatform(err, "failed to change plan status")
	}

	uc.logger.Infow("plan status changed", "id", cmd.ID, "active", plan.Active)
	out := dto.ToPlanDTO(*plan)
	return &out, nil
}
