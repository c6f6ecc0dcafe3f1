package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type DeletePlanUseCase struct {
	gateway  PlanGateway
	features *FeatureMutator
	audit    audit.Sink
	logger   logger.Interface
}

func NewDeletePlanUseCase(gateway PlanGateway, features *FeatureMutator, sink audit.Sink, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{gateway: gateway, features: features, audit: sink, logger: logger}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, id string) (err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "plans.delete", Resource: "plan", ResourceID: id}, err)
	}()

	if err := utils.ValidateID(id); err != nil {
		return err
	}

	if err := uc.gateway.DeletePlan(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete plan", "id", id, "error", err)
		return errors.FromPlatform(err, "failed to delete plan")
	}

	if err := uc.features.Invalidate(ctx, featuresKey(id)); err != nil {
		uc.logger.Warnw("failed to drop feature mirror", "plan_id", id, "error", err)
	}

	uc.logger.Infow("plan deleted", "id", id)
	return nil
}
