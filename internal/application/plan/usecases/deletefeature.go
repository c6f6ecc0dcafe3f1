package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type DeleteFeatureCommand struct {
	PlanID    string
	FeatureID string
}

type DeleteFeatureUseCase struct {
	gateway  PlanGateway
	features *FeatureMutator
	audit    audit.Sink
	logger   logger.Interface
}

func NewDeleteFeatureUseCase(gateway PlanGateway, features *FeatureMutator, sink audit.Sink, logger logger.Interface) *DeleteFeatureUseCase {
	return &DeleteFeatureUseCase{gateway: gateway, features: features, audit: sink, logger: logger}
}

func (uc *DeleteFeatureUseCase) Execute(ctx context.Context, cmd DeleteFeatureCommand) (err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "plans.features.delete", Resource: "plan", ResourceID: cmd.PlanID, Payload: map[string]string{
			"feature_id": cmd.FeatureID,
		}}, err)
	}()

	if err := utils.ValidateID(cmd.PlanID); err != nil {
		return err
	}
	if err := utils.ValidateID(cmd.FeatureID); err != nil {
		return err
	}

	if err := uc.gateway.DeleteFeature(ctx, cmd.PlanID, cmd.FeatureID); err != nil {
		uc.logger.Errorw("failed to delete feature", "plan_id", cmd.PlanID, "id", cmd.FeatureID, "error", err)
		return errors.FromPlatform(err, "failed to delete feature")
	}

	dropFeatures(ctx, uc.features, cmd.PlanID, uc.logger)

	uc.logger.Infow("feature deleted", "plan_id", cmd.PlanID, "id", cmd.FeatureID)
	return nil
}
