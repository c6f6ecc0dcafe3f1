package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type UpdateFeatureCommand struct {
	PlanID    string `json:"-"`
	FeatureID string `json:"-"`
	FeatureCommand
}

type UpdateFeatureUseCase struct {
	gateway  PlanGateway
	features *FeatureMutator
	audit    audit.Sink
	logger   logger.Interface
}

func NewUpdateFeatureUseCase(gateway PlanGateway, features *FeatureMutator, sink audit.Sink, logger logger.Interface) *UpdateFeatureUseCase {
	return &UpdateFeatureUseCase{gateway: gateway, features: features, audit: sink, logger: logger}
}

func (uc *UpdateFeatureUseCase) Execute(ctx context.Context, cmd UpdateFeatureCommand) (feature *platform.SubscriptionFeature, err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "plans.features.update", Resource: "plan", ResourceID: cmd.PlanID, Payload: map[string]any{
			"feature_id": cmd.FeatureID,
			"feature":    cmd.FeatureCommand,
		}}, err)
	}()

	if err := utils.ValidateID(cmd.PlanID); err != nil {
		return nil, err
	}
	if err := utils.ValidateID(cmd.FeatureID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(cmd.FeatureCommand); err != nil {
		return nil, err
	}

	feature, err = uc.gateway.UpdateFeature(ctx, cmd.PlanID, cmd.FeatureID, cmd.input())
	if err != nil {
		uc.logger.Errorw("failed to update feature", "plan_id", cmd.PlanID, "id", cmd.FeatureID, "error", err)
		return nil, errors.FromPlatform(err, "failed to update feature")
	}

	dropFeatures(ctx, uc.features, cmd.PlanID, uc.logger)

	uc.logger.Infow("feature updated", "plan_id", cmd.PlanID, "id", cmd.FeatureID)
	return feature, nil
}
