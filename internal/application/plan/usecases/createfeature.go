package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type CreateFeatureCommand struct {
	PlanID string `json:"-"`
	FeatureCommand
}

type CreateFeatureUseCase struct {
	gateway  PlanGateway
	features *FeatureMutator
	audit    audit.Sink
	logger   logger.Interface
}

func NewCreateFeatureUseCase(gateway PlanGateway, features *FeatureMutator, sink audit.Sink, logger logger.Interface) *CreateFeatureUseCase {
	return &CreateFeatureUseCase{gateway: gateway, features: features, audit: sink, logger: logger}
}

func (uc *CreateFeatureUseCase) Execute(ctx context.Context, cmd CreateFeatureCommand) (feature *platform.SubscriptionFeature, err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "plans.features.create", Resource: "plan", ResourceID: cmd.PlanID, Payload: cmd.FeatureCommand}, err)
	}()

	if err := utils.ValidateID(cmd.PlanID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(cmd.FeatureCommand); err != nil {
		return nil, err
	}

	feature, err = uc.gateway.CreateFeature(ctx, cmd.PlanID, cmd.input())
	if err != nil {
		uc.logger.Errorw("failed to create feature", "plan_id", cmd.PlanID, "key", cmd.Key, "error", err)
		return nil, errors.FromPlatform(err, "failed to create feature")
	}

	dropFeatures(ctx, uc.features, cmd.PlanID, uc.logger)

	uc.logger.Infow("feature created", "plan_id", cmd.PlanID, "id", feature.ID)
	return feature, nil
}

func dropFeatures(ctx context.Context, features *FeatureMutator, planID string, log logger.Interface) {
	if err := features.Invalidate(ctx, featuresKey(planID)); err != nil {
		log.Warnw("failed to invalidate feature mirror", "plan_id", planID, "error", err)
	}
}
