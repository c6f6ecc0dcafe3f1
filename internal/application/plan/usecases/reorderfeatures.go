package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/application/optimistic"
	"github.com/codearena/arena-admin/internal/application/plan/dto"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type ReorderFeaturesCommand struct {
	PlanID string   `json:"-"`
	IDs    []string `json:"ids" validate:"required,min=1,unique"`
}

type ReorderFeaturesUseCase struct {
	gateway  PlanGateway
	features *FeatureMutator
	audit    audit.Sink
	logger   logger.Interface
}

func NewReorderFeaturesUseCase(gateway PlanGateway, features *FeatureMutator, sink audit.Sink, logger logger.Interface) *ReorderFeaturesUseCase {
	return &ReorderFeaturesUseCase{gateway: gateway, features: features, audit: sink, logger: logger}
}

func (uc *ReorderFeaturesUseCase) Execute(ctx context.Context, cmd ReorderFeaturesCommand) (features []platform.SubscriptionFeature, err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "plans.features.reorder", Resource: "plan", ResourceID: cmd.PlanID, Payload: cmd}, err)
	}()

	if err := utils.ValidateID(cmd.PlanID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	features, err = uc.features.Apply(ctx, featuresKey(cmd.PlanID),
		func(ctx context.Context) ([]platform.SubscriptionFeature, error) {
			plan, err := uc.gateway.GetPlan(ctx, cmd.PlanID)
			if err != nil {
				return nil, errors.FromPlatform(err, "failed to get plan")
			}
			return dto.SortFeatures(plan.Features), nil
		},
		func(current []platform.SubscriptionFeature) ([]platform.SubscriptionFeature, error) {
			next, err := optimistic.ReorderBy(current, cmd.IDs, featureID)
			if err != nil {
				return nil, err
			}
			for i := range next {
				next[i].DisplayOrder = i + 1
			}
			return next, nil
		},
		func(ctx context.Context, _ []platform.SubscriptionFeature) error {
			return uc.gateway.ReorderFeatures(ctx, cmd.PlanID, cmd.IDs)
		},
	)
	if err != nil {
		uc.logger.Errorw("failed to reorder features", "plan_id", cmd.PlanID, "error", err)
		return nil, errors.FromPlatform(err, "failed to reorder features")
	}

	uc.logger.Infow("features reordered", "plan_id", cmd.PlanID, "count", len(features))
	return features, nil
}
