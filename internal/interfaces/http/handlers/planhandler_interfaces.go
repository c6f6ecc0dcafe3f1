package handlers

import (
	"context"

	commondto "github.com/codearena/arena-admin/internal/application/common/dto"
	plandto "github.com/codearena/arena-admin/internal/application/plan/dto"
	planUsecases "github.com/codearena/arena-admin/internal/application/plan/usecases"
	"github.com/codearena/arena-admin/sdk/platform"
)

// Use case interfaces for PlanHandler

type listPlansUseCase interface {
	Execute(ctx context.Context, query planUsecases.ListPlansQuery) (*commondto.ListResult[plandto.PlanDTO], error)
}

type getPlanUseCase interface {
	Execute(ctx context.Context, id string) (*plandto.PlanDTO, error)
}

type createPlanUseCase interface {
	Execute(ctx context.Context, cmd planUsecases.PlanCommand) (*plandto.PlanDTO, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, cmd planUsecases.UpdatePlanCommand) (*plandto.PlanDTO, error)
}

type deletePlanUseCase interface {
	Execute(ctx context.Context, id string) error
}

type setPlanActiveUseCase interface {
	Execute(ctx context.Context, cmd planUsecases.SetPlanActiveCommand) (*plandto.PlanDTO, error)
}

type createFeatureUseCase interface {
	Execute(ctx context.Context, cmd planUsecases.CreateFeatureCommand) (*platform.SubscriptionFeature, error)
}

type updateFeatureUseCase interface {
	Execute(ctx context.Context, cmd planUsecases.UpdateFeatureCommand) (*platform.SubscriptionFeature, error)
}

type deleteFeatureUseCase interface {
	Execute(ctx context.Context, cmd planUsecases.DeleteFeatureCommand) error
}

type reorderFeaturesUseCase interface {
	Execute(ctx context.Context, cmd planUsecases.ReorderFeaturesCommand) ([]platform.SubscriptionFeature, error)
}
