package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/optimistic"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

type mockPlanGateway struct {
	ListPlansFunc       func(ctx context.Context) ([]platform.SubscriptionPlan, error)
	GetPlanFunc         func(ctx context.Context, id string) (*platform.SubscriptionPlan, error)
	CreatePlanFunc      func(ctx context.Context, in platform.PlanInput) (*platform.SubscriptionPlan, error)
	UpdatePlanFunc      func(ctx context.Context, id string, in platform.PlanInput) (*platform.SubscriptionPlan, error)
	DeletePlanFunc      func(ctx context.Context, id string) error
	SetPlanActiveFunc   func(ctx context.Context, id string, active bool) (*platform.SubscriptionPlan, error)
	CreateFeatureFunc   func(ctx context.Context, planID string, in platform.FeatureInput) (*platform.SubscriptionFeature, error)
	UpdateFeatureFunc   func(ctx context.Context, planID, featureID string, in platform.FeatureInput) (*platform.SubscriptionFeature, error)
	DeleteFeatureFunc   func(ctx context.Context, planID, featureID string) error
	ReorderFeaturesFunc func(ctx context.Context, planID string, ids []string) error
}

func (m *mockPlanGateway) ListPlans(ctx context.Context) ([]platform.SubscriptionPlan, error) {
	if m.ListPlansFunc != nil {
		return m.ListPlansFunc(ctx)
	}
	return nil, nil
}

func (m *mockPlanGateway) GetPlan(ctx context.Context, id string) (*platform.SubscriptionPlan, error) {
	if m.GetPlanFunc != nil {
		return m.GetPlanFunc(ctx, id)
	}
	return &platform.SubscriptionPlan{ID: id}, nil
}

func (m *mockPlanGateway) CreatePlan(ctx context.Context, in platform.PlanInput) (*platform.SubscriptionPlan, error) {
	if m.CreatePlanFunc != nil {
		return m.CreatePlanFunc(ctx, in)
	}
	return &platform.SubscriptionPlan{ID: "new", Names: in.Names, Price: in.Price, Currency: in.Currency, DurationDays: in.DurationDays}, nil
}

func (m *mockPlanGateway) UpdatePlan(ctx context.Context, id string, in platform.PlanInput) (*platform.SubscriptionPlan, error) {
	if m.UpdatePlanFunc != nil {
		return m.UpdatePlanFunc(ctx, id, in)
	}
	return &platform.SubscriptionPlan{ID: id, Names: in.Names, Price: in.Price, Currency: in.Currency}, nil
}

func (m *mockPlanGateway) DeletePlan(ctx context.Context, id string) error {
	if m.DeletePlanFunc != nil {
		return m.DeletePlanFunc(ctx, id)
	}
	return nil
}

func (m *mockPlanGateway) SetPlanActive(ctx context.Context, id string, active bool) (*platform.SubscriptionPlan, error) {
	if m.SetPlanActiveFunc != nil {
		return m.SetPlanActiveFunc(ctx, id, active)
	}
	return &platform.SubscriptionPlan{ID: id, Active: active}, nil
}

func (m *mockPlanGateway) CreateFeature(ctx context.Context, planID string, in platform.FeatureInput) (*platform.SubscriptionFeature, error) {
	if m.CreateFeatureFunc != nil {
		return m.CreateFeatureFunc(ctx, planID, in)
	}
	return &platform.SubscriptionFeature{ID: "f-new", PlanID: planID, Key: in.Key}, nil
}

func (m *mockPlanGateway) UpdateFeature(ctx context.Context, planID, featureID string, in platform.FeatureInput) (*platform.SubscriptionFeature, error) {
	if m.UpdateFeatureFunc != nil {
		return m.UpdateFeatureFunc(ctx, planID, featureID, in)
	}
	return &platform.SubscriptionFeature{ID: featureID, PlanID: planID, Key: in.Key}, nil
}

func (m *mockPlanGateway) DeleteFeature(ctx context.Context, planID, featureID string) error {
	if m.DeleteFeatureFunc != nil {
		return m.DeleteFeatureFunc(ctx, planID, featureID)
	}
	return nil
}

func (m *mockPlanGateway) ReorderFeatures(ctx context.Context, planID string, ids []string) error {
	if m.ReorderFeaturesFunc != nil {
		return m.ReorderFeaturesFunc(ctx, planID, ids)
	}
	return nil
}

func newFeatureMutator() *FeatureMutator {
	return optimistic.NewMutator(optimistic.NewMemoryStore[[]platform.SubscriptionFeature](), logger.NewNop())
}
