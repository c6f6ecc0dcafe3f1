package usecases

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codearena/arena-admin/internal/application/audit/audittest"
	commondto "github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/application/common/listing"
	domainaudit "github.com/codearena/arena-admin/internal/domain/audit"
	apperrors "github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

func validPlan() PlanCommand {
	return PlanCommand{
		Names:        map[string]string{"en": "Pro", "vi": "Chuyên nghiệp"},
		Price:        "9.99",
		Currency:     "USD",
		DurationDays: 30,
	}
}

func TestPlanCommand_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *PlanCommand)
		ok     bool
	}{
		{"valid", func(*PlanCommand) {}, true},
		{"integer price", func(c *PlanCommand) { c.Price = "10" }, true},
		{"missing english name", func(c *PlanCommand) { c.Names = map[string]string{"vi": "Gói"} }, false},
		{"blank english name", func(c *PlanCommand) { c.Names["en"] = "  " }, false},
		{"bad language tag", func(c *PlanCommand) { c.Names["not a tag!"] = "x" }, false},
		{"negative price", func(c *PlanCommand) { c.Price = "-1" }, false},
		{"three decimals", func(c *PlanCommand) { c.Price = "1.999" }, false},
		{"non numeric price", func(c *PlanCommand) { c.Price = "abc" }, false},
		{"bad currency", func(c *PlanCommand) { c.Currency = "ZZZ" }, false},
		{"zero duration", func(c *PlanCommand) { c.DurationDays = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validPlan()
			tt.mutate(&cmd)
			err := cmd.validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestCreatePlan_FormatsPrice(t *testing.T) {
	sink := audittest.NewSink()
	uc := NewCreatePlanUseCase(&mockPlanGateway{}, sink, logger.NewNop())

	plan, err := uc.Execute(context.Background(), validPlan())
	require.NoError(t, err)
	assert.Equal(t, "Pro", plan.DisplayName)
	assert.Contains(t, plan.PriceDisplay, "9.99")
	assert.Equal(t, "new", sink.Last().Action.ResourceID)
}

func TestListPlans_FiltersActive(t *testing.T) {
	gw := &mockPlanGateway{ListPlansFunc: func(context.Context) ([]platform.SubscriptionPlan, error) {
		return []platform.SubscriptionPlan{
			{ID: "free", Names: map[string]string{"en": "Free"}, Price: "0", Currency: "USD", Active: true},
			{ID: "old", Names: map[string]string{"en": "Legacy"}, Price: "3", Currency: "USD"},
			{ID: "pro", Names: map[string]string{"en": "Pro"}, Price: "9.99", Currency: "USD", Active: true},
		}, nil
	}}
	uc := NewListPlansUseCase(gw, listing.NewFetcher(), logger.NewNop())

	active := true
	res, err := uc.Execute(context.Background(), ListPlansQuery{Active: &active})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, int64(2), res.Total)

	res, err = uc.Execute(context.Background(), ListPlansQuery{ListQuery: commondto.ListQuery{Search: "leg"}})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "old", res.Items[0].ID)
}

func TestReorderFeatures_RollsBackOnRejection(t *testing.T) {
	gw := &mockPlanGateway{
		GetPlanFunc: func(_ context.Context, id string) (*platform.SubscriptionPlan, error) {
			return &platform.SubscriptionPlan{ID: id, Features: []platform.SubscriptionFeature{
				{ID: "b", DisplayOrder: 2},
				{ID: "a", DisplayOrder: 1},
			}}, nil
		},
		ReorderFeaturesFunc: func(context.Context, string, []string) error {
			return &platform.APIError{StatusCode: http.StatusUnprocessableEntity, Message: "stale order"}
		},
	}
	mutator := newFeatureMutator()
	sink := audittest.NewSink()
	uc := NewReorderFeaturesUseCase(gw, mutator, sink, logger.NewNop())

	_, err := uc.Execute(context.Background(), ReorderFeaturesCommand{PlanID: "pro", IDs: []string{"b", "a"}})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, domainaudit.OutcomeRolledBack, sink.Last().Outcome)

	mirrored, ok, _ := mutator.Store().Load(context.Background(), featuresKey("pro"))
	require.True(t, ok)
	assert.Equal(t, "a", mirrored[0].ID)
}

func TestReorderFeatures_Success(t *testing.T) {
	gw := &mockPlanGateway{GetPlanFunc: func(_ context.Context, id string) (*platform.SubscriptionPlan, error) {
		return &platform.SubscriptionPlan{ID: id, Features: []platform.SubscriptionFeature{
			{ID: "a", DisplayOrder: 1},
			{ID: "b", DisplayOrder: 2},
		}}, nil
	}}
	uc := NewReorderFeaturesUseCase(gw, newFeatureMutator(), audittest.NewSink(), logger.NewNop())

	features, err := uc.Execute(context.Background(), ReorderFeaturesCommand{PlanID: "pro", IDs: []string{"b", "a"}})
	require.NoError(t, err)
	assert.Equal(t, "b", features[0].ID)
	assert.Equal(t, 1, features[0].DisplayOrder)
}

func TestCreateFeature_RejectsBadKey(t *testing.T) {
	uc := NewCreateFeatureUseCase(&mockPlanGateway{}, newFeatureMutator(), audittest.NewSink(), logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateFeatureCommand{PlanID: "pro", FeatureCommand: FeatureCommand{Key: "Has Spaces"}})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateFeatureCommand{PlanID: "pro", FeatureCommand: FeatureCommand{Key: ""}})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestCreateFeature_InvalidatesMirror(t *testing.T) {
	mutator := newFeatureMutator()
	require.NoError(t, mutator.Store().Save(context.Background(), featuresKey("pro"), []platform.SubscriptionFeature{{ID: "a"}}))
	uc := NewCreateFeatureUseCase(&mockPlanGateway{}, mutator, audittest.NewSink(), logger.NewNop())

	f, err := uc.Execute(context.Background(), CreateFeatureCommand{PlanID: "pro", FeatureCommand: FeatureCommand{Key: "ai.hints"}})
	require.NoError(t, err)
	assert.Equal(t, "ai.hints", f.Key)

	_, ok, _ := mutator.Store().Load(context.Background(), featuresKey("pro"))
	assert.False(t, ok)
}

func TestSetPlanActive_AuditName(t *testing.T) {
	sink := audittest.NewSink()
	uc := NewSetPlanActiveUseCase(&mockPlanGateway{}, sink, logger.NewNop())

	plan, err := uc.Execute(context.Background(), SetPlanActiveCommand{ID: "pro", Active: true})
	require.NoError(t, err)
	assert.True(t, plan.Active)
	assert.Equal(t, "plans.activate", sink.Last().Action.Name)
}
