package usecases

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/codearena/arena-admin/internal/application/optimistic"
	"github.com/codearena/arena-admin/internal/application/plan/dto"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type PlanGateway interface {
	ListPlans(ctx context.Context) ([]platform.SubscriptionPlan, error)
	GetPlan(ctx context.Context, id string) (*platform.SubscriptionPlan, error)
	CreatePlan(ctx context.Context, in platform.PlanInput) (*platform.SubscriptionPlan, error)
	UpdatePlan(ctx context.Context, id string, in platform.PlanInput) (*platform.SubscriptionPlan, error)
	DeletePlan(ctx context.Context, id string) error
	SetPlanActive(ctx context.Context, id string, active bool) (*platform.SubscriptionPlan, error)
	CreateFeature(ctx context.Context, planID string, in platform.FeatureInput) (*platform.SubscriptionFeature, error)
	UpdateFeature(ctx context.Context, planID, featureID string, in platform.FeatureInput) (*platform.SubscriptionFeature, error)
	DeleteFeature(ctx context.Context, planID, featureID string) error
	ReorderFeatures(ctx context.Context, planID string, ids []string) error
}

// FeatureMutator mirrors the ordered feature list of each plan.
type FeatureMutator = optimistic.Mutator[[]platform.SubscriptionFeature]

func featuresKey(planID string) string {
	return "plan:" + planID + ":features"
}

type PlanCommand struct {
	Names        map[string]string `json:"names" validate:"required"`
	Descriptions map[string]string `json:"descriptions"`
	Price        string            `json:"price" validate:"required,price"`
	Currency     string            `json:"currency" validate:"required,iso4217"`
	DurationDays int               `json:"duration_days" validate:"gt=0"`
}

func (c PlanCommand) validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return err
	}
	if strings.TrimSpace(c.Names[dto.DefaultNameLanguage]) == "" {
		return errors.NewValidationError("Validation failed", "names.en is required")
	}
	for tag := range c.Names {
		if _, err := language.Parse(tag); err != nil {
			return errors.NewValidationError("Validation failed", fmt.Sprintf("names: %q is not a language tag", tag))
		}
	}
	return nil
}

func (c PlanCommand) input() platform.PlanInput {
	return platform.PlanInput{
		Names:        c.Names,
		Descriptions: c.Descriptions,
		Price:        strings.TrimSpace(c.Price),
		Currency:     strings.ToUpper(c.Currency),
		DurationDays: c.DurationDays,
	}
}

type FeatureCommand struct {
	Key   string            `json:"key" validate:"required,featurekey,max=64"`
	Names map[string]string `json:"names"`
	Value string            `json:"value" validate:"max=255"`
}

func (c FeatureCommand) input() platform.FeatureInput {
	return platform.FeatureInput{Key: c.Key, Names: c.Names, Value: c.Value}
}

func featureID(f platform.SubscriptionFeature) string {
	return f.ID
}
