package usecases

import (
	"context"
	"strings"

	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type PromptGateway interface {
	ListPrompts(ctx context.Context) ([]platform.AIPrompt, error)
	GetPrompt(ctx context.Context, id string) (*platform.AIPrompt, error)
	CreatePrompt(ctx context.Context, in platform.PromptInput) (*platform.AIPrompt, error)
	UpdatePrompt(ctx context.Context, id string, in platform.PromptInput) (*platform.AIPrompt, error)
	DeletePrompt(ctx context.Context, id string) error
}

type PromptCommand struct {
	FeatureKey  string `json:"feature_key" validate:"required,featurekey,max=64"`
	Model       string `json:"model" validate:"notblank,max=128"`
	Template    string `json:"template" validate:"notblank"`
	Description string `json:"description" validate:"max=500"`
	Active      bool   `json:"active"`
}

func (c PromptCommand) validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return err
	}
	if _, err := ParseTemplate(c.Template); err != nil {
		return errors.NewValidationError("invalid template", err.Error())
	}
	return nil
}

func (c PromptCommand) input() platform.PromptInput {
	return platform.PromptInput{
		FeatureKey:  c.FeatureKey,
		Model:       strings.TrimSpace(c.Model),
		Template:    c.Template,
		Description: strings.TrimSpace(c.Description),
		Active:      c.Active,
	}
}
