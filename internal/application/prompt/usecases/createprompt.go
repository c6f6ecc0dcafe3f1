package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

type CreatePromptUseCase struct {
	gateway PromptGateway
	audit   audit.Sink
	logger  logger.Interface
}

func NewCreatePromptUseCase(gateway PromptGateway, sink audit.Sink, logger logger.Interface) *CreatePromptUseCase {
	return &CreatePromptUseCase{gateway: gateway, audit: sink, logger: logger}
}

func (uc *CreatePromptUseCase) Execute(ctx context.Context, cmd PromptCommand) (prompt *platform.AIPrompt, err error) {
	defer func() {
		action := audit.Action{Name: "prompts.create", Resource: "prompt", Payload: cmd}
		if prompt != nil {
			action.ResourceID = prompt.ID
		}
		uc.audit.Record(ctx, action, err)
	}()

	if err := cmd.validate(); err != nil {
		return nil, err
	}

	prompt, err = uc.gateway.CreatePrompt(ctx, cmd.input())
	if err != nil {
		uc.logger.Errorw("failed to create prompt", "feature_key", cmd.FeatureKey, "error", err)
		return nil, errors.FromPlatform(err, "failed to create prompt")
	}

	uc.logger.Infow("prompt created", "id", prompt.ID, "feature_key", prompt.FeatureKey)
	return prompt, nil
}
