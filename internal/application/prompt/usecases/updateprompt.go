package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type UpdatePromptCommand struct {
	ID string `json:"-"`
	PromptCommand
}

type UpdatePromptUseCase struct {
	gateway PromptGateway
	audit   audit.Sink
	logger  logger.Interface
}

func NewUpdatePromptUseCase(gateway PromptGateway, sink audit.Sink, logger logger.Interface) *UpdatePromptUseCase {
	return &UpdatePromptUseCase{gateway: gateway, audit: sink, logger: logger}
}

func (uc *UpdatePromptUseCase) Execute(ctx context.Context, cmd UpdatePromptCommand) (prompt *platform.AIPrompt, err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "prompts.update", Resource: "prompt", ResourceID: cmd.ID, Payload: cmd.PromptCommand}, err)
	}()

	if err := utils.ValidateID(cmd.ID); err != nil {
		return nil, err
	}
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	prompt, err = uc.gateway.UpdatePrompt(ctx, cmd.ID, cmd.input())
	if err != nil {
		uc.logger.Errorw("failed to update prompt", "id", cmd.ID, "error", err)
		return nil, errors.FromPlatform(err, "failed to update prompt")
	}

	uc.logger.Infow("prompt updated", "id", cmd.ID)
	return prompt, nil
}
