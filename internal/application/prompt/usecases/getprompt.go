package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type GetPromptUseCase struct {
	gateway PromptGateway
	logger  logger.Interface
}

func NewGetPromptUseCase(gateway PromptGateway, logger logger.Interface) *GetPromptUseCase {
	return &GetPromptUseCase{gateway: gateway, logger: logger}
}

func (uc *GetPromptUseCase) Execute(ctx context.Context, id string) (*platform.AIPrompt, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}

	prompt, err := uc.gateway.GetPrompt(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get prompt", "id", id, "error", err)
		return nil, errors.FromPlatform(err, "failed to get prompt")
	}
	return prompt, nil
}
