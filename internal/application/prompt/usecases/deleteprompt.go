package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type DeletePromptUseCase struct {
	gateway PromptGateway
	audit   audit.Sink
	logger  logger.Interface
}

func NewDeletePromptUseCase(gateway PromptGateway, sink audit.Sink, logger logger.Interface) *DeletePromptUseCase {
	return &DeletePromptUseCase{gateway: gateway, audit: sink, logger: logger}
}

func (uc *DeletePromptUseCase) Execute(ctx context.Context, id string) (err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "prompts.delete", Resource: "prompt", ResourceID: id}, err)
	}()

	if err := utils.ValidateID(id); err != nil {
		return err
	}

	if err := uc.gateway.DeletePrompt(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete prompt", "id", id, "error", err)
		return errors.FromPlatform(err, "failed to delete prompt")
	}

	uc.logger.Infow("prompt deleted", "id", id)
	return nil
}
