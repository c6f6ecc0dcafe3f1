package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type UpdateLanguageCommand struct {
	ID string `json:"-"`
	LanguageCommand
}

type UpdateLanguageUseCase struct {
	gateway LanguageGateway
	mutator *LanguageMutator
	audit   audit.Sink
	logger  logger.Interface
}

func NewUpdateLanguageUseCase(gateway LanguageGateway, mutator *LanguageMutator, sink audit.Sink, logger logger.Interface) *UpdateLanguageUseCase {
	return &UpdateLanguageUseCase{
		gateway: gateway,
		mutator: mutator,
		audit:   sink,
		logger:  logger,
	}
}

func (uc *UpdateLanguageUseCase) Execute(ctx context.Context, cmd UpdateLanguageCommand) (lang *platform.ProgrammingLanguage, err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "languages.update", Resource: "language", ResourceID: cmd.ID, Payload: cmd.LanguageCommand}, err)
	}()

	if err := utils.ValidateID(cmd.ID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(cmd.LanguageCommand); err != nil {
		return nil, err
	}

	lang, err = uc.gateway.UpdateLanguage(ctx, cmd.ID, cmd.input())
	if err != nil {
		uc.logger.Errorw("failed to update language", "id", cmd.ID, "error", err)
		return nil, errors.FromPlatform(err, "failed to update language")
	}

	invalidate(ctx, uc.mutator, uc.logger)

	uc.logger.Infow("language updated", "id", lang.ID)
	return lang, nil
}
