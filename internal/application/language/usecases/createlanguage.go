package usecases

import (
	"context"
	"strings"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type LanguageCommand struct {
	Name    string `json:"name" validate:"notblank,max=64"`
	Version string `json:"version" validate:"max=64"`
	JudgeID string `json:"judge_id" validate:"notblank,max=64"`
	Enabled bool   `json:"enabled"`
}

func (c LanguageCommand) input() platform.LanguageInput {
	return platform.LanguageInput{
		Name:    strings.TrimSpace(c.Name),
		Version: strings.TrimSpace(c.Version),
		JudgeID: strings.TrimSpace(c.JudgeID),
		Enabled: c.Enabled,
	}
}

type CreateLanguageUseCase struct {
	gateway LanguageGateway
	mutator *LanguageMutator
	audit   audit.Sink
	logger  logger.Interface
}

func NewCreateLanguageUseCase(gateway LanguageGateway, mutator *LanguageMutator, sink audit.Sink, logger logger.Interface) *CreateLanguageUseCase {
	return &CreateLanguageUseCase{
		gateway: gateway,
		mutator: mutator,
		audit:   sink,
		logger:  logger,
	}
}

func (uc *CreateLanguageUseCase) Execute(ctx context.Context, cmd LanguageCommand) (lang *platform.ProgrammingLanguage, err error) {
	defer func() {
		action := audit.Action{Name: "languages.create", Resource: "language", Payload: cmd}
		if lang != nil {
			action.ResourceID = lang.ID
		}
		uc.audit.Record(ctx, action, err)
	}()

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	lang, err = uc.gateway.CreateLanguage(ctx, cmd.input())
	if err != nil {
		uc.logger.Errorw("failed to create language", "name", cmd.Name, "error", err)
		return nil, errors.FromPlatform(err, "failed to create language")
	}

	invalidate(ctx, uc.mutator, uc.logger)

	uc.logger.Infow("language created", "id", lang.ID, "name", lang.Name)
	return lang, nil
}

// invalidate drops the mirrored list so the next read refetches it.
func invalidate(ctx context.Context, mutator *LanguageMutator, log logger.Interface) {
	if err := mutator.Invalidate(ctx, MirrorKey); err != nil {
		log.Warnw("failed to invalidate language mirror", "error", err)
	}
}
