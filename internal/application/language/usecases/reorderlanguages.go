package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/application/optimistic"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type ReorderLanguagesCommand struct {
	IDs []string `json:"ids" validate:"required,min=1,unique"`
}

// ReorderLanguagesUseCase shows the new order immediately and puts the old one
// back when the platform rejects it.
type ReorderLanguagesUseCase struct {
	gateway LanguageGateway
	mutator *LanguageMutator
	audit   audit.Sink
	logger  logger.Interface
}

func NewReorderLanguagesUseCase(gateway LanguageGateway, mutator *LanguageMutator, sink audit.Sink, logger logger.Interface) *ReorderLanguagesUseCase {
	return &ReorderLanguagesUseCase{
		gateway: gateway,
		mutator: mutator,
		audit:   sink,
		logger:  logger,
	}
}

func (uc *ReorderLanguagesUseCase) Execute(ctx context.Context, cmd ReorderLanguagesCommand) (langs []platform.ProgrammingLanguage, err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "languages.reorder", Resource: "language", Payload: cmd}, err)
	}()

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	langs, err = uc.mutator.Apply(ctx, MirrorKey,
		func(ctx context.Context) ([]platform.ProgrammingLanguage, error) {
			return fetchOrdered(ctx, uc.gateway)
		},
		func(current []platform.ProgrammingLanguage) ([]platform.ProgrammingLanguage, error) {
			next, err := optimistic.ReorderBy(current, cmd.IDs, languageID)
			if err != nil {
				return nil, err
			}
			for i := range next {
				next[i].DisplayOrder = i + 1
			}
			return next, nil
		},
		func(ctx context.Context, _ []platform.ProgrammingLanguage) error {
			return uc.gateway.ReorderLanguages(ctx, cmd.IDs)
		},
	)
	if err != nil {
		uc.logger.Errorw("failed to reorder languages", "error", err)
		return nil, errors.FromPlatform(err, "failed to reorder languages")
	}

	uc.logger.Infow("languages reordered", "count", len(langs))
	return langs, nil
}
