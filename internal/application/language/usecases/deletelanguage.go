package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

const ErrMsgLanguageInUse = "language is used by existing submissions"

type DeleteLanguageUseCase struct {
	gateway LanguageGateway
	mutator *LanguageMutator
	audit   audit.Sink
	logger  logger.Interface
}

func NewDeleteLanguageUseCase(gateway LanguageGateway, mutator *LanguageMutator, sink audit.Sink, logger logger.Interface) *DeleteLanguageUseCase {
	return &DeleteLanguageUseCase{
		gateway: gateway,
		mutator: mutator,
		audit:   sink,
		logger:  logger,
	}
}

func (uc *DeleteLanguageUseCase) Execute(ctx context.Context, id string) (err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "languages.delete", Resource: "language", ResourceID: id}, err)
	}()

	if err := utils.ValidateID(id); err != nil {
		return err
	}

	if err := uc.gateway.DeleteLanguage(ctx, id); err != nil {
		if platform.IsConflict(err) {
			uc.logger.Warnw("language still referenced", "id", id)
			return errors.NewConflictError(ErrMsgLanguageInUse)
		}
		uc.logger.Errorw("failed to delete language", "id", id, "error", err)
		return errors.FromPlatform(err, "failed to delete language")
	}

	invalidate(ctx, uc.mutator, uc.logger)

	uc.logger.Infow("language deleted", "id", id)
	return nil
}
