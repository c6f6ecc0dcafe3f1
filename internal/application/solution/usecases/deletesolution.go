package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type DeleteSolutionUseCase struct {
	gateway SolutionGateway
	audit   audit.Sink
	logger  logger.Interface
}

func NewDeleteSolutionUseCase(gateway SolutionGateway, sink audit.Sink, logger logger.Interface) *DeleteSolutionUseCase {
	return &DeleteSolutionUseCase{gateway: gateway, audit: sink, logger: logger}
}

func (uc *DeleteSolutionUseCase) Execute(ctx context.Context, id string) (err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "solutions.delete", Resource: "solution", ResourceID: id}, err)
	}()

	if err := utils.ValidateID(id); err != nil {
		return err
	}

	if err := uc.gateway.DeleteSolution(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete solution", "id", id, "error", err)
		return errors.FromPlatform(err, "failed to delete solution")
	}

	uc.logger.Infow("solution deleted", "id", id)
	return nil
}
