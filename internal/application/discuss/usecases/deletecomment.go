package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type DeleteCommentUseCase struct {
	gateway DiscussGateway
	audit   audit.Sink
	logger  logger.Interface
}

func NewDeleteCommentUseCase(gateway DiscussGateway, sink audit.Sink, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{gateway: gateway, audit: sink, logger: logger}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, id string) (err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "comments.delete", Resource: "comment", ResourceID: id}, err)
	}()

	if err := utils.ValidateID(id); err != nil {
		return err
	}

	if err := uc.gateway.DeleteComment(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete comment", "id", id, "error", err)
		return errors.FromPlatform(err, "failed to delete comment")
	}

	uc.logger.Infow("comment deleted", "id", id)
	return nil
}
