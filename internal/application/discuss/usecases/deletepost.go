package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type DeletePostUseCase struct {
	gateway DiscussGateway
	audit   audit.Sink
	logger  logger.Interface
}

func NewDeletePostUseCase(gateway DiscussGateway, sink audit.Sink, logger logger.Interface) *DeletePostUseCase {
	return &DeletePostUseCase{gateway: gateway, audit: sink, logger: logger}
}

func (uc *DeletePostUseCase) Execute(ctx context.Context, id string) (err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "posts.delete", Resource: "post", ResourceID: id}, err)
	}()

	if err := utils.ValidateID(id); err != nil {
		return err
	}

	if err := uc.gateway.DeletePost(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete post", "id", id, "error", err)
		return errors.FromPlatform(err, "failed to delete post")
	}

	uc.logger.Infow("post deleted", "id", id)
	return nil
}
