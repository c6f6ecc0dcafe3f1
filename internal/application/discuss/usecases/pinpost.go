package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type PinPostCommand struct {
	ID     string `json:"-"`
	Pinned bool   `json:"pinned"`
}

type PinPostUseCase struct {
	gateway DiscussGateway
	audit   audit.Sink
	logger  logger.Interface
}

func NewPinPostUseCase(gateway DiscussGateway, sink audit.Sink, logger logger.Interface) *PinPostUseCase {
	return &PinPostUseCase{gateway: gateway, audit: sink, logger: logger}
}

func (uc *PinPostUseCase) Execute(ctx context.Context, cmd PinPostCommand) (post *platform.Post, err error) {
	name := "posts.unpin"
	if cmd.Pinned {
		name = "posts.pin"
	}
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: name, Resource: "post", ResourceID: cmd.ID}, err)
	}()

	if err := utils.ValidateID(cmd.ID); err != nil {
		return nil, err
	}

	post, err = uc.gateway.SetPostPinned(ctx, cmd.ID, cmd.Pinned)
	if err != nil {
		uc.logger.Errorw("failed to pin post", "id", cmd.ID, "pinned", cmd.Pinned, "error", err)
		return nil, errors.FromPlatform(err, "failed to pin post")
	}

	uc.logger.Infow("post pin changed", "id", cmd.ID, "pinned", post.Pinned)
	return post, nil
}
