package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/services/markdown"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type GetPostUseCase struct {
	gateway  DiscussGateway
	renderer markdown.Renderer
	logger   logger.Interface
}

func NewGetPostUseCase(gateway DiscussGateway, renderer markdown.Renderer, logger logger.Interface) *GetPostUseCase {
	return &GetPostUseCase{gateway: gateway, renderer: renderer, logger: logger}
}

// Execute returns the post with a sanitized HTML rendering of its markdown body.
func (uc *GetPostUseCase) Execute(ctx context.Context, id string) (*PostDTO, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}

	post, err := uc.gateway.GetPost(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get post", "id", id, "error", err)
		return nil, errors.FromPlatform(err, "failed to get post")
	}

	out := &PostDTO{Post: *post}
	if out.ContentHTML, err = uc.renderer.Render(post.Content); err != nil {
		uc.logger.Warnw("failed to render post", "id", id, "error", err)
	}
	return out, nil
}
