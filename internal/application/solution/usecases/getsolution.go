package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/services/markdown"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type SolutionDTO struct {
	platform.Solution
	ContentHTML string `json:"content_html"`
}

type GetSolutionUseCase struct {
	gateway  SolutionGateway
	renderer markdown.Renderer
	logger   logger.Interface
}

func NewGetSolutionUseCase(gateway SolutionGateway, renderer markdown.Renderer, logger logger.Interface) *GetSolutionUseCase {
	return &GetSolutionUseCase{gateway: gateway, renderer: renderer, logger: logger}
}

func (uc *GetSolutionUseCase) Execute(ctx context.Context, id string) (*SolutionDTO, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}

	solution, err := uc.gateway.GetSolution(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get solution", "id", id, "error", err)
		return nil, errors.FromPlatform(err, "failed to get solution")
	}

	out := &SolutionDTO{Solution: *solution}
	if out.ContentHTML, err = uc.renderer.Render(solution.Content); err != nil {
		// the raw content is still useful without a preview
		uc.logger.Warnw("failed to render solution", "id", id, "error", err)
	}
	return out, nil
}
