package usecases

import (
	"context"
	"sort"
	"strings"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/application/common/listing"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

type ListPromptsUseCase struct {
	gateway PromptGateway
	fetcher *listing.Fetcher
	logger  logger.Interface
}

func NewListPromptsUseCase(gateway PromptGateway, fetcher *listing.Fetcher, logger logger.Interface) *ListPromptsUseCase {
	return &ListPromptsUseCase{gateway: gateway, fetcher: fetcher, logger: logger}
}

func (uc *ListPromptsUseCase) Execute(ctx context.Context, query dto.ListQuery) (*dto.ListResult[platform.AIPrompt], error) {
	prompts, err := listing.Do(ctx, uc.fetcher, "prompts", func(ctx context.Context) ([]platform.AIPrompt, error) {
		return uc.gateway.ListPrompts(ctx)
	})
	if err != nil {
		uc.logger.Errorw("failed to list prompts", "error", err)
		return nil, errors.FromPlatform(err, "failed to list prompts")
	}

	search := strings.ToLower(strings.TrimSpace(query.Search))
	items := make([]platform.AIPrompt, 0, len(prompts))
	for _, p := range prompts {
		if search == "" || strings.Contains(p.FeatureKey, search) || strings.Contains(strings.ToLower(p.Model), search) {
			items = append(items, p)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].FeatureKey < items[j].FeatureKey
	})

	return dto.Slice(items, query), nil
}
