package usecases

import (
	"context"
	"strings"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/application/common/listing"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

// ListLanguagesUseCase serves the ordered language list from the mirror,
// filling it from the platform on a miss.
type ListLanguagesUseCase struct {
	gateway LanguageGateway
	mutator *LanguageMutator
	fetcher *listing.Fetcher
	logger  logger.Interface
}

func NewListLanguagesUseCase(gateway LanguageGateway, mutator *LanguageMutator, fetcher *listing.Fetcher, logger logger.Interface) *ListLanguagesUseCase {
	return &ListLanguagesUseCase{
		gateway: gateway,
		mutator: mutator,
		fetcher: fetcher,
		logger:  logger,
	}
}

func (uc *ListLanguagesUseCase) Execute(ctx context.Context, query dto.ListQuery) (*dto.ListResult[platform.ProgrammingLanguage], error) {
	langs, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	if search := strings.ToLower(strings.TrimSpace(query.Search)); search != "" {
		filtered := make([]platform.ProgrammingLanguage, 0, len(langs))
		for _, l := range langs {
			if strings.Contains(strings.ToLower(l.Name), search) || strings.Contains(strings.ToLower(l.JudgeID), search) {
				filtered = append(filtered, l)
			}
		}
		langs = filtered
	}

	return dto.Slice(langs, query), nil
}

func (uc *ListLanguagesUseCase) load(ctx context.Context) ([]platform.ProgrammingLanguage, error) {
	langs, err := uc.mutator.Fill(ctx, MirrorKey, func(ctx context.Context) ([]platform.ProgrammingLanguage, error) {
		return listing.Do(ctx, uc.fetcher, MirrorKey, func(ctx context.Context) ([]platform.ProgrammingLanguage, error) {
			return fetchOrdered(ctx, uc.gateway)
		})
	})
	if err != nil {
		uc.logger.Errorw("failed to list languages", "error", err)
		return nil, err
	}
	return langs, nil
}
