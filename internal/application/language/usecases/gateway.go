package usecases

import (
	"context"
	"sort"

	"github.com/codearena/arena-admin/internal/application/optimistic"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/sdk/platform"
)

// MirrorKey is the mirror key of the ordered language list.
const MirrorKey = "languages"

type LanguageGateway interface {
	ListLanguages(ctx context.Context) ([]platform.ProgrammingLanguage, error)
	CreateLanguage(ctx context.Context, in platform.LanguageInput) (*platform.ProgrammingLanguage, error)
	UpdateLanguage(ctx context.Context, id string, in platform.LanguageInput) (*platform.ProgrammingLanguage, error)
	DeleteLanguage(ctx context.Context, id string) error
	ReorderLanguages(ctx context.Context, ids []string) error
}

// LanguageMutator mirrors the ordered language list.
type LanguageMutator = optimistic.Mutator[[]platform.ProgrammingLanguage]

func fetchOrdered(ctx context.Context, gateway LanguageGateway) ([]platform.ProgrammingLanguage, error) {
	langs, err := gateway.ListLanguages(ctx)
	if err != nil {
		return nil, errors.FromPlatform(err, "failed to list languages")
	}
	sort.SliceStable(langs, func(i, j int) bool {
		return langs[i].DisplayOrder < langs[j].DisplayOrder
	})
	return langs, nil
}

func languageID(l platform.ProgrammingLanguage) string {
	return l.ID
}
