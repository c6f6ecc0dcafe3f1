package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/optimistic"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

type mockLanguageGateway struct {
	ListFunc    func(ctx context.Context) ([]platform.ProgrammingLanguage, error)
	CreateFunc  func(ctx context.Context, in platform.LanguageInput) (*platform.ProgrammingLanguage, error)
	UpdateFunc  func(ctx context.Context, id string, in platform.LanguageInput) (*platform.ProgrammingLanguage, error)
	DeleteFunc  func(ctx context.Context, id string) error
	ReorderFunc func(ctx context.Context, ids []string) error

	listCalls int
}

func (m *mockLanguageGateway) ListLanguages(ctx context.Context) ([]platform.ProgrammingLanguage, error) {
	m.listCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockLanguageGateway) CreateLanguage(ctx context.Context, in platform.LanguageInput) (*platform.ProgrammingLanguage, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &platform.ProgrammingLanguage{ID: "new", Name: in.Name, JudgeID: in.JudgeID}, nil
}

func (m *mockLanguageGateway) UpdateLanguage(ctx context.Context, id string, in platform.LanguageInput) (*platform.ProgrammingLanguage, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, in)
	}
	return &platform.ProgrammingLanguage{ID: id, Name: in.Name, JudgeID: in.JudgeID}, nil
}

func (m *mockLanguageGateway) DeleteLanguage(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockLanguageGateway) ReorderLanguages(ctx context.Context, ids []string) error {
	if m.ReorderFunc != nil {
		return m.ReorderFunc(ctx, ids)
	}
	return nil
}

func sampleLanguages() []platform.ProgrammingLanguage {
	return []platform.ProgrammingLanguage{
		{ID: "py", Name: "Python", JudgeID: "71", DisplayOrder: 2},
		{ID: "go", Name: "Go", JudgeID: "60", DisplayOrder: 1},
		{ID: "cpp", Name: "C++", JudgeID: "54", DisplayOrder: 3},
	}
}

func newMutator() *LanguageMutator {
	return optimistic.NewMutator(optimistic.NewMemoryStore[[]platform.ProgrammingLanguage](), logger.NewNop())
}
