package usecases

import (
	"context"
	"strings"

	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

type PreviewPromptCommand struct {
	Template  string            `json:"template"`
	Variables map[string]string `json:"variables"`
}

type PreviewResult struct {
	Rendered  string   `json:"rendered"`
	Variables []string `json:"variables"`
	Missing   []string `json:"missing"`
}

// PreviewPromptUseCase renders a template against sample variables. Missing
// variables render empty and are reported.
type PreviewPromptUseCase struct {
	logger logger.Interface
}

func NewPreviewPromptUseCase(logger logger.Interface) *PreviewPromptUseCase {
	return &PreviewPromptUseCase{logger: logger}
}

func (uc *PreviewPromptUseCase) Execute(_ context.Context, cmd PreviewPromptCommand) (*PreviewResult, error) {
	if strings.TrimSpace(cmd.Template) == "" {
		return nil, errors.NewValidationError("Validation failed", "template is required")
	}

	tmpl, err := ParseTemplate(cmd.Template)
	if err != nil {
		return nil, errors.NewValidationError("invalid template", err.Error())
	}

	vars := Variables(tmpl)
	missing := make([]string, 0)
	for _, name := range vars {
		if _, ok := cmd.Variables[name]; !ok {
			missing = append(missing, name)
		}
	}

	data := make(map[string]string, len(cmd.Variables))
	for k, v := range cmd.Variables {
		data[k] = v
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		uc.logger.Warnw("prompt preview failed", "error", err)
		return nil, errors.NewValidationError("template cannot be rendered", err.Error())
	}

	return &PreviewResult{Rendered: out.String(), Variables: vars, Missing: missing}, nil
}
