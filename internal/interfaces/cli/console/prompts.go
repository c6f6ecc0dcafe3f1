package console

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	promptUsecases "github.com/codearena/arena-admin/internal/application/prompt/usecases"
	"github.com/codearena/arena-admin/internal/interfaces/cli/output"
	"github.com/codearena/arena-admin/sdk/platform"
)

var promptHead = []string{"ID", "FEATURE", "MODEL", "ACTIVE", "DESCRIPTION", "UPDATED"}

func promptRow(p platform.AIPrompt) []string {
	return []string{p.ID, p.FeatureKey, p.Model, yesNo(p.Active), truncate(p.Description, 40), when(p.UpdatedAt)}
}

type promptFlags struct {
	featureKey   string
	model        string
	template     string
	templateFile string
	description  string
	active       bool
}

func (f *promptFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.featureKey, "feature", "", "Platform feature key, e.g. code_review")
	cmd.Flags().StringVar(&f.model, "model", "", "Model name")
	cmd.Flags().StringVar(&f.template, "template", "", "Template text with {{.variable}} placeholders")
	cmd.Flags().StringVarP(&f.templateFile, "template-file", "f", "", "Read the template from a file")
	cmd.Flags().StringVar(&f.description, "description", "", "Description")
	cmd.Flags().BoolVar(&f.active, "active", true, "Use this prompt for the feature")
	cmd.MarkFlagsMutuallyExclusive("template", "template-file")
}

func (f *promptFlags) command() (promptUsecases.PromptCommand, error) {
	tmpl, err := templateText(f.template, f.templateFile)
	if err != nil {
		return promptUsecases.PromptCommand{}, err
	}
	return promptUsecases.PromptCommand{
		FeatureKey:  f.featureKey,
		Model:       f.model,
		Template:    tmpl,
		Description: f.description,
		Active:      f.active,
	}, nil
}

func templateText(inline, path string) (string, error) {
	if path == "" {
		return inline, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func newPromptsCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prompts",
		Aliases: []string{"prompt"},
		Short:   "Manage AI prompt templates",
	}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List prompts",
		Args:  cobra.NoArgs,
		RunE: o.run(func(ctx context.Context, app *App, _ []string) error {
			res, err := promptUsecases.NewListPromptsUseCase(app.client, app.fetcher, app.log).Execute(ctx, lf.query())
			if err != nil {
				return err
			}
			return app.out.Print(listView(res, promptHead, promptRow))
		}),
	}
	lf.register(list)

	var create promptFlags
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a prompt",
		Args:  cobra.NoArgs,
		RunE: o.run(func(ctx context.Context, app *App, _ []string) error {
			c, err := create.command()
			if err != nil {
				return err
			}
			p, err := promptUsecases.NewCreatePromptUseCase(app.client, app.sink, app.log).Execute(ctx, c)
			if err != nil {
				return err
			}
			return app.out.Print(itemView(*p, promptHead, promptRow))
		}),
	}
	create.register(createCmd)

	var update promptFlags
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a prompt's fields",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, app *App, args []string) error {
			c, err := update.command()
			if err != nil {
				return err
			}
			uc := promptUsecases.NewUpdatePromptUseCase(app.client, app.sink, app.log)
			p, err := uc.Execute(ctx, promptUsecases.UpdatePromptCommand{ID: args[0], PromptCommand: c})
			if err != nil {
				return err
			}
			return app.out.Print(itemView(*p, promptHead, promptRow))
		}),
	}
	update.register(updateCmd)

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show a prompt with its template",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				p, err := promptUsecases.NewGetPromptUseCase(app.client, app.log).Execute(ctx, args[0])
				if err != nil {
					return err
				}
				if err := app.out.Print(itemView(*p, promptHead, promptRow)); err != nil {
					return err
				}
				app.out.Message("\n%s", p.Template)
				return nil
			}),
		},
		createCmd,
		updateCmd,
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a prompt",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				if err := promptUsecases.NewDeletePromptUseCase(app.client, app.sink, app.log).Execute(ctx, args[0]); err != nil {
					return err
				}
				app.out.Message("Prompt %s deleted", args[0])
				return nil
			}),
		},
		newPreviewCommand(o),
	)

	return cmd
}

// preview runs locally and needs no credentials.
func newPreviewCommand(o *Options) *cobra.Command {
	var (
		template, file string
		vars           map[string]string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a template against sample variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, out, log, err := o.setup()
			if err != nil {
				return err
			}
			tmpl, err := templateText(template, file)
			if err != nil {
				return err
			}
			res, err := promptUsecases.NewPreviewPromptUseCase(log).Execute(cmd.Context(), promptUsecases.PreviewPromptCommand{
				Template:  tmpl,
				Variables: vars,
			})
			if err != nil {
				return err
			}
			if len(res.Missing) > 0 {
				out.Message("Missing variables: %s", strings.Join(res.Missing, ", "))
			}
			return out.Print(output.View{Value: res, Head: []string{"RENDERED"}, Body: [][]string{{res.Rendered}}})
		},
	}

	cmd.Flags().StringVar(&template, "template", "", "Template text")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the template from a file")
	cmd.Flags().StringToStringVar(&vars, "var", nil, "Sample variable, name=value")
	cmd.MarkFlagsMutuallyExclusive("template", "file")

	return cmd
}
