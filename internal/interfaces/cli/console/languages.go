package console

import (
	"context"

	"github.com/spf13/cobra"

	languageUsecases "github.com/codearena/arena-admin/internal/application/language/usecases"
	"github.com/codearena/arena-admin/internal/application/optimistic"
	"github.com/codearena/arena-admin/sdk/platform"
)

var languageHead = []string{"ORDER", "ID", "NAME", "VERSION", "JUDGE ID", "ENABLED"}

func languageRow(l platform.ProgrammingLanguage) []string {
	return []string{itoa(l.DisplayOrder), l.ID, l.Name, l.Version, l.JudgeID, yesNo(l.Enabled)}
}

func (a *App) languageMutator() *languageUsecases.LanguageMutator {
	return optimistic.NewMutator[[]platform.ProgrammingLanguage](optimistic.NewMemoryStore[[]platform.ProgrammingLanguage](), a.log)
}

type languageFlags struct {
	name    string
	version string
	judgeID string
	enabled bool
}

func (f *languageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Display name")
	cmd.Flags().StringVar(&f.version, "version", "", "Compiler or runtime version")
	cmd.Flags().StringVar(&f.judgeID, "judge-id", "", "Judge language identifier")
	cmd.Flags().BoolVar(&f.enabled, "enabled", true, "Offer the language to users")
}

func (f *languageFlags) command() languageUsecases.LanguageCommand {
	return languageUsecases.LanguageCommand{Name: f.name, Version: f.version, JudgeID: f.judgeID, Enabled: f.enabled}
}

func newLanguagesCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "languages",
		Aliases: []string{"language", "langs"},
		Short:   "Manage programming languages",
	}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List languages in display order",
		Args:  cobra.NoArgs,
		RunE: o.run(func(ctx context.Context, app *App, _ []string) error {
			uc := languageUsecases.NewListLanguagesUseCase(app.client, app.languageMutator(), app.fetcher, app.log)
			res, err := uc.Execute(ctx, lf.query())
			if err != nil {
				return err
			}
			return app.out.Print(listView(res, languageHead, languageRow))
		}),
	}
	lf.register(list)

	var create languageFlags
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Add a language",
		Args:  cobra.NoArgs,
		RunE: o.run(func(ctx context.Context, app *App, _ []string) error {
			uc := languageUsecases.NewCreateLanguageUseCase(app.client, app.languageMutator(), app.sink, app.log)
			lang, err := uc.Execute(ctx, create.command())
			if err != nil {
				return err
			}
			return app.out.Print(itemView(*lang, languageHead, languageRow))
		}),
	}
	create.register(createCmd)

	var update languageFlags
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a language's fields",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, app *App, args []string) error {
			uc := languageUsecases.NewUpdateLanguageUseCase(app.client, app.languageMutator(), app.sink, app.log)
			lang, err := uc.Execute(ctx, languageUsecases.UpdateLanguageCommand{ID: args[0], LanguageCommand: update.command()})
			if err != nil {
				return err
			}
			return app.out.Print(itemView(*lang, languageHead, languageRow))
		}),
	}
	update.register(updateCmd)

	cmd.AddCommand(
		list,
		createCmd,
		updateCmd,
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Remove a language",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				uc := languageUsecases.NewDeleteLanguageUseCase(app.client, app.languageMutator(), app.sink, app.log)
				if err := uc.Execute(ctx, args[0]); err != nil {
					return err
				}
				app.out.Message("Language %s deleted", args[0])
				return nil
			}),
		},
		&cobra.Command{
			Use:   "reorder <id>...",
			Short: "Set the display order; every language id must be listed",
			Args:  cobra.MinimumNArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				uc := languageUsecases.NewReorderLanguagesUseCase(app.client, app.languageMutator(), app.sink, app.log)
				langs, err := uc.Execute(ctx, languageUsecases.ReorderLanguagesCommand{IDs: args})
				if err != nil {
					return err
				}
				return app.out.Print(sliceView(langs, languageHead, languageRow))
			}),
		},
	)

	return cmd
}
