package console

import (
	"context"

	"github.com/spf13/cobra"

	reportUsecases "github.com/codearena/arena-admin/internal/application/report/usecases"
	"github.com/codearena/arena-admin/internal/infrastructure/email"
	"github.com/codearena/arena-admin/sdk/platform"
)

var reportHead = []string{"ID", "PROBLEM", "CATEGORY", "STATUS", "MESSAGE", "CREATED"}

func reportRow(r platform.ProblemReport) []string {
	return []string{r.ID, truncate(r.ProblemTitle, 30), r.Category, r.Status, truncate(r.Message, 50), when(r.CreatedAt)}
}

func (a *App) notifier() email.Notifier {
	return email.NewNotifier(a.cfg.Email, a.log.Named("email"))
}

func newReportsCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "Triage problem reports",
	}

	var (
		lf                listFlags
		status, problemID string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List reports",
		Args:  cobra.NoArgs,
		RunE: o.run(func(ctx context.Context, app *App, _ []string) error {
			uc := reportUsecases.NewListReportsUseCase(app.client, app.fetcher, app.log)
			res, err := uc.Execute(ctx, reportUsecases.ListReportsQuery{ListQuery: lf.query(), Status: status, ProblemID: problemID})
			if err != nil {
				return err
			}
			return app.out.Print(listView(res, reportHead, reportRow))
		}),
	}
	lf.register(list)
	list.Flags().StringVar(&status, "status", "", "Filter by status: open, resolved, dismissed")
	list.Flags().StringVar(&problemID, "problem", "", "Filter by problem id")

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show one report",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				r, err := reportUsecases.NewGetReportUseCase(app.client, app.log).Execute(ctx, args[0])
				if err != nil {
					return err
				}
				if err := app.out.Print(itemView(*r, reportHead, reportRow)); err != nil {
					return err
				}
				app.out.Message("\n%s", r.Message)
				return nil
			}),
		},
		newCloseReportCommand(o, true),
		newCloseReportCommand(o, false),
	)

	return cmd
}

func newCloseReportCommand(o *Options, resolve bool) *cobra.Command {
	var (
		resolution string
		notify     bool
	)

	use, short := "resolve <id>", "Mark a report as fixed"
	if !resolve {
		use, short = "dismiss <id>", "Close a report without changes"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, app *App, args []string) error {
			newUC := reportUsecases.NewResolveReportUseCase
			if !resolve {
				newUC = reportUsecases.NewDismissReportUseCase
			}
			uc := newUC(app.client, app.notifier(), app.workers, app.sink, app.log)
			r, err := uc.Execute(ctx, reportUsecases.CloseReportCommand{ID: args[0], Resolution: resolution, Notify: notify})
			if err != nil {
				return err
			}
			return app.out.Print(itemView(*r, reportHead, reportRow))
		}),
	}

	cmd.Flags().StringVarP(&resolution, "message", "m", "", "Resolution note for the reporter")
	cmd.Flags().BoolVar(&notify, "notify", false, "E-mail the reporter")

	return cmd
}
