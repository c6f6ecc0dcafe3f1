package console

import (
	"context"

	"github.com/spf13/cobra"

	transactionUsecases "github.com/codearena/arena-admin/internal/application/transaction/usecases"
	"github.com/codearena/arena-admin/sdk/platform"
)

var transactionHead = []string{"ID", "USER", "PLAN", "AMOUNT", "STATUS", "PROVIDER", "CREATED"}

func transactionRow(t platform.PaymentTransaction) []string {
	return []string{t.ID, t.UserID, t.PlanID, t.Amount + " " + t.Currency, t.Status, t.Provider, when(t.CreatedAt)}
}

func newTransactionsCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"transaction", "tx"},
		Short:   "Inspect payment transactions",
	}

	var (
		lf     listFlags
		status string
		userID string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: o.run(func(ctx context.Context, app *App, _ []string) error {
			uc := transactionUsecases.NewListTransactionsUseCase(app.client, app.fetcher, app.log)
			res, err := uc.Execute(ctx, transactionUsecases.ListTransactionsQuery{ListQuery: lf.query(), Status: status, UserID: userID})
			if err != nil {
				return err
			}
			return app.out.Print(listView(res, transactionHead, transactionRow))
		}),
	}
	lf.register(list)
	list.Flags().StringVar(&status, "status", "", "Filter by status: pending, succeeded, failed, refunded")
	list.Flags().StringVar(&userID, "user", "", "Filter by user id")

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show one transaction",
			Args:  cobra.ExactArgs(1),
			RunE: o.run(func(ctx context.Context, app *App, args []string) error {
				t, err := transactionUsecases.NewGetTransactionUseCase(app.client, app.log).Execute(ctx, args[0])
				if err != nil {
					return err
				}
				return app.out.Print(itemView(*t, transactionHead, transactionRow))
			}),
		},
	)

	return cmd
}
