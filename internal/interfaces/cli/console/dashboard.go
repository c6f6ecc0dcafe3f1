package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	dashboardUsecases "github.com/codearena/arena-admin/internal/application/dashboard/usecases"
	"github.com/codearena/arena-admin/internal/interfaces/cli/output"
)

func newDashboardCommand(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show platform totals and distributions",
		Args:  cobra.NoArgs,
		RunE: o.run(func(ctx context.Context, app *App, _ []string) error {
			ov, err := dashboardUsecases.NewGetOverviewUseCase(app.client, app.log).Execute(ctx)
			if err != nil {
				return err
			}
			return app.out.Print(overviewView(ov))
		}),
	}
}

func overviewView(ov *dashboardUsecases.Overview) output.View {
	body := [][]string{
		{"users", "total", strconv.FormatInt(ov.TotalUsers, 10), ""},
		{"users", "banned", strconv.FormatInt(ov.BannedUsers, 10), ""},
		{"transactions", "total", strconv.FormatInt(ov.TotalTransactions, 10), ""},
		{"solutions", "total", strconv.FormatInt(ov.TotalSolutions, 10), ""},
		{"reports", "open", strconv.FormatInt(ov.OpenReports, 10), ""},
		{"plans", "active", itoa(ov.ActivePlans), ""},
	}
	add := func(group string, shares []dashboardUsecases.Share) {
		for _, s := range shares {
			body = append(body, []string{group, s.Label, strconv.FormatInt(s.Count, 10), fmt.Sprintf("%.1f%%", s.Percent)})
		}
	}
	add("users by role", ov.UsersByRole)
	add("transactions by status", ov.TransactionsByStatus)
	add("solutions by language", ov.SolutionsByLanguage)

	return output.View{
		Value:  ov,
		Head:   []string{"METRIC", "LABEL", "COUNT", "SHARE"},
		Body:   body,
		Status: "generated " + when(ov.GeneratedAt),
	}
}
