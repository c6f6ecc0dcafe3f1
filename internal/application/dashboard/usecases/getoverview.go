package usecases

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/codearena/arena-admin/internal/shared/biztime"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

type DashboardGateway interface {
	ListUsers(ctx context.Context, params platform.ListParams) (*platform.Page[platform.User], error)
	ListTransactions(ctx context.Context, params platform.ListParams) (*platform.Page[platform.PaymentTransaction], error)
	ListSolutions(ctx context.Context, params platform.ListParams) (*platform.Page[platform.Solution], error)
	ListReports(ctx context.Context, params platform.ListParams) (*platform.Page[platform.ProblemReport], error)
	ListLanguages(ctx context.Context) ([]platform.ProgrammingLanguage, error)
	ListPlans(ctx context.Context) ([]platform.SubscriptionPlan, error)
}

type Overview struct {
	TotalUsers           int64     `json:"total_users"`
	BannedUsers          int64     `json:"banned_users"`
	TotalTransactions    int64     `json:"total_transactions"`
	TotalSolutions       int64     `json:"total_solutions"`
	OpenReports          int64     `json:"open_reports"`
	ActivePlans          int       `json:"active_plans"`
	UsersByRole          []Share   `json:"users_by_role"`
	TransactionsByStatus []Share   `json:"transactions_by_status"`
	SolutionsByLanguage  []Share   `json:"solutions_by_language"`
	GeneratedAt          time.Time `json:"generated_at"`
}

const fanOutLimit = 8

var (
	roles               = []string{"user", "moderator", "admin"}
	transactionStatuses = []string{"pending", "succeeded", "failed", "refunded"}
)

// GetOverviewUseCase builds the dashboard from concurrent count queries.
type GetOverviewUseCase struct {
	gateway DashboardGateway
	logger  logger.Interface
}

func NewGetOverviewUseCase(gateway DashboardGateway, logger logger.Interface) *GetOverviewUseCase {
	return &GetOverviewUseCase{gateway: gateway, logger: logger}
}

func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*Overview, error) {
	// languages decide how many solution counts follow
	langs, err := uc.gateway.ListLanguages(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load languages for dashboard", "error", err)
		return nil, errors.FromPlatform(err, "failed to load dashboard")
	}

	var (
		mu             sync.Mutex
		out            = &Overview{}
		roleCounts     = make([]int64, len(roles))
		statusCounts   = make([]int64, len(transactionStatuses))
		languageCounts = make([]int64, len(langs))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)

	count := func(dst *int64, fn func(ctx context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return err
			}
			mu.Lock()
			*dst = n
			mu.Unlock()
			return nil
		})
	}

	count(&out.TotalUsers, uc.users(nil))
	count(&out.BannedUsers, uc.users(map[string]string{"banned": "true"}))
	for i, role := range roles {
		count(&roleCounts[i], uc.users(map[string]string{"role": role}))
	}
	count(&out.TotalTransactions, uc.transactions(nil))
	for i, status := range transactionStatuses {
		count(&statusCounts[i], uc.transactions(map[string]string{"status": status}))
	}
	count(&out.TotalSolutions, uc.solutions(nil))
	for i, lang := range langs {
		count(&languageCounts[i], uc.solutions(map[string]string{"language_id": lang.ID}))
	}
	count(&out.OpenReports, func(ctx context.Context) (int64, error) {
		page, err := uc.gateway.ListReports(ctx, countParams(map[string]string{"status": "open"}))
		if err != nil {
			return 0, err
		}
		return page.Total, nil
	})
	g.Go(func() error {
		plans, err := uc.gateway.ListPlans(gctx)
		if err != nil {
			return err
		}
		active := 0
		for _, p := range plans {
			if p.Active {
				active++
			}
		}
		mu.Lock()
		out.ActivePlans = active
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to load dashboard", "error", err)
		return nil, errors.FromPlatform(err, "failed to load dashboard")
	}

	langNames := make([]string, len(langs))
	for i, l := range langs {
		langNames[i] = l.Name
	}

	out.UsersByRole = Distribute(roles, roleCounts)
	out.TransactionsByStatus = Distribute(transactionStatuses, statusCounts)
	out.SolutionsByLanguage = Distribute(langNames, languageCounts)
	out.GeneratedAt = biztime.NowUTC()
	return out, nil
}

func countParams(filters map[string]string) platform.ListParams {
	return platform.ListParams{Page: 1, Limit: 1, Filters: filters}
}

func (uc *GetOverviewUseCase) users(filters map[string]string) func(context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		page, err := uc.gateway.ListUsers(ctx, countParams(filters))
		if err != nil {
			return 0, err
		}
		return page.Total, nil
	}
}

func (uc *GetOverviewUseCase) transactions(filters map[string]string) func(context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		page, err := uc.gateway.ListTransactions(ctx, countParams(filters))
		if err != nil {
			return 0, err
		}
		return page.Total, nil
	}
}

func (uc *GetOverviewUseCase) solutions(filters map[string]string) func(context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		page, err := uc.gateway.ListSolutions(ctx, countParams(filters))
		if err != nil {
			return 0, err
		}
		return page.Total, nil
	}
}
