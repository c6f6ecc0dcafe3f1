package usecases

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	apperrors "github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeDashboardGateway struct {
	calls       atomic.Int32
	failReports bool
}

func (f *fakeDashboardGateway) ListUsers(_ context.Context, p platform.ListParams) (*platform.Page[platform.User], error) {
	f.calls.Add(1)
	counts := map[string]int64{"": 10, "user": 7, "moderator": 2, "admin": 1}
	if p.Filters["banned"] == "true" {
		return &platform.Page[platform.User]{Total: 3}, nil
	}
	return &platform.Page[platform.User]{Total: counts[p.Filters["role"]]}, nil
}

func (f *fakeDashboardGateway) ListTransactions(_ context.Context, p platform.ListParams) (*platform.Page[platform.PaymentTransaction], error) {
	f.calls.Add(1)
	counts := map[string]int64{"": 3, "pending": 1, "succeeded": 1, "failed": 1, "refunded": 0}
	return &platform.Page[platform.PaymentTransaction]{Total: counts[p.Filters["status"]]}, nil
}

func (f *fakeDashboardGateway) ListSolutions(_ context.Context, p platform.ListParams) (*platform.Page[platform.Solution], error) {
	f.calls.Add(1)
	counts := map[string]int64{"": 0}
	return &platform.Page[platform.Solution]{Total: counts[p.Filters["language_id"]]}, nil
}

func (f *fakeDashboardGateway) ListReports(context.Context, platform.ListParams) (*platform.Page[platform.ProblemReport], error) {
	f.calls.Add(1)
	if f.failReports {
		return nil, &platform.APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}
	}
	return &platform.Page[platform.ProblemReport]{Total: 5}, nil
}

func (f *fakeDashboardGateway) ListLanguages(context.Context) ([]platform.ProgrammingLanguage, error) {
	return []platform.ProgrammingLanguage{{ID: "go", Name: "Go"}, {ID: "py", Name: "Python"}}, nil
}

func (f *fakeDashboardGateway) ListPlans(context.Context) ([]platform.SubscriptionPlan, error) {
	return []platform.SubscriptionPlan{{ID: "a", Active: true}, {ID: "b"}}, nil
}

func TestGetOverview(t *testing.T) {
	gw := &fakeDashboardGateway{}
	uc := NewGetOverviewUseCase(gw, logger.NewNop())

	o, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), o.TotalUsers)
	assert.Equal(t, int64(3), o.BannedUsers)
	assert.Equal(t, int64(5), o.OpenReports)
	assert.Equal(t, 1, o.ActivePlans)

	require.Len(t, o.UsersByRole, 3)
	assert.Equal(t, 70.0, o.UsersByRole[0].Percent)
	assert.Equal(t, 20.0, o.UsersByRole[1].Percent)
	assert.Equal(t, 10.0, o.UsersByRole[2].Percent)

	assert.Equal(t, []Share{
		{Label: "pending", Count: 1, Percent: 33.4},
		{Label: "succeeded", Count: 1, Percent: 33.3},
		{Label: "failed", Count: 1, Percent: 33.3},
		{Label: "refunded", Count: 0, Percent: 0},
	}, o.TransactionsByStatus)

	assert.Empty(t, o.SolutionsByLanguage, "no solutions yet")
	assert.Equal(t, int32(2+3+1+4+1+2+1), gw.calls.Load())
}

func TestGetOverview_FailsWhenAnyFetchFails(t *testing.T) {
	uc := NewGetOverviewUseCase(&fakeDashboardGateway{failReports: true}, logger.NewNop())

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperrors.GetAppError(err).Code)
}
