package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/codearena/arena-admin/internal/application/audit/audittest"
	"github.com/codearena/arena-admin/internal/application/common/listing"
	"github.com/codearena/arena-admin/internal/infrastructure/email"
	apperrors "github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/goroutine"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockReportGateway struct {
	ListFunc   func(ctx context.Context, params platform.ListParams) (*platform.Page[platform.ProblemReport], error)
	UpdateFunc func(ctx context.Context, id, status, resolution string) (*platform.ProblemReport, error)
}

func (m *mockReportGateway) ListReports(ctx context.Context, params platform.ListParams) (*platform.Page[platform.ProblemReport], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}
	return &platform.Page[platform.ProblemReport]{}, nil
}

func (m *mockReportGateway) GetReport(_ context.Context, id string) (*platform.ProblemReport, error) {
	return &platform.ProblemReport{ID: id}, nil
}

func (m *mockReportGateway) UpdateReportStatus(ctx context.Context, id, status, resolution string) (*platform.ProblemReport, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, status, resolution)
	}
	return &platform.ProblemReport{
		ID:            id,
		ProblemTitle:  "Two Sum",
		ReporterEmail: "reporter@example.com",
		Status:        status,
		Resolution:    resolution,
	}, nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []email.ReportNotice
}

func (n *recordingNotifier) SendReportNotice(_ context.Context, notice email.ReportNotice) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
	return nil
}

func TestResolveReport_RequiresResolution(t *testing.T) {
	workers := goroutine.NewGroup(logger.NewNop())
	uc := NewResolveReportUseCase(&mockReportGateway{}, &recordingNotifier{}, workers, audittest.NewSink(), logger.NewNop())

	_, err := uc.Execute(context.Background(), CloseReportCommand{ID: "r1"})
	assert.True(t, apperrors.IsValidationError(err))
	workers.Wait()
}

func TestResolveReport_NotifiesReporter(t *testing.T) {
	notifier := &recordingNotifier{}
	workers := goroutine.NewGroup(logger.NewNop())
	sink := audittest.NewSink()
	uc := NewResolveReportUseCase(&mockReportGateway{}, notifier, workers, sink, logger.NewNop())

	report, err := uc.Execute(context.Background(), CloseReportCommand{ID: "r1", Resolution: " fixed the checker ", Notify: true})
	require.NoError(t, err)
	assert.Equal(t, StatusResolved, report.Status)
	assert.Equal(t, "fixed the checker", report.Resolution)
	assert.Equal(t, "reports.resolve", sink.Last().Action.Name)

	workers.Wait()
	require.Len(t, notifier.notices, 1)
	assert.Equal(t, "reporter@example.com", notifier.notices[0].To)
	assert.Equal(t, "Two Sum", notifier.notices[0].ProblemTitle)
}

func TestDismissReport_WithoutNotice(t *testing.T) {
	notifier := &recordingNotifier{}
	workers := goroutine.NewGroup(logger.NewNop())
	uc := NewDismissReportUseCase(&mockReportGateway{}, notifier, workers, audittest.NewSink(), logger.NewNop())

	report, err := uc.Execute(context.Background(), CloseReportCommand{ID: "r1"})
	require.NoError(t, err)
	assert.Equal(t, StatusDismissed, report.Status)

	workers.Wait()
	assert.Empty(t, notifier.notices)
}

func TestListReports_StatusFilter(t *testing.T) {
	var got platform.ListParams
	gw := &mockReportGateway{ListFunc: func(_ context.Context, p platform.ListParams) (*platform.Page[platform.ProblemReport], error) {
		got = p
		return &platform.Page[platform.ProblemReport]{}, nil
	}}
	uc := NewListReportsUseCase(gw, listing.NewFetcher(), logger.NewNop())

	_, err := uc.Execute(context.Background(), ListReportsQuery{Status: StatusOpen})
	require.NoError(t, err)
	assert.Equal(t, "open", got.Filters["status"])

	_, err = uc.Execute(context.Background(), ListReportsQuery{Status: "closed"})
	assert.True(t, apperrors.IsValidationError(err))
}
