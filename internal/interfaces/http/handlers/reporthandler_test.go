package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	reportUsecases "github.com/codearena/arena-admin/internal/application/report/usecases"
	"github.com/codearena/arena-admin/internal/interfaces/http/handlers/testutil"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/sdk/platform"
)

type mockCloseReportUC struct {
	status string
	cmd    reportUsecases.CloseReportCommand
	err    error
	called bool
}

func (m *mockCloseReportUC) Execute(ctx context.Context, cmd reportUsecases.CloseReportCommand) (*platform.ProblemReport, error) {
	m.called = true
	m.cmd = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &platform.ProblemReport{ID: cmd.ID, Status: m.status, Resolution: cmd.Resolution}, nil
}

func TestReportHandler_ResolveReport(t *testing.T) {
	resolve := &mockCloseReportUC{status: reportUsecases.StatusResolved}
	dismiss := &mockCloseReportUC{status: reportUsecases.StatusDismissed}
	handler := NewReportHandler(nil, nil, resolve, dismiss)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/reports/r1/resolve", map[string]any{"resolution": "fixed test 3", "notify": true})
	testutil.SetURLParam(c, "id", "r1")

	handler.ResolveReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resolve.called)
	assert.False(t, dismiss.called)
	assert.Equal(t, reportUsecases.CloseReportCommand{ID: "r1", Resolution: "fixed test 3", Notify: true}, resolve.cmd)
}

func TestReportHandler_DismissReport_WithoutBody(t *testing.T) {
	dismiss := &mockCloseReportUC{status: reportUsecases.StatusDismissed}
	handler := NewReportHandler(nil, nil, &mockCloseReportUC{}, dismiss)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/reports/r2/dismiss", nil)
	testutil.SetURLParam(c, "id", "r2")

	handler.DismissReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "r2", dismiss.cmd.ID)
	assert.Empty(t, dismiss.cmd.Resolution)
}

func TestReportHandler_ResolveReport_AlreadyClosed(t *testing.T) {
	resolve := &mockCloseReportUC{err: errors.NewConflictError("report is already closed")}
	handler := NewReportHandler(nil, nil, resolve, &mockCloseReportUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/reports/r1/resolve", map[string]string{"resolution": "done"})
	testutil.SetURLParam(c, "id", "r1")

	handler.ResolveReport(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
