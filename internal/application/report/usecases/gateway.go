package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/infrastructure/email"
	"github.com/codearena/arena-admin/sdk/platform"
)

type ReportGateway interface {
	ListReports(ctx context.Context, params platform.ListParams) (*platform.Page[platform.ProblemReport], error)
	GetReport(ctx context.Context, id string) (*platform.ProblemReport, error)
	UpdateReportStatus(ctx context.Context, id, status, resolution string) (*platform.ProblemReport, error)
}

type ReportNotifier interface {
	SendReportNotice(ctx context.Context, notice email.ReportNotice) error
}

// Report statuses.
const (
	StatusOpen      = "open"
	StatusResolved  = "resolved"
	StatusDismissed = "dismissed"
)
