package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/infrastructure/email"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/goroutine"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

const noticeTimeout = 30 * time.Second

type CloseReportCommand struct {
	ID         string `json:"-"`
	Resolution string `json:"resolution" validate:"max=2000"`
	// Notify e-mails the reporter once the report is closed.
	Notify bool `json:"notify"`
}

// CloseReportUseCase moves an open report to resolved or dismissed.
type CloseReportUseCase struct {
	status   string
	gateway  ReportGateway
	notifier ReportNotifier
	workers  *goroutine.Group
	audit    audit.Sink
	logger   logger.Interface
}

// NewResolveReportUseCase requires a resolution note.
func NewResolveReportUseCase(gateway ReportGateway, notifier ReportNotifier, workers *goroutine.Group, sink audit.Sink, logger logger.Interface) *CloseReportUseCase {
	return &CloseReportUseCase{status: StatusResolved, gateway: gateway, notifier: notifier, workers: workers, audit: sink, logger: logger}
}

func NewDismissReportUseCase(gateway ReportGateway, notifier ReportNotifier, workers *goroutine.Group, sink audit.Sink, logger logger.Interface) *CloseReportUseCase {
	return &CloseReportUseCase{status: StatusDismissed, gateway: gateway, notifier: notifier, workers: workers, audit: sink, logger: logger}
}

func (uc *CloseReportUseCase) Execute(ctx context.Context, cmd CloseReportCommand) (report *platform.ProblemReport, err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "reports." + uc.verb(), Resource: "report", ResourceID: cmd.ID, Payload: cmd}, err)
	}()

	if err := utils.ValidateID(cmd.ID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}
	resolution := strings.TrimSpace(cmd.Resolution)
	if uc.status == StatusResolved && resolution == "" {
		return nil, errors.NewValidationError("Validation failed", "resolution is required")
	}

	report, err = uc.gateway.UpdateReportStatus(ctx, cmd.ID, uc.status, resolution)
	if err != nil {
		uc.logger.Errorw("failed to close report", "id", cmd.ID, "status", uc.status, "error", err)
		return nil, errors.FromPlatform(err, "failed to "+uc.verb()+" report")
	}

	uc.logger.Infow("report closed", "id", cmd.ID, "status", report.Status)

	if cmd.Notify {
		uc.notify(ctx, report)
	}
	return report, nil
}

func (uc *CloseReportUseCase) verb() string {
	if uc.status == StatusResolved {
		return "resolve"
	}
	return "dismiss"
}

func (uc *CloseReportUseCase) notify(ctx context.Context, report *platform.ProblemReport) {
	if report.ReporterEmail == "" {
		uc.logger.Warnw("reporter has no e-mail address, skipping notice", "id", report.ID)
		return
	}

	notice := email.ReportNotice{
		To:           report.ReporterEmail,
		ProblemTitle: report.ProblemTitle,
		Status:       report.Status,
		Resolution:   report.Resolution,
	}
	sendCtx := context.WithoutCancel(ctx)

	uc.workers.Go("report-notice", func() {
		ctx, cancel := context.WithTimeout(sendCtx, noticeTimeout)
		defer cancel()
		if err := uc.notifier.SendReportNotice(ctx, notice); err != nil {
			uc.logger.Errorw("failed to send report notice", "id", report.ID, "error", err)
		}
	})
}
