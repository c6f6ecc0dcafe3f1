package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type GetReportUseCase struct {
	gateway ReportGateway
	logger  logger.Interface
}

func NewGetReportUseCase(gateway ReportGateway, logger logger.Interface) *GetReportUseCase {
	return &GetReportUseCase{gateway: gateway, logger: logger}
}

func (uc *GetReportUseCase) Execute(ctx context.Context, id string) (*platform.ProblemReport, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}

	report, err := uc.gateway.GetReport(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get report", "id", id, "error", err)
		return nil, errors.FromPlatform(err, "failed to get report")
	}
	return report, nil
}
