package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	reportUsecases "github.com/codearena/arena-admin/internal/application/report/usecases"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type listReportsUseCase interface {
	Execute(ctx context.Context, query reportUsecases.ListReportsQuery) (*dto.ListResult[platform.ProblemReport], error)
}

type getReportUseCase interface {
	Execute(ctx context.Context, id string) (*platform.ProblemReport, error)
}

type closeReportUseCase interface {
	Execute(ctx context.Context, cmd reportUsecases.CloseReportCommand) (*platform.ProblemReport, error)
}

type ReportHandler struct {
	listUC    listReportsUseCase
	getUC     getReportUseCase
	resolveUC closeReportUseCase
	dismissUC closeReportUseCase
}

func NewReportHandler(listUC listReportsUseCase, getUC getReportUseCase, resolveUC, dismissUC closeReportUseCase) *ReportHandler {
	return &ReportHandler{listUC: listUC, getUC: getUC, resolveUC: resolveUC, dismissUC: dismissUC}
}

// ListReports handles GET /api/admin/reports
// @Summary List reports
// @Description List problem reports with pagination and filters
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search text"
// @Param status query string false "Status filter"
// @Param problem_id query string false "Problem ID"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	res, err := h.listUC.Execute(c.Request.Context(), reportUsecases.ListReportsQuery{
		ListQuery: parseListQuery(c),
		Status:    c.Query("status"),
		ProblemID: c.Query("problem_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	respondList(c, res)
}

// GetReport handles GET /api/admin/reports/:id
// @Summary Get report
// @Description Get a problem report
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} utils.APIResponse{data=platform.ProblemReport}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", report)
}

// ResolveReport handles POST /api/admin/reports/:id/resolve
// @Summary Resolve report
// @Description Mark a problem report as resolved
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body reportUsecases.CloseReportCommand false "Resolution note"
// @Success 200 {object} utils.APIResponse{data=platform.ProblemReport}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/admin/reports/{id}/resolve [post]
func (h *ReportHandler) ResolveReport(c *gin.Context) {
	h.close(c, h.resolveUC, "Report resolved")
}

// DismissReport handles POST /api/admin/reports/:id/dismiss
// @Summary Dismiss report
// @Description Dismiss a problem report
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body reportUsecases.CloseReportCommand false "Resolution note"
// @Success 200 {object} utils.APIResponse{data=platform.ProblemReport}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/admin/reports/{id}/dismiss [post]
func (h *ReportHandler) DismissReport(c *gin.Context) {
	h.close(c, h.dismissUC, "Report dismissed")
}

func (h *ReportHandler) close(c *gin.Context, uc closeReportUseCase, msg string) {
	var cmd reportUsecases.CloseReportCommand
	if c.Request.ContentLength != 0 {
		if err := bindJSON(c, &cmd); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}
	cmd.ID = c.Param("id")

	report, err := uc.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, msg, report)
}
