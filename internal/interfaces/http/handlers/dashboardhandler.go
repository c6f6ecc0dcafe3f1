package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	dashboardUsecases "github.com/codearena/arena-admin/internal/application/dashboard/usecases"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type getOverviewUseCase interface {
	Execute(ctx context.Context) (*dashboardUsecases.Overview, error)
}

type DashboardHandler struct {
	overviewUC getOverviewUseCase
}

func NewDashboardHandler(overviewUC getOverviewUseCase) *DashboardHandler {
	return &DashboardHandler{overviewUC: overviewUC}
}

// GetOverview handles GET /api/admin/dashboard
// @Summary Dashboard overview
// @Description Get platform totals and recent activity
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=dashboardUsecases.Overview}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/dashboard [get]
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.overviewUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", overview)
}
