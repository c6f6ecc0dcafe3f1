package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	auditUsecases "github.com/codearena/arena-admin/internal/application/audit/usecases"
	"github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type listAuditEntriesUseCase interface {
	Execute(ctx context.Context, query auditUsecases.ListAuditEntriesQuery) (*dto.ListResult[auditUsecases.AuditEntryDTO], error)
}

type AuditHandler struct {
	listUC listAuditEntriesUseCase
}

func NewAuditHandler(listUC listAuditEntriesUseCase) *AuditHandler {
	return &AuditHandler{listUC: listUC}
}

// ListEntries handles GET /api/admin/audit
// @Summary List audit entries
// @Description List staff actions recorded by the console
// @Tags Audit
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search text"
// @Param actor_id query string false "Actor staff ID"
// @Param resource query string false "Resource name"
// @Param resource_id query string false "Resource ID"
// @Param outcome query string false "Outcome (success, failure)"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/audit [get]
func (h *AuditHandler) ListEntries(c *gin.Context) {
	res, err := h.listUC.Execute(c.Request.Context(), auditUsecases.ListAuditEntriesQuery{
		ListQuery:  parseListQuery(c),
		ActorID:    c.Query("actor_id"),
		Resource:   c.Query("resource"),
		ResourceID: c.Query("resource_id"),
		Outcome:    c.Query("outcome"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	respondList(c, res)
}
