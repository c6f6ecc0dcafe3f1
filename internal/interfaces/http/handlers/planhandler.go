package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	planUsecases "github.com/codearena/arena-admin/internal/application/plan/usecases"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type PlanHandler struct {
	listPlansUC       listPlansUseCase
	getPlanUC         getPlanUseCase
	createPlanUC      createPlanUseCase
	updatePlanUC      updatePlanUseCase
	deletePlanUC      deletePlanUseCase
	setPlanActiveUC   setPlanActiveUseCase
	createFeatureUC   createFeatureUseCase
	updateFeatureUC   updateFeatureUseCase
	deleteFeatureUC   deleteFeatureUseCase
	reorderFeaturesUC reorderFeaturesUseCase
	logger            logger.Interface
}

func NewPlanHandler(
	listPlansUC listPlansUseCase,
	getPlanUC getPlanUseCase,
	createPlanUC createPlanUseCase,
	updatePlanUC updatePlanUseCase,
	deletePlanUC deletePlanUseCase,
	setPlanActiveUC setPlanActiveUseCase,
	createFeatureUC createFeatureUseCase,
	updateFeatureUC updateFeatureUseCase,
	deleteFeatureUC deleteFeatureUseCase,
	reorderFeaturesUC reorderFeaturesUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		listPlansUC:       listPlansUC,
		getPlanUC:         getPlanUC,
		createPlanUC:      createPlanUC,
		updatePlanUC:      updatePlanUC,
		deletePlanUC:      deletePlanUC,
		setPlanActiveUC:   setPlanActiveUC,
		createFeatureUC:   createFeatureUC,
		updateFeatureUC:   updateFeatureUC,
		deleteFeatureUC:   deleteFeatureUC,
		reorderFeaturesUC: reorderFeaturesUC,
		logger:            logger,
	}
}

// UpdatePlanStatusRequest switches a plan on or off.
type UpdatePlanStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// ListPlans handles GET /api/admin/plans
// @Summary List plans
// @Description List subscription plans with pagination
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search text"
// @Param active query bool false "Active filter"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	active, err := parseBoolQuery(c, "active")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	res, err := h.listPlansUC.Execute(c.Request.Context(), planUsecases.ListPlansQuery{
		ListQuery: parseListQuery(c),
		Active:    active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	respondList(c, res)
}

// GetPlan handles GET /api/admin/plans/:id
// @Summary Get plan
// @Description Get a subscription plan with its features
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=plandto.PlanDTO}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.getPlanUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", plan)
}

// CreatePlan handles POST /api/admin/plans
// @Summary Create plan
// @Description Create a subscription plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body planUsecases.PlanCommand true "Request body"
// @Success 201 {object} utils.APIResponse{data=plandto.PlanDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var cmd planUsecases.PlanCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	plan, err := h.createPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, plan, "Plan created successfully")
}

// UpdatePlan handles PUT /api/admin/plans/:id
// @Summary Update plan
// @Description Update a subscription plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param request body planUsecases.PlanCommand true "Request body"
// @Success 200 {object} utils.APIResponse{data=plandto.PlanDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	planID := c.Param("id")

	var cmd planUsecases.UpdatePlanCommand
	if err := bindJSON(c, &cmd.PlanCommand); err != nil {
		h.logger.Warnw("invalid request body for update plan", "plan_id", planID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.ID = planID

	plan, err := h.updatePlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", plan)
}

// DeletePlan handles DELETE /api/admin/plans/:id
// @Summary Delete plan
// @Description Delete a subscription plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 204
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.deletePlanUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// UpdatePlanStatus handles PATCH /api/admin/plans/:id/status
// @Summary Update plan status
// @Description Activate or deactivate a subscription plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param request body UpdatePlanStatusRequest true "Request body"
// @Success 200 {object} utils.APIResponse{data=plandto.PlanDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/plans/{id}/status [patch]
func (h *PlanHandler) UpdatePlanStatus(c *gin.Context) {
	var req UpdatePlanStatusRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	plan, err := h.setPlanActiveUC.Execute(c.Request.Context(), planUsecases.SetPlanActiveCommand{
		ID:     c.Param("id"),
		Active: req.Status == "active",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Plan status updated", plan)
}

// CreateFeature handles POST /api/admin/plans/:id/features
// @Summary Create plan feature
// @Description Add a feature to a subscription plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param request body planUsecases.FeatureCommand true "Request body"
// @Success 201 {object} utils.APIResponse{data=platform.SubscriptionFeature}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/plans/{id}/features [post]
func (h *PlanHandler) CreateFeature(c *gin.Context) {
	var cmd planUsecases.CreateFeatureCommand
	if err := bindJSON(c, &cmd.FeatureCommand); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.PlanID = c.Param("id")

	feature, err := h.createFeatureUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, feature, "Feature created successfully")
}

// UpdateFeature handles PUT /api/admin/plans/:id/features/:feature_id
// @Summary Update plan feature
// @Description Update a feature of a subscription plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param feature_id path string true "Feature ID"
// @Param request body planUsecases.FeatureCommand true "Request body"
// @Success 200 {object} utils.APIResponse{data=platform.SubscriptionFeature}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/plans/{id}/features/{feature_id} [put]
func (h *PlanHandler) UpdateFeature(c *gin.Context) {
	var cmd planUsecases.UpdateFeatureCommand
	if err := bindJSON(c, &cmd.FeatureCommand); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.PlanID = c.Param("id")
	cmd.FeatureID = c.Param("feature_id")

	feature, err := h.updateFeatureUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Feature updated successfully", feature)
}

// DeleteFeature handles DELETE /api/admin/plans/:id/features/:feature_id
// @Summary Delete plan feature
// @Description Remove a feature from a subscription plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param feature_id path string true "Feature ID"
// @Success 204
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/plans/{id}/features/{feature_id} [delete]
func (h *PlanHandler) DeleteFeature(c *gin.Context) {
	err := h.deleteFeatureUC.Execute(c.Request.Context(), planUsecases.DeleteFeatureCommand{
		PlanID:    c.Param("id"),
		FeatureID: c.Param("feature_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// ReorderFeatures handles PUT /api/admin/plans/:id/features/order
// @Summary Reorder plan features
// @Description Set the display order of all features of a plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Param request body planUsecases.ReorderFeaturesCommand true "Request body"
// @Success 200 {object} utils.APIResponse{data=[]platform.SubscriptionFeature}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/plans/{id}/features/order [put]
func (h *PlanHandler) ReorderFeatures(c *gin.Context) {
	var cmd planUsecases.ReorderFeaturesCommand
	if err := bindJSON(c, &cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.PlanID = c.Param("id")

	features, err := h.reorderFeaturesUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Features reordered", features)
}
