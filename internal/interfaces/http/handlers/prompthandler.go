package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	promptUsecases "github.com/codearena/arena-admin/internal/application/prompt/usecases"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type listPromptsUseCase interface {
	Execute(ctx context.Context, query dto.ListQuery) (*dto.ListResult[platform.AIPrompt], error)
}

type getPromptUseCase interface {
	Execute(ctx context.Context, id string) (*platform.AIPrompt, error)
}

type createPromptUseCase interface {
	Execute(ctx context.Context, cmd promptUsecases.PromptCommand) (*platform.AIPrompt, error)
}

type updatePromptUseCase interface {
	Execute(ctx context.Context, cmd promptUsecases.UpdatePromptCommand) (*platform.AIPrompt, error)
}

type deletePromptUseCase interface {
	Execute(ctx context.Context, id string) error
}

type previewPromptUseCase interface {
	Execute(ctx context.Context, cmd promptUsecases.PreviewPromptCommand) (*promptUsecases.PreviewResult, error)
}

type PromptHandler struct {
	listUC    listPromptsUseCase
	getUC     getPromptUseCase
	createUC  createPromptUseCase
	updateUC  updatePromptUseCase
	deleteUC  deletePromptUseCase
	previewUC previewPromptUseCase
}

func NewPromptHandler(
	listUC listPromptsUseCase,
	getUC getPromptUseCase,
	createUC createPromptUseCase,
	updateUC updatePromptUseCase,
	deleteUC deletePromptUseCase,
	previewUC previewPromptUseCase,
) *PromptHandler {
	return &PromptHandler{
		listUC:    listUC,
		getUC:     getUC,
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		previewUC: previewUC,
	}
}

// ListPrompts handles GET /api/admin/prompts
// @Summary List prompts
// @Description List AI prompt templates
// @Tags Prompts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search text"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/prompts [get]
func (h *PromptHandler) ListPrompts(c *gin.Context) {
	res, err := h.listUC.Execute(c.Request.Context(), parseListQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	respondList(c, res)
}

// GetPrompt handles GET /api/admin/prompts/:id
// @Summary Get prompt
// @Description Get an AI prompt template
// @Tags Prompts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prompt ID"
// @Success 200 {object} utils.APIResponse{data=platform.AIPrompt}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/prompts/{id} [get]
func (h *PromptHandler) GetPrompt(c *gin.Context) {
	prompt, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", prompt)
}

// CreatePrompt handles POST /api/admin/prompts
// @Summary Create prompt
// @Description Create an AI prompt template
// @Tags Prompts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body promptUsecases.PromptCommand true "Request body"
// @Success 201 {object} utils.APIResponse{data=platform.AIPrompt}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/prompts [post]
func (h *PromptHandler) CreatePrompt(c *gin.Context) {
	var cmd promptUsecases.PromptCommand
	if err := bindJSON(c, &cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	prompt, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, prompt, "Prompt created successfully")
}

// UpdatePrompt handles PUT /api/admin/prompts/:id
// @Summary Update prompt
// @Description Update an AI prompt template
// @Tags Prompts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prompt ID"
// @Param request body promptUsecases.PromptCommand true "Request body"
// @Success 200 {object} utils.APIResponse{data=platform.AIPrompt}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/prompts/{id} [put]
func (h *PromptHandler) UpdatePrompt(c *gin.Context) {
	var cmd promptUsecases.UpdatePromptCommand
	if err := bindJSON(c, &cmd.PromptCommand); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.ID = c.Param("id")

	prompt, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Prompt updated successfully", prompt)
}

// DeletePrompt handles DELETE /api/admin/prompts/:id
// @Summary Delete prompt
// @Description Delete an AI prompt template
// @Tags Prompts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Prompt ID"
// @Success 204
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/prompts/{id} [delete]
func (h *PromptHandler) DeletePrompt(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// PreviewPrompt renders a template draft with sample variables.
// @Summary Preview prompt
// @Description Render a template draft with sample variables
// @Tags Prompts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body promptUsecases.PreviewPromptCommand true "Request body"
// @Success 200 {object} utils.APIResponse{data=promptUsecases.PreviewResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/prompts/preview [post]
func (h *PromptHandler) PreviewPrompt(c *gin.Context) {
	var cmd promptUsecases.PreviewPromptCommand
	if err := bindJSON(c, &cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	res, err := h.previewUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", res)
}
