package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	languageUsecases "github.com/codearena/arena-admin/internal/application/language/usecases"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type listLanguagesUseCase interface {
	Execute(ctx context.Context, query dto.ListQuery) (*dto.ListResult[platform.ProgrammingLanguage], error)
}

type createLanguageUseCase interface {
	Execute(ctx context.Context, cmd languageUsecases.LanguageCommand) (*platform.ProgrammingLanguage, error)
}

type updateLanguageUseCase interface {
	Execute(ctx context.Context, cmd languageUsecases.UpdateLanguageCommand) (*platform.ProgrammingLanguage, error)
}

type deleteLanguageUseCase interface {
	Execute(ctx context.Context, id string) error
}

type reorderLanguagesUseCase interface {
	Execute(ctx context.Context, cmd languageUsecases.ReorderLanguagesCommand) ([]platform.ProgrammingLanguage, error)
}

type LanguageHandler struct {
	listUC    listLanguagesUseCase
	createUC  createLanguageUseCase
	updateUC  updateLanguageUseCase
	deleteUC  deleteLanguageUseCase
	reorderUC reorderLanguagesUseCase
	logger    logger.Interface
}

func NewLanguageHandler(
	listUC listLanguagesUseCase,
	createUC createLanguageUseCase,
	updateUC updateLanguageUseCase,
	deleteUC deleteLanguageUseCase,
	reorderUC reorderLanguagesUseCase,
	logger logger.Interface,
) *LanguageHandler {
	return &LanguageHandler{
		listUC:    listUC,
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		reorderUC: reorderUC,
		logger:    logger,
	}
}

// ListLanguages handles GET /api/admin/languages
// @Summary List languages
// @Description List programming languages in display order
// @Tags Languages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search text"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/languages [get]
func (h *LanguageHandler) ListLanguages(c *gin.Context) {
	res, err := h.listUC.Execute(c.Request.Context(), parseListQuery(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	respondList(c, res)
}

// CreateLanguage handles POST /api/admin/languages
// @Summary Create language
// @Description Create a programming language
// @Tags Languages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body languageUsecases.LanguageCommand true "Request body"
// @Success 201 {object} utils.APIResponse{data=platform.ProgrammingLanguage}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/admin/languages [post]
func (h *LanguageHandler) CreateLanguage(c *gin.Context) {
	var cmd languageUsecases.LanguageCommand
	if err := bindJSON(c, &cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	lang, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, lang, "Language created successfully")
}

// UpdateLanguage handles PUT /api/admin/languages/:id
// @Summary Update language
// @Description Update a programming language
// @Tags Languages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Language ID"
// @Param request body languageUsecases.LanguageCommand true "Request body"
// @Success 200 {object} utils.APIResponse{data=platform.ProgrammingLanguage}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/languages/{id} [put]
func (h *LanguageHandler) UpdateLanguage(c *gin.Context) {
	var cmd languageUsecases.UpdateLanguageCommand
	if err := bindJSON(c, &cmd.LanguageCommand); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.ID = c.Param("id")

	lang, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Language updated successfully", lang)
}

// DeleteLanguage handles DELETE /api/admin/languages/:id
// @Summary Delete language
// @Description Delete a programming language
// @Tags Languages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Language ID"
// @Success 204
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/languages/{id} [delete]
func (h *LanguageHandler) DeleteLanguage(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// ReorderLanguages handles PUT /api/admin/languages/order
// @Summary Reorder languages
// @Description Set the display order of all programming languages
// @Tags Languages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body languageUsecases.ReorderLanguagesCommand true "Request body"
// @Success 200 {object} utils.APIResponse{data=[]platform.ProgrammingLanguage}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/languages/order [put]
func (h *LanguageHandler) ReorderLanguages(c *gin.Context) {
	var cmd languageUsecases.ReorderLanguagesCommand
	if err := bindJSON(c, &cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	langs, err := h.reorderUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Languages reordered", langs)
}
