package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/application/optimistic"
	solutionUsecases "github.com/codearena/arena-admin/internal/application/solution/usecases"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type listSolutionsUseCase interface {
	Execute(ctx context.Context, query solutionUsecases.ListSolutionsQuery) (*dto.ListResult[platform.Solution], error)
}

type getSolutionUseCase interface {
	Execute(ctx context.Context, id string) (*solutionUsecases.SolutionDTO, error)
}

type deleteSolutionUseCase interface {
	Execute(ctx context.Context, id string) error
}

type voteSolutionUseCase interface {
	Execute(ctx context.Context, cmd solutionUsecases.VoteSolutionCommand) (optimistic.VoteState, error)
}

type SolutionHandler struct {
	listUC   listSolutionsUseCase
	getUC    getSolutionUseCase
	deleteUC deleteSolutionUseCase
	voteUC   voteSolutionUseCase
}

func NewSolutionHandler(
	listUC listSolutionsUseCase,
	getUC getSolutionUseCase,
	deleteUC deleteSolutionUseCase,
	voteUC voteSolutionUseCase,
) *SolutionHandler {
	return &SolutionHandler{listUC: listUC, getUC: getUC, deleteUC: deleteUC, voteUC: voteUC}
}

// ListSolutions handles GET /api/admin/solutions
// @Summary List solutions
// @Description List published solutions with pagination and filters
// @Tags Solutions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search text"
// @Param problem_id query string false "Problem ID"
// @Param language_id query string false "Language ID"
// @Param author_id query string false "Author ID"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/solutions [get]
func (h *SolutionHandler) ListSolutions(c *gin.Context) {
	res, err := h.listUC.Execute(c.Request.Context(), solutionUsecases.ListSolutionsQuery{
		ListQuery:  parseListQuery(c),
		ProblemID:  c.Query("problem_id"),
		LanguageID: c.Query("language_id"),
		AuthorID:   c.Query("author_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	respondList(c, res)
}

// GetSolution handles GET /api/admin/solutions/:id
// @Summary Get solution
// @Description Get a solution with its vote state
// @Tags Solutions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Solution ID"
// @Success 200 {object} utils.APIResponse{data=solutionUsecases.SolutionDTO}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/solutions/{id} [get]
func (h *SolutionHandler) GetSolution(c *gin.Context) {
	sol, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", sol)
}

// DeleteSolution handles DELETE /api/admin/solutions/:id
// @Summary Delete solution
// @Description Delete a solution
// @Tags Solutions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Solution ID"
// @Success 204
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/solutions/{id} [delete]
func (h *SolutionHandler) DeleteSolution(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// VoteSolution toggles the caller's vote. Sending the current direction again
// withdraws the vote.
// @Summary Vote on solution
// @Description Toggle the caller's vote on a solution
// @Tags Solutions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Solution ID"
// @Param request body solutionUsecases.VoteSolutionCommand true "Request body"
// @Success 200 {object} utils.APIResponse{data=optimistic.VoteState}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/solutions/{id}/vote [post]
func (h *SolutionHandler) VoteSolution(c *gin.Context) {
	var cmd solutionUsecases.VoteSolutionCommand
	if err := bindJSON(c, &cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.ID = c.Param("id")

	state, err := h.voteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", state)
}
