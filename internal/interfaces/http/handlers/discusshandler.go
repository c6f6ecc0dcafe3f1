package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	discussUsecases "github.com/codearena/arena-admin/internal/application/discuss/usecases"
	"github.com/codearena/arena-admin/internal/application/optimistic"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type listPostsUseCase interface {
	Execute(ctx context.Context, query discussUsecases.ListPostsQuery) (*dto.ListResult[discussUsecases.PostDTO], error)
}

type getPostUseCase interface {
	Execute(ctx context.Context, id string) (*discussUsecases.PostDTO, error)
}

type deletePostUseCase interface {
	Execute(ctx context.Context, id string) error
}

type pinPostUseCase interface {
	Execute(ctx context.Context, cmd discussUsecases.PinPostCommand) (*platform.Post, error)
}

type listCommentsUseCase interface {
	Execute(ctx context.Context, query discussUsecases.ListCommentsQuery) (*dto.ListResult[platform.Comment], error)
}

type deleteCommentUseCase interface {
	Execute(ctx context.Context, id string) error
}

type voteCommentUseCase interface {
	Execute(ctx context.Context, cmd discussUsecases.VoteCommentCommand) (optimistic.VoteState, error)
}

// DiscussHandler moderates discussion posts and their comments.
type DiscussHandler struct {
	listPostsUC     listPostsUseCase
	getPostUC       getPostUseCase
	deletePostUC    deletePostUseCase
	pinPostUC       pinPostUseCase
	listCommentsUC  listCommentsUseCase
	deleteCommentUC deleteCommentUseCase
	voteCommentUC   voteCommentUseCase
}

func NewDiscussHandler(
	listPostsUC listPostsUseCase,
	getPostUC getPostUseCase,
	deletePostUC deletePostUseCase,
	pinPostUC pinPostUseCase,
	listCommentsUC listCommentsUseCase,
	deleteCommentUC deleteCommentUseCase,
	voteCommentUC voteCommentUseCase,
) *DiscussHandler {
	return &DiscussHandler{
		listPostsUC:     listPostsUC,
		getPostUC:       getPostUC,
		deletePostUC:    deletePostUC,
		pinPostUC:       pinPostUC,
		listCommentsUC:  listCommentsUC,
		deleteCommentUC: deleteCommentUC,
		voteCommentUC:   voteCommentUC,
	}
}

// ListPosts handles GET /api/admin/posts
// @Summary List posts
// @Description List discussion posts with pagination and filters
// @Tags Discuss
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search text"
// @Param author_id query string false "Author ID"
// @Param tag query string false "Tag"
// @Param pinned query bool false "Pinned filter"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/posts [get]
func (h *DiscussHandler) ListPosts(c *gin.Context) {
	pinned, err := parseBoolQuery(c, "pinned")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	res, err := h.listPostsUC.Execute(c.Request.Context(), discussUsecases.ListPostsQuery{
		ListQuery: parseListQuery(c),
		AuthorID:  c.Query("author_id"),
		Tag:       c.Query("tag"),
		Pinned:    pinned,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	respondList(c, res)
}

// GetPost handles GET /api/admin/posts/:id
// @Summary Get post
// @Description Get a discussion post
// @Tags Discuss
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse{data=discussUsecases.PostDTO}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/posts/{id} [get]
func (h *DiscussHandler) GetPost(c *gin.Context) {
	post, err := h.getPostUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", post)
}

// DeletePost handles DELETE /api/admin/posts/:id
// @Summary Delete post
// @Description Delete a discussion post
// @Tags Discuss
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 204
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/posts/{id} [delete]
func (h *DiscussHandler) DeletePost(c *gin.Context) {
	if err := h.deletePostUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// PinPost handles PUT /api/admin/posts/:id/pin
// @Summary Pin or unpin post
// @Description Pin or unpin a discussion post
// @Tags Discuss
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body discussUsecases.PinPostCommand true "Request body"
// @Success 200 {object} utils.APIResponse{data=platform.Post}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/posts/{id}/pin [put]
func (h *DiscussHandler) PinPost(c *gin.Context) {
	var cmd discussUsecases.PinPostCommand
	if err := bindJSON(c, &cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.ID = c.Param("id")

	post, err := h.pinPostUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", post)
}

// ListComments handles GET /api/admin/posts/:id/comments
// @Summary List comments
// @Description List comments of a discussion post
// @Tags Discuss
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search text"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/posts/{id}/comments [get]
func (h *DiscussHandler) ListComments(c *gin.Context) {
	res, err := h.listCommentsUC.Execute(c.Request.Context(), discussUsecases.ListCommentsQuery{
		ListQuery: parseListQuery(c),
		PostID:    c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	respondList(c, res)
}

// DeleteComment handles DELETE /api/admin/comments/:id
// @Summary Delete comment
// @Description Delete a comment
// @Tags Discuss
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 204
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/comments/{id} [delete]
func (h *DiscussHandler) DeleteComment(c *gin.Context) {
	if err := h.deleteCommentUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// VoteComment handles POST /api/admin/comments/:id/vote
// @Summary Vote on comment
// @Description Toggle the caller's vote on a comment
// @Tags Discuss
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Param request body discussUsecases.VoteCommentCommand true "Request body"
// @Success 200 {object} utils.APIResponse{data=optimistic.VoteState}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/comments/{id}/vote [post]
func (h *DiscussHandler) VoteComment(c *gin.Context) {
	var cmd discussUsecases.VoteCommentCommand
	if err := bindJSON(c, &cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.ID = c.Param("id")

	state, err := h.voteCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", state)
}
