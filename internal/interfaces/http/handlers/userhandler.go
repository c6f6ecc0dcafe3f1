package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	userUsecases "github.com/codearena/arena-admin/internal/application/user/usecases"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type listUsersUseCase interface {
	Execute(ctx context.Context, query userUsecases.ListUsersQuery) (*dto.ListResult[platform.User], error)
}

type getUserUseCase interface {
	Execute(ctx context.Context, id string) (*platform.User, error)
}

type changeUserRoleUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.ChangeUserRoleCommand) (*platform.User, error)
}

type setUserBanUseCase interface {
	Execute(ctx context.Context, cmd userUsecases.SetUserBanCommand) (*platform.User, error)
}

type deleteUserUseCase interface {
	Execute(ctx context.Context, id string) error
}

type UserHandler struct {
	listUC   listUsersUseCase
	getUC    getUserUseCase
	roleUC   changeUserRoleUseCase
	banUC    setUserBanUseCase
	deleteUC deleteUserUseCase
	logger   logger.Interface
}

func NewUserHandler(
	listUC listUsersUseCase,
	getUC getUserUseCase,
	roleUC changeUserRoleUseCase,
	banUC setUserBanUseCase,
	deleteUC deleteUserUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUC:   listUC,
		getUC:    getUC,
		roleUC:   roleUC,
		banUC:    banUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// ListUsers handles GET /api/admin/users
// @Summary List users
// @Description List platform users with pagination and filters
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search text"
// @Param role query string false "Role filter"
// @Param banned query bool false "Banned filter"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	banned, err := parseBoolQuery(c, "banned")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	res, err := h.listUC.Execute(c.Request.Context(), userUsecases.ListUsersQuery{
		ListQuery: parseListQuery(c),
		Role:      c.Query("role"),
		Banned:    banned,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	respondList(c, res)
}

// GetUser handles GET /api/admin/users/:id
// @Summary Get user
// @Description Get a platform user by ID
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse{data=platform.User}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", user)
}

// ChangeRole handles PUT /api/admin/users/:id/role
// @Summary Change user role
// @Description Change the role of a platform user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body userUsecases.ChangeUserRoleCommand true "Request body"
// @Success 200 {object} utils.APIResponse{data=platform.User}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/users/{id}/role [put]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	var cmd userUsecases.ChangeUserRoleCommand
	if err := bindJSON(c, &cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.ID = c.Param("id")

	user, err := h.roleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User role updated", user)
}

// SetBan handles PUT /api/admin/users/:id/ban
// @Summary Ban or unban user
// @Description Ban or lift the ban on a platform user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body userUsecases.SetUserBanCommand true "Request body"
// @Success 200 {object} utils.APIResponse{data=platform.User}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/users/{id}/ban [put]
func (h *UserHandler) SetBan(c *gin.Context) {
	var cmd userUsecases.SetUserBanCommand
	if err := bindJSON(c, &cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.ID = c.Param("id")

	user, err := h.banUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	msg := "User unbanned"
	if cmd.Banned {
		msg = "User banned"
	}
	utils.SuccessResponse(c, http.StatusOK, msg, user)
}

// DeleteUser handles DELETE /api/admin/users/:id
// @Summary Delete user
// @Description Delete a platform user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
