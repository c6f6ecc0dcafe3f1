package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	transactionUsecases "github.com/codearena/arena-admin/internal/application/transaction/usecases"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type listTransactionsUseCase interface {
	Execute(ctx context.Context, query transactionUsecases.ListTransactionsQuery) (*dto.ListResult[platform.PaymentTransaction], error)
}

type getTransactionUseCase interface {
	Execute(ctx context.Context, id string) (*platform.PaymentTransaction, error)
}

// TransactionHandler is read-only; payments are settled on the platform.
type TransactionHandler struct {
	listUC listTransactionsUseCase
	getUC  getTransactionUseCase
}

func NewTransactionHandler(listUC listTransactionsUseCase, getUC getTransactionUseCase) *TransactionHandler {
	return &TransactionHandler{listUC: listUC, getUC: getUC}
}

// ListTransactions handles GET /api/admin/transactions
// @Summary List transactions
// @Description List payment transactions with pagination and filters
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Search text"
// @Param status query string false "Status filter"
// @Param user_id query string false "User ID"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	res, err := h.listUC.Execute(c.Request.Context(), transactionUsecases.ListTransactionsQuery{
		ListQuery: parseListQuery(c),
		Status:    c.Query("status"),
		UserID:    c.Query("user_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	respondList(c, res)
}

// GetTransaction handles GET /api/admin/transactions/:id
// @Summary Get transaction
// @Description Get a payment transaction by ID
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} utils.APIResponse{data=platform.PaymentTransaction}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	tx, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", tx)
}
