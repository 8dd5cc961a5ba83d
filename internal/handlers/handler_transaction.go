package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: transactionService}

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.GET("/summary", h.getTransactionsSummary)
		transactions.PATCH("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the caller's transactions, optionally narrowed to one category.
// @Tags transactions
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param search query string false "Name filter"
// @Param sortBy query string false "latest, oldest, a-z, z-a, highest or lowest"
// @Param categoryId query string false "Category filter"
// @Success 200 {object} domain.Paginated[domain.TransactionDTO]
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var req dto.TransactionPaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}
	page, err := h.transactionService.GetPaginatedTransactions(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, page)
}

// createTransaction godoc
// @Summary Create a transaction
// @Description The category name and colour are copied from the category.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} domain.TransactionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "create transaction")
		return
	}
	c.JSON(http.StatusCreated, transaction)
}

// getTransactionsSummary godoc
// @Summary Income, expenses and balance
// @Tags transactions
// @Produce json
// @Success 200 {object} domain.TransactionsSummary
// @Security BearerAuth
// @Router /transactions/summary [get]
func (h *transactionHandler) getTransactionsSummary(c *gin.Context) {
	summary, err := h.transactionService.GetTransactionsSummary(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err, "summarize transactions")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// updateTransaction godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionData true "Fields to change"
// @Success 200 {object} domain.TransactionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	req := dto.UpdateTransactionRequest{TransactionID: c.Param("id")}
	if err := c.ShouldBindJSON(&req.Data); err != nil {
		respondBindError(c, err)
		return
	}
	transaction, err := h.transactionService.UpdateTransaction(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "update transaction")
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	req := dto.DeleteTransactionRequest{TransactionID: c.Param("id")}
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), callerID(c), &req); err != nil {
		respondError(c, err, "delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
