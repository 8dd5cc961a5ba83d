package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type incomeHandler struct {
	incomeService portssvc.IncomeSvcFacade
}

// RegisterIncomeRoutes registers routes related to income sources.
func RegisterIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvcFacade) {
	h := &incomeHandler{incomeService: incomeService}

	incomes := rg.Group("/incomes")
	{
		incomes.GET("", h.listIncomes)
		incomes.POST("", h.createIncome)
		incomes.GET("/summary", h.getIncomesSummary)
		incomes.GET("/count", h.getIncomesCount)
		incomes.PATCH("/:id", h.updateIncome)
		incomes.DELETE("/:id", h.deleteIncome)
	}
}

// listIncomes godoc
// @Summary List income sources
// @Tags incomes
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param search query string false "Name filter"
// @Param sortBy query string false "Sort order"
// @Success 200 {object} domain.Paginated[domain.IncomeDTO]
// @Security BearerAuth
// @Router /incomes [get]
func (h *incomeHandler) listIncomes(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}
	page, err := h.incomeService.GetPaginatedIncomes(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "list incomes")
		return
	}
	c.JSON(http.StatusOK, page)
}

// createIncome godoc
// @Summary Create an income source
// @Tags incomes
// @Accept json
// @Produce json
// @Param income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} domain.IncomeDTO
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /incomes [post]
func (h *incomeHandler) createIncome(c *gin.Context) {
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	income, err := h.incomeService.CreateIncome(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "create income")
		return
	}
	c.JSON(http.StatusCreated, income)
}

// getIncomesSummary godoc
// @Summary Income sources with their totals
// @Tags incomes
// @Produce json
// @Param maxItemsToShow query int false "Sources to list"
// @Success 200 {object} domain.IncomesSummary
// @Security BearerAuth
// @Router /incomes/summary [get]
func (h *incomeHandler) getIncomesSummary(c *gin.Context) {
	var req dto.SummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}
	summary, err := h.incomeService.GetIncomesSummary(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "summarize incomes")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getIncomesCount godoc
// @Summary Number of income sources
// @Tags incomes
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Security BearerAuth
// @Router /incomes/count [get]
func (h *incomeHandler) getIncomesCount(c *gin.Context) {
	n, err := h.incomeService.GetIncomesCount(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err, "count incomes")
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: n})
}

// updateIncome godoc
// @Summary Update an income source
// @Tags incomes
// @Accept json
// @Produce json
// @Param id path string true "Income ID"
// @Param income body dto.UpdateIncomeData true "Fields to change"
// @Success 200 {object} domain.IncomeDTO
// @Security BearerAuth
// @Router /incomes/{id} [patch]
func (h *incomeHandler) updateIncome(c *gin.Context) {
	req := dto.UpdateIncomeRequest{IncomeID: c.Param("id")}
	if err := c.ShouldBindJSON(&req.Data); err != nil {
		respondBindError(c, err)
		return
	}
	income, err := h.incomeService.UpdateIncome(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "update income")
		return
	}
	c.JSON(http.StatusOK, income)
}

// deleteIncome godoc
// @Summary Delete an income source
// @Tags incomes
// @Param id path string true "Income ID"
// @Success 204
// @Security BearerAuth
// @Router /incomes/{id} [delete]
func (h *incomeHandler) deleteIncome(c *gin.Context) {
	req := dto.DeleteIncomeRequest{IncomeID: c.Param("id")}
	if err := h.incomeService.DeleteIncome(c.Request.Context(), callerID(c), &req); err != nil {
		respondError(c, err, "delete income")
		return
	}
	c.Status(http.StatusNoContent)
}
