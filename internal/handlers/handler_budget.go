package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// RegisterBudgetRoutes registers routes related to budgets.
func RegisterBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := &budgetHandler{budgetService: budgetService}

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.POST("", h.createBudget)
		budgets.GET("/summary", h.getBudgetsSummary)
		budgets.GET("/used-colors", h.getUsedColors)
		budgets.PATCH("/:id", h.updateBudget)
		budgets.DELETE("/:id", h.deleteBudget)
	}
}

// listBudgets godoc
// @Summary List budgets
// @Tags budgets
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param search query string false "Name filter"
// @Param sortBy query string false "latest, oldest, a-z, z-a, highest or lowest"
// @Success 200 {object} domain.Paginated[domain.BudgetDTO]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}
	page, err := h.budgetService.GetPaginatedBudgets(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "list budgets")
		return
	}
	c.JSON(http.StatusOK, page)
}

// createBudget godoc
// @Summary Create a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} domain.BudgetDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Name already used"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	budget, err := h.budgetService.CreateBudget(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "create budget")
		return
	}
	c.JSON(http.StatusCreated, budget)
}

// getBudgetsSummary godoc
// @Summary Budgets with this month's spending
// @Tags budgets
// @Produce json
// @Param maxItemsToShow query int false "Latest transactions per budget"
// @Success 200 {object} domain.BudgetSummary
// @Security BearerAuth
// @Router /budgets/summary [get]
func (h *budgetHandler) getBudgetsSummary(c *gin.Context) {
	var req dto.SummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}
	summary, err := h.budgetService.GetBudgetsSummary(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "summarize budgets")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getUsedColors godoc
// @Summary Colour tags used by budgets
// @Tags budgets
// @Produce json
// @Success 200 {object} dto.UsedColorsResponse
// @Security BearerAuth
// @Router /budgets/used-colors [get]
func (h *budgetHandler) getUsedColors(c *gin.Context) {
	colors, err := h.budgetService.GetBudgetUsedColors(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err, "list budget colors")
		return
	}
	c.JSON(http.StatusOK, dto.UsedColorsResponse{Colors: nonNil(colors)})
}

// updateBudget godoc
// @Summary Update a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget ID"
// @Param budget body dto.UpdateBudgetData true "Fields to change"
// @Success 200 {object} domain.BudgetDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budgets/{id} [patch]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	req := dto.UpdateBudgetRequest{BudgetID: c.Param("id")}
	if err := c.ShouldBindJSON(&req.Data); err != nil {
		respondBindError(c, err)
		return
	}
	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "update budget")
		return
	}
	c.JSON(http.StatusOK, budget)
}

// deleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Param id path string true "Budget ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	req := dto.DeleteBudgetRequest{BudgetID: c.Param("id")}
	if err := h.budgetService.DeleteBudget(c.Request.Context(), callerID(c), &req); err != nil {
		respondError(c, err, "delete budget")
		return
	}
	c.Status(http.StatusNoContent)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
