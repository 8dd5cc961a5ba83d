package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type recurringBillHandler struct {
	billService portssvc.RecurringBillSvcFacade
}

// RegisterRecurringBillRoutes registers routes related to recurring bills.
func RegisterRecurringBillRoutes(rg *gin.RouterGroup, billService portssvc.RecurringBillSvcFacade) {
	h := &recurringBillHandler{billService: billService}

	bills := rg.Group("/recurring-bills")
	{
		bills.GET("", h.listRecurringBills)
		bills.POST("", h.createRecurringBill)
		bills.GET("/summary", h.getRecurringBillsSummary)
		bills.DELETE("/:id", h.deleteRecurringBill)
		bills.POST("/:id/pay", h.payRecurringBill)
	}
}

// @Summary List recurring bills
// @Tags recurring-bills
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param search query string false "Name filter"
// @Param sortBy query string false "Sort order"
// @Success 200 {object} domain.Paginated[domain.RecurringBillDTO]
// @Security BearerAuth
// @Router /recurring-bills [get]
func (h *recurringBillHandler) listRecurringBills(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}
	page, err := h.billService.GetPaginatedRecurringBills(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "list recurring bills")
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Create a recurring bill
// @Tags recurring-bills
// @Accept json
// @Produce json
// @Param bill body dto.CreateRecurringBillRequest true "Bill details"
// @Success 201 {object} domain.RecurringBillDTO
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Security BearerAuth
// @Router /recurring-bills [post]
func (h *recurringBillHandler) createRecurringBill(c *gin.Context) {
	var req dto.CreateRecurringBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	bill, err := h.billService.CreateRecurringBill(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "create recurring bill")
		return
	}
	c.JSON(http.StatusCreated, bill)
}

// @Summary Bills grouped by paid, upcoming and due soon
// @Tags recurring-bills
// @Produce json
// @Success 200 {object} domain.RecurringBillsSummary
// @Security BearerAuth
// @Router /recurring-bills/summary [get]
func (h *recurringBillHandler) getRecurringBillsSummary(c *gin.Context) {
	summary, err := h.billService.GetRecurringBillsSummary(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err, "summarize recurring bills")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Delete a recurring bill
// @Tags recurring-bills
// @Param id path string true "Recurring bill ID"
// @Success 204
// @Security BearerAuth
// @Router /recurring-bills/{id} [delete]
func (h *recurringBillHandler) deleteRecurringBill(c *gin.Context) {
	req := dto.DeleteRecurringBillRequest{RecurringBillID: c.Param("id")}
	if err := h.billService.DeleteRecurringBill(c.Request.Context(), callerID(c), &req); err != nil {
		respondError(c, err, "delete recurring bill")
		return
	}
	c.Status(http.StatusNoContent)
}

// payRecurringBill godoc
// @Summary Pay a recurring bill
// @Description Records the payment and books it as an expense. Amount defaults to the bill amount and paidAt to now; an empty body is allowed.
// @Tags recurring-bills
// @Accept json
// @Produce json
// @Param id path string true "Recurring bill ID"
// @Param payment body dto.PayRecurringBillRequest false "Payment overrides"
// @Success 201 {object} dto.PayRecurringBillResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /recurring-bills/{id}/pay [post]
func (h *recurringBillHandler) payRecurringBill(c *gin.Context) {
	var req dto.PayRecurringBillRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}
	req.RecurringBillID = c.Param("id")

	result, err := h.billService.PayRecurringBill(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "pay recurring bill")
		return
	}
	c.JSON(http.StatusCreated, result)
}
