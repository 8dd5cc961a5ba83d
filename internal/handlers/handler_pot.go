package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type potHandler struct {
	potService portssvc.PotSvcFacade
}

// RegisterPotRoutes registers routes related to savings pots.
func RegisterPotRoutes(rg *gin.RouterGroup, potService portssvc.PotSvcFacade) {
	h := &potHandler{potService: potService}

	pots := rg.Group("/pots")
	{
		pots.GET("", h.listPots)
		pots.POST("", h.createPot)
		pots.GET("/summary", h.getPotsSummary)
		pots.GET("/used-colors", h.getUsedColors)
		pots.PATCH("/:id", h.updatePot)
		pots.DELETE("/:id", h.deletePot)
		pots.POST("/:id/add", h.addMoney)
		pots.POST("/:id/withdraw", h.withdrawMoney)
	}
}

// listPots godoc
// @Summary List savings pots
// @Tags pots
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param search query string false "Name filter"
// @Param sortBy query string false "Sort order"
// @Success 200 {object} domain.Paginated[domain.PotDTO]
// @Security BearerAuth
// @Router /pots [get]
func (h *potHandler) listPots(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}
	page, err := h.potService.GetPaginatedPots(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "list pots")
		return
	}
	c.JSON(http.StatusOK, page)
}

// createPot godoc
// @Summary Create a savings pot
// @Tags pots
// @Accept json
// @Produce json
// @Param pot body dto.CreatePotRequest true "Pot details"
// @Success 201 {object} domain.PotDTO
// @Security BearerAuth
// @Router /pots [post]
func (h *potHandler) createPot(c *gin.Context) {
	var req dto.CreatePotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	pot, err := h.potService.CreatePot(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "create pot")
		return
	}
	c.JSON(http.StatusCreated, pot)
}

// @Summary Total saved and the newest pots
// @Tags pots
// @Produce json
// @Param maxItemsToShow query int false "Pots to list"
// @Success 200 {object} domain.PotsSummary
// @Security BearerAuth
// @Router /pots/summary [get]
func (h *potHandler) getPotsSummary(c *gin.Context) {
	var req dto.SummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}
	summary, err := h.potService.GetPotsSummary(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "summarize pots")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Colour tags used by pots
// @Tags pots
// @Produce json
// @Success 200 {object} dto.UsedColorsResponse
// @Security BearerAuth
// @Router /pots/used-colors [get]
func (h *potHandler) getUsedColors(c *gin.Context) {
	colors, err := h.potService.GetPotUsedColors(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err, "list pot colors")
		return
	}
	c.JSON(http.StatusOK, dto.UsedColorsResponse{Colors: nonNil(colors)})
}

// @Summary Update a savings pot
// @Tags pots
// @Accept json
// @Produce json
// @Param id path string true "Pot ID"
// @Param pot body dto.UpdatePotData true "Fields to change"
// @Success 200 {object} domain.PotDTO
// @Security BearerAuth
// @Router /pots/{id} [patch]
func (h *potHandler) updatePot(c *gin.Context) {
	req := dto.UpdatePotRequest{PotID: c.Param("id")}
	if err := c.ShouldBindJSON(&req.Data); err != nil {
		respondBindError(c, err)
		return
	}
	pot, err := h.potService.UpdatePot(c.Request.Context(), callerID(c), &req)
	if err != nil {
		respondError(c, err, "update pot")
		return
	}
	c.JSON(http.StatusOK, pot)
}

// @Summary Delete a savings pot
// @Tags pots
// @Param id path string true "Pot ID"
// @Success 204
// @Security BearerAuth
// @Router /pots/{id} [delete]
func (h *potHandler) deletePot(c *gin.Context) {
	req := dto.DeletePotRequest{PotID: c.Param("id")}
	if err := h.potService.DeletePot(c.Request.Context(), callerID(c), &req); err != nil {
		respondError(c, err, "delete pot")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add money to a pot
// @Tags pots
// @Accept json
// @Produce json
// @Param id path string true "Pot ID"
// @Param body body dto.PotMoneyRequest true "Amount; potId is taken from the path"
// @Success 200 {object} domain.PotDTO
// @Security BearerAuth
// @Router /pots/{id}/add [post]
func (h *potHandler) addMoney(c *gin.Context) {
	req, ok := bindPotMoney(c)
	if !ok {
		return
	}
	pot, err := h.potService.AddMoneyToPot(c.Request.Context(), callerID(c), req)
	if err != nil {
		respondError(c, err, "add money to pot")
		return
	}
	c.JSON(http.StatusOK, pot)
}

// @Summary Withdraw money from a pot
// @Tags pots
// @Accept json
// @Produce json
// @Param id path string true "Pot ID"
// @Param body body dto.PotMoneyRequest true "Amount; potId is taken from the path"
// @Success 200 {object} domain.PotDTO
// @Security BearerAuth
// @Router /pots/{id}/withdraw [post]
func (h *potHandler) withdrawMoney(c *gin.Context) {
	req, ok := bindPotMoney(c)
	if !ok {
		return
	}
	pot, err := h.potService.WithdrawMoneyFromPot(c.Request.Context(), callerID(c), req)
	if err != nil {
		respondError(c, err, "withdraw money from pot")
		return
	}
	c.JSON(http.StatusOK, pot)
}

func bindPotMoney(c *gin.Context) (*dto.PotMoneyRequest, bool) {
	var req dto.PotMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return nil, false
	}
	req.PotID = c.Param("id")
	return &req, true
}
