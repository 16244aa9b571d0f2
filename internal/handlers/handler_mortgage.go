package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/middleware"
	"github.com/gin-gonic/gin"
)

type mortgageHandler struct {
	mortgageService portssvc.MortgageSvc
}

func registerMortgageRoutes(rg *gin.RouterGroup, mortgageService portssvc.MortgageSvc) {
	h := &mortgageHandler{mortgageService: mortgageService}

	mortgages := rg.Group("/mortgages/:mortgageID")
	{
		mortgages.GET("/breakdown", h.getBreakdown)
		mortgages.GET("/schedule", h.getSchedule)
	}
}

// getBreakdown godoc
// @Summary Mortgage breakdown
// @Description Calculates ship cost, monthly and annual payments and insurance, rounded half-down to cents
// @Tags mortgages
// @Produce  json
// @Param   mortgageID path int true "Mortgage ID"
// @Success 200 {object} domain.MortgageBreakdown
// @Failure 400 {object} dto.ErrorResponse "Invalid mortgage ID"
// @Failure 404 {object} dto.ErrorResponse "Mortgage not found"
// @Failure 422 {object} dto.ErrorResponse "Mortgage lacks an interest rate plan or price"
// @Failure 500 {object} dto.ErrorResponse "Failed to calculate mortgage"
// @Router /mortgages/{mortgageID}/breakdown [get]
func (h *mortgageHandler) getBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	mortgageID, err := int64Param(c, "mortgageID")
	if err != nil {
		badRequest(c, logger, "Invalid path parameters", err)
		return
	}

	breakdown, err := h.mortgageService.GetBreakdown(c.Request.Context(), mortgageID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("mortgage_id", mortgageID)), err, "Failed to calculate mortgage")
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// getSchedule godoc
// @Summary Mortgage installment schedule
// @Description Generates one installment per in-universe month starting one month after signing
// @Tags mortgages
// @Produce  json
// @Param   mortgageID path int true "Mortgage ID"
// @Success 200 {object} dto.MortgageScheduleResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid mortgage ID"
// @Failure 404 {object} dto.ErrorResponse "Mortgage not found"
// @Failure 422 {object} dto.ErrorResponse "Mortgage is not signed or lacks a plan"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate schedule"
// @Router /mortgages/{mortgageID}/schedule [get]
func (h *mortgageHandler) getSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	mortgageID, err := int64Param(c, "mortgageID")
	if err != nil {
		badRequest(c, logger, "Invalid path parameters", err)
		return
	}

	schedule, err := h.mortgageService.GetSchedule(c.Request.Context(), mortgageID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("mortgage_id", mortgageID)), err, "Failed to generate schedule")
		return
	}
	c.JSON(http.StatusOK, schedule)
}
