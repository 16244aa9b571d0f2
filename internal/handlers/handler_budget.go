package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/dto"
	"github.com/SscSPs/campaign_finance/internal/middleware"
	"github.com/gin-gonic/gin"
)

type budgetHandler struct {
	budgetService portssvc.BudgetSvc
}

func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvc) {
	h := &budgetHandler{budgetService: budgetService}

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("/:budgetID/projection", h.projectBudget)
	}
}

// createBudget godoc
// @Summary Create an annual budget
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateBudgetRequest true "Budget period"
// @Success 201 {object} domain.AnnualBudget
// @Failure 400 {object} dto.ErrorResponse "Invalid input or start after end"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to create budget"
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	logger = logger.With(slog.String("account_id", req.AccountID))

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create budget")
		return
	}
	logger.Info("Budget created", slog.String("budget_id", budget.BudgetID))
	c.JSON(http.StatusCreated, budget)
}

// projectBudget godoc
// @Summary Project a budget
// @Description Computes income, costs, projected and actual budget for the stored period
// @Tags budgets
// @Produce  json
// @Param   budgetID path string true "Budget ID"
// @Success 200 {object} domain.BudgetProjection
// @Failure 404 {object} dto.ErrorResponse "Budget not found"
// @Failure 422 {object} dto.ErrorResponse "Mortgage lacks an interest rate plan"
// @Failure 500 {object} dto.ErrorResponse "Failed to project budget"
// @Router /budgets/{budgetID}/projection [get]
func (h *budgetHandler) projectBudget(c *gin.Context) {
	budgetID := c.Param("budgetID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("budget_id", budgetID))

	projection, err := h.budgetService.ProjectBudget(c.Request.Context(), budgetID)
	if err != nil {
		respondError(c, logger, err, "Failed to project budget")
		return
	}
	c.JSON(http.StatusOK, projection)
}
