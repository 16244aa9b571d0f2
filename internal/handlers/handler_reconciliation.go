package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvc
}

func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvc) {
	h := &reconciliationHandler{reconciliationService: reconciliationService}
	rg.POST("/reconciliation/resync", h.resyncAll)
}

// resyncAll godoc
// @Summary Reconcile all business records
// @Description Creates the ledger entries implied by stored incomes and costs that do not have one yet. Safe to repeat.
// @Tags reconciliation
// @Produce  json
// @Success 200 {object} domain.ReconcileResult
// @Failure 500 {object} dto.ErrorResponse "Reconciliation failed"
// @Router /reconciliation/resync [post]
func (h *reconciliationHandler) resyncAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.reconciliationService.ResyncAll(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Reconciliation failed")
		return
	}
	logger.Info("Reconciliation finished", slog.Int("created", result.Created), slog.Int("skipped", result.Skipped))
	c.JSON(http.StatusOK, result)
}
