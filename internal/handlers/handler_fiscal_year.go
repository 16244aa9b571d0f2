package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/dto"
	"github.com/SscSPs/campaign_finance/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fiscalYearHandler handles fiscal year closure and archive requests.
type fiscalYearHandler struct {
	fiscalYearService portssvc.FiscalYearSvc
}

func registerFiscalYearRoutes(rg *gin.RouterGroup, fiscalYearService portssvc.FiscalYearSvc) {
	h := &fiscalYearHandler{fiscalYearService: fiscalYearService}

	assets := rg.Group("/assets/:assetID")
	{
		assets.POST("/fiscal-years/:year/close", h.closeFiscalYear)
		assets.GET("/fiscal-years", h.listClosures)
		assets.GET("/archive/:year", h.listArchivedEntries)
	}
}

func assetAndYear(c *gin.Context) (int64, int, error) {
	assetID, err := int64Param(c, "assetID")
	if err != nil {
		return 0, 0, err
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, 0, err
	}
	return assetID, year, nil
}

// closeFiscalYear godoc
// @Summary Close a fiscal year
// @Description Archives every live entry of the year and stores the carry-forward balance. Destructive: requires "confirm": true.
// @Tags fiscal-years
// @Accept  json
// @Produce  json
// @Param   assetID path int true "Asset ID"
// @Param   year path int true "Fiscal year"
// @Param   request body dto.CloseFiscalYearRequest true "Confirmation"
// @Success 200 {object} domain.FiscalYearClosure
// @Failure 400 {object} dto.ErrorResponse "Missing confirmation or invalid year"
// @Failure 404 {object} dto.ErrorResponse "Asset has no account"
// @Failure 409 {object} dto.ErrorResponse "Year already closed"
// @Failure 500 {object} dto.ErrorResponse "Failed to close fiscal year"
// @Router /assets/{assetID}/fiscal-years/{year}/close [post]
func (h *fiscalYearHandler) closeFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assetID, year, err := assetAndYear(c)
	if err != nil {
		badRequest(c, logger, "Invalid path parameters", err)
		return
	}
	logger = logger.With(slog.Int64("asset_id", assetID), slog.Int("fiscal_year", year))

	var req dto.CloseFiscalYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	if !req.Confirm {
		logger.Warn("Fiscal year close attempted without confirmation")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "closing a fiscal year is destructive; send \"confirm\": true"})
		return
	}

	closure, err := h.fiscalYearService.CloseFiscalYear(c.Request.Context(), assetID, year)
	if err != nil {
		respondError(c, logger, err, "Failed to close fiscal year")
		return
	}
	logger.Info("Fiscal year closed", slog.Int("archived", closure.ArchivedEntryCount))
	c.JSON(http.StatusOK, closure)
}

// listClosures godoc
// @Summary List fiscal year closures
// @Tags fiscal-years
// @Produce  json
// @Param   assetID path int true "Asset ID"
// @Success 200 {array} domain.FiscalYearClosure
// @Failure 400 {object} dto.ErrorResponse "Invalid asset ID"
// @Failure 404 {object} dto.ErrorResponse "Asset has no account"
// @Failure 500 {object} dto.ErrorResponse "Failed to list closures"
// @Router /assets/{assetID}/fiscal-years [get]
func (h *fiscalYearHandler) listClosures(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assetID, err := int64Param(c, "assetID")
	if err != nil {
		badRequest(c, logger, "Invalid path parameters", err)
		return
	}

	closures, err := h.fiscalYearService.ListClosures(c.Request.Context(), assetID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("asset_id", assetID)), err, "Failed to list closures")
		return
	}
	c.JSON(http.StatusOK, closures)
}

// listArchivedEntries godoc
// @Summary List archived entries
// @Description Returns the frozen entries of a closed year, ordered by session day
// @Tags fiscal-years
// @Produce  json
// @Param   assetID path int true "Asset ID"
// @Param   year path int true "Fiscal year"
// @Success 200 {object} dto.ListArchivedEntriesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid path parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list archived entries"
// @Router /assets/{assetID}/archive/{year} [get]
func (h *fiscalYearHandler) listArchivedEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assetID, year, err := assetAndYear(c)
	if err != nil {
		badRequest(c, logger, "Invalid path parameters", err)
		return
	}

	entries, err := h.fiscalYearService.ListArchivedEntries(c.Request.Context(), assetID, year)
	if err != nil {
		respondError(c, logger.With(slog.Int64("asset_id", assetID), slog.Int("fiscal_year", year)), err, "Failed to list archived entries")
		return
	}
	c.JSON(http.StatusOK, dto.ListArchivedEntriesResponse{AssetID: assetID, Year: year, Entries: entries})
}
