package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/dto"
	"github.com/SscSPs/campaign_finance/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests related to ledger entries.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers account-scoped and entry-scoped ledger routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	accounts := rg.Group("/accounts/:accountID")
	{
		accounts.POST("/deposits", h.deposit)
		accounts.POST("/withdrawals", h.withdraw)
		accounts.GET("/entries", h.listEntries)
		accounts.GET("/balance", h.getBalance)
		accounts.POST("/settle", h.settlePending)
	}
	rg.POST("/entries/:entryID/void", h.voidEntry)
}

// deposit godoc
// @Summary Record a deposit
// @Description Records a credit on the account. Entries dated after the campaign's current day are PENDING.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Financial account ID"
// @Param   entry body dto.RecordEntryBody true "Entry details"
// @Success 201 {object} domain.LedgerEntry
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 409 {object} dto.ErrorResponse "Fiscal year closed or source already recorded"
// @Failure 500 {object} dto.ErrorResponse "Failed to record deposit"
// @Router /accounts/{accountID}/deposits [post]
func (h *ledgerHandler) deposit(c *gin.Context) {
	h.record(c, domain.Deposit)
}

// withdraw godoc
// @Summary Record a withdrawal
// @Description Records a debit on the account. Entries dated after the campaign's current day are PENDING.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Financial account ID"
// @Param   entry body dto.RecordEntryBody true "Entry details"
// @Success 201 {object} domain.LedgerEntry
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 409 {object} dto.ErrorResponse "Fiscal year closed or source already recorded"
// @Failure 500 {object} dto.ErrorResponse "Failed to record withdrawal"
// @Router /accounts/{accountID}/withdrawals [post]
func (h *ledgerHandler) withdraw(c *gin.Context) {
	h.record(c, domain.Withdrawal)
}

func (h *ledgerHandler) record(c *gin.Context, kind domain.EntryKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("account_id", c.Param("accountID")), slog.String("kind", string(kind)))

	var body dto.RecordEntryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	req := body.ToRequest(c.Param("accountID"))

	var (
		entry *domain.LedgerEntry
		err   error
	)
	if kind == domain.Withdrawal {
		entry, err = h.ledgerService.Withdraw(c.Request.Context(), req)
	} else {
		entry, err = h.ledgerService.Deposit(c.Request.Context(), req)
	}
	if err != nil {
		respondError(c, logger, err, "Failed to record entry")
		return
	}

	logger.Info("Ledger entry recorded", slog.String("entry_id", entry.EntryID), slog.String("status", string(entry.Status)))
	c.JSON(http.StatusCreated, entry)
}

// listEntries godoc
// @Summary List ledger entries
// @Description Lists live entries of an account ordered by session date, using token pagination
// @Tags ledger
// @Produce  json
// @Param   accountID path string true "Financial account ID"
// @Param   limit query int false "Page size (1-100)" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to list entries"
// @Router /accounts/{accountID}/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", c.Param("accountID")))

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	resp, err := h.ledgerService.ListEntries(c.Request.Context(), c.Param("accountID"), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getBalance godoc
// @Summary Get account balance
// @Description Returns the realized balance (sum of POSTED entries, live and archived)
// @Tags ledger
// @Produce  json
// @Param   accountID path string true "Financial account ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to get balance"
// @Router /accounts/{accountID}/balance [get]
func (h *ledgerHandler) getBalance(c *gin.Context) {
	accountID := c.Param("accountID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", accountID))

	credits, err := h.ledgerService.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to get balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: accountID, Credits: credits})
}

// settlePending godoc
// @Summary Settle pending entries
// @Description Posts every PENDING entry whose session date the campaign clock has reached
// @Tags ledger
// @Produce  json
// @Param   accountID path string true "Financial account ID"
// @Success 200 {object} dto.SettleResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent modification"
// @Failure 500 {object} dto.ErrorResponse "Failed to settle entries"
// @Router /accounts/{accountID}/settle [post]
func (h *ledgerHandler) settlePending(c *gin.Context) {
	accountID := c.Param("accountID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", accountID))

	resp, err := h.ledgerService.SettlePending(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to settle entries")
		return
	}
	logger.Info("Pending entries settled", slog.Int("settled", resp.Settled))
	c.JSON(http.StatusOK, resp)
}

// voidEntry godoc
// @Summary Void a ledger entry
// @Description Marks a live entry VOID and reverses its balance effect if it was POSTED
// @Tags ledger
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} domain.LedgerEntry
// @Failure 400 {object} dto.ErrorResponse "Entry already void"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to void entry"
// @Router /entries/{entryID}/void [post]
func (h *ledgerHandler) voidEntry(c *gin.Context) {
	entryID := c.Param("entryID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", entryID))

	entry, err := h.ledgerService.VoidEntry(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, logger, err, "Failed to void entry")
		return
	}
	logger.Info("Ledger entry voided")
	c.JSON(http.StatusOK, entry)
}
