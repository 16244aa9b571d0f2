package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/campaign_finance/internal/apperrors"
	"github.com/SscSPs/campaign_finance/internal/core/domain"
	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/dto"
	"github.com/SscSPs/campaign_finance/internal/handlers"
	"github.com/SscSPs/campaign_finance/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	ledger         *MockLedgerService
	fiscalYear     *MockFiscalYearService
	reconciliation *MockReconciliationService
	mortgage       *MockMortgageService
	budget         *MockBudgetService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(io.Discard, nil))))

	suite.ledger = new(MockLedgerService)
	suite.fiscalYear = new(MockFiscalYearService)
	suite.reconciliation = new(MockReconciliationService)
	suite.mortgage = new(MockMortgageService)
	suite.budget = new(MockBudgetService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAPIV1Routes(v1, &portssvc.ServiceContainer{
		Ledger:         suite.ledger,
		Reconciliation: suite.reconciliation,
		FiscalYear:     suite.fiscalYear,
		Budget:         suite.budget,
		Mortgage:       suite.mortgage,
	})
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.ledger.AssertExpectations(suite.T())
	suite.fiscalYear.AssertExpectations(suite.T())
	suite.reconciliation.AssertExpectations(suite.T())
	suite.mortgage.AssertExpectations(suite.T())
	suite.budget.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			suite.Require().NoError(err)
			reader = bytes.NewReader(raw)
		}
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

// --- Ledger ---

func (suite *HandlerTestSuite) TestDeposit_Success() {
	entry := &domain.LedgerEntry{
		EntryID:   "e-1",
		AccountID: "acc-1",
		Kind:      domain.Deposit,
		Amount:    decimal.NewFromInt(100),
		Date:      domain.SessionDate{Day: 10, Year: 1100},
		Status:    domain.Posted,
	}
	suite.ledger.On("Deposit", mock.Anything, mock.MatchedBy(func(r dto.RecordEntryRequest) bool {
		return r.AccountID == "acc-1" && r.Amount.Equal(decimal.NewFromInt(100)) && r.SessionDay == 10 && r.SessionYear == 1100
	})).Return(entry, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/acc-1/deposits",
		`{"amount":"100","description":"bounty","sessionDay":10,"sessionYear":1100}`)

	suite.Equal(http.StatusCreated, w.Code)
	var got domain.LedgerEntry
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("e-1", got.EntryID)
	suite.Equal(domain.Posted, got.Status)
}

func (suite *HandlerTestSuite) TestDeposit_InvalidBody() {
	w := suite.do(http.MethodPost, "/api/v1/accounts/acc-1/deposits", `{"amount":"100","sessionDay":400,"sessionYear":1100}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.ledger.AssertNotCalled(suite.T(), "Deposit", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestWithdraw_ClosedYearIsConflict() {
	suite.ledger.On("Withdraw", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: account acc-1 year 1099", apperrors.ErrAlreadyClosed)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/acc-1/withdrawals", `{"amount":"5","sessionDay":3,"sessionYear":1099}`)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.errorBody(w), "fiscal year already closed")
}

func (suite *HandlerTestSuite) TestWithdraw_ValidationError() {
	suite.ledger.On("Withdraw", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: amount must be positive, got 0", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/acc-1/withdrawals", `{"amount":"0","sessionDay":3,"sessionYear":1100}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListEntries_Success() {
	token := "next"
	suite.ledger.On("ListEntries", mock.Anything, "acc-1", mock.MatchedBy(func(p dto.ListEntriesParams) bool {
		return p.Limit == 5 && p.NextToken == "abc"
	})).Return(&dto.ListEntriesResponse{Entries: []domain.LedgerEntry{{EntryID: "e-1"}}, NextToken: &token}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/acc-1/entries?limit=5&nextToken=abc", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListEntriesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next", *resp.NextToken)
}

func (suite *HandlerTestSuite) TestListEntries_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/api/v1/accounts/acc-1/entries?limit=500", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListEntries_BadTokenIsBadRequest() {
	suite.ledger.On("ListEntries", mock.Anything, "acc-1", mock.Anything).
		Return(nil, apperrors.NewAppError(400, "invalid nextToken", errors.New("base64"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/acc-1/entries?nextToken=not-a-token", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetBalance() {
	suite.ledger.On("GetBalance", mock.Anything, "acc-1").Return(decimal.RequireFromString("1234.50"), nil).Once()
	suite.ledger.On("GetBalance", mock.Anything, "missing").Return(decimal.Zero, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/acc-1/balance", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Credits.Equal(decimal.RequireFromString("1234.5")))

	w = suite.do(http.MethodGet, "/api/v1/accounts/missing/balance", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestSettlePending() {
	suite.ledger.On("SettlePending", mock.Anything, "acc-1").
		Return(&dto.SettleResponse{AccountID: "acc-1", Settled: 2, Delta: decimal.NewFromInt(40)}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts/acc-1/settle", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SettleResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.Settled)
}

func (suite *HandlerTestSuite) TestVoidEntry() {
	suite.ledger.On("VoidEntry", mock.Anything, "e-1").Return(&domain.LedgerEntry{EntryID: "e-1", Status: domain.Void}, nil).Once()
	suite.ledger.On("VoidEntry", mock.Anything, "e-2").Return(nil, fmt.Errorf("%w: entry e-2 is already void", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries/e-1/void", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/entries/e-2/void", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Fiscal years ---

func (suite *HandlerTestSuite) TestCloseFiscalYear_RequiresConfirmation() {
	w := suite.do(http.MethodPost, "/api/v1/assets/7/fiscal-years/1100/close", dto.CloseFiscalYearRequest{Confirm: false})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "confirm")
	suite.fiscalYear.AssertNotCalled(suite.T(), "CloseFiscalYear", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCloseFiscalYear_Success() {
	closure := &domain.FiscalYearClosure{AccountID: "acc-1", AssetID: 7, FiscalYear: 1100, ClosingBalance: decimal.NewFromInt(900), ArchivedEntryCount: 3}
	suite.fiscalYear.On("CloseFiscalYear", mock.Anything, int64(7), 1100).Return(closure, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/assets/7/fiscal-years/1100/close", dto.CloseFiscalYearRequest{Confirm: true})

	suite.Equal(http.StatusOK, w.Code)
	var got domain.FiscalYearClosure
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(3, got.ArchivedEntryCount)
	suite.True(got.ClosingBalance.Equal(decimal.NewFromInt(900)))
}

func (suite *HandlerTestSuite) TestCloseFiscalYear_AlreadyClosed() {
	suite.fiscalYear.On("CloseFiscalYear", mock.Anything, int64(7), 1100).
		Return(nil, fmt.Errorf("%w: asset 7 year 1100", apperrors.ErrAlreadyClosed)).Once()

	w := suite.do(http.MethodPost, "/api/v1/assets/7/fiscal-years/1100/close", dto.CloseFiscalYearRequest{Confirm: true})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCloseFiscalYear_InvalidPath() {
	w := suite.do(http.MethodPost, "/api/v1/assets/ship/fiscal-years/1100/close", dto.CloseFiscalYearRequest{Confirm: true})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/assets/7/fiscal-years/next/close", dto.CloseFiscalYearRequest{Confirm: true})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListClosuresAndArchive() {
	suite.fiscalYear.On("ListClosures", mock.Anything, int64(7)).
		Return([]domain.FiscalYearClosure{{FiscalYear: 1099}, {FiscalYear: 1100}}, nil).Once()
	suite.fiscalYear.On("ListArchivedEntries", mock.Anything, int64(7), 1100).
		Return([]domain.ArchivedEntry{{ArchiveID: "a-1", OriginalEntryID: "e-1"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/assets/7/fiscal-years", nil)
	suite.Equal(http.StatusOK, w.Code)
	var closures []domain.FiscalYearClosure
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &closures))
	suite.Len(closures, 2)

	w = suite.do(http.MethodGet, "/api/v1/assets/7/archive/1100", nil)
	suite.Equal(http.StatusOK, w.Code)
	var archive dto.ListArchivedEntriesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &archive))
	suite.Equal(1100, archive.Year)
	suite.Require().Len(archive.Entries, 1)
	suite.Equal("e-1", archive.Entries[0].OriginalEntryID)
}

// --- Reconciliation ---

func (suite *HandlerTestSuite) TestResync() {
	suite.reconciliation.On("ResyncAll", mock.Anything).Return(domain.ReconcileResult{Created: 4, Skipped: 2}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/reconciliation/resync", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got domain.ReconcileResult
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(domain.ReconcileResult{Created: 4, Skipped: 2}, got)
}

func (suite *HandlerTestSuite) TestResync_StorageErrorHidesCause() {
	suite.reconciliation.On("ResyncAll", mock.Anything).
		Return(domain.ReconcileResult{}, apperrors.NewAppError(500, "failed to query incomes", errors.New("connection reset"))).Once()

	w := suite.do(http.MethodPost, "/api/v1/reconciliation/resync", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Reconciliation failed", suite.errorBody(w))
}

// --- Mortgages ---

func (suite *HandlerTestSuite) TestMortgageBreakdown() {
	suite.mortgage.On("GetBreakdown", mock.Anything, int64(3)).
		Return(&domain.MortgageBreakdown{MortgageMonthly: decimal.RequireFromString("34722.22")}, nil).Once()
	suite.mortgage.On("GetBreakdown", mock.Anything, int64(4)).
		Return(nil, fmt.Errorf("%w: mortgage 4 has no interest rate plan", apperrors.ErrCalculationPrecondition)).Once()

	w := suite.do(http.MethodGet, "/api/v1/mortgages/3/breakdown", nil)
	suite.Equal(http.StatusOK, w.Code)
	var got domain.MortgageBreakdown
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.MortgageMonthly.Equal(decimal.RequireFromString("34722.22")))

	w = suite.do(http.MethodGet, "/api/v1/mortgages/4/breakdown", nil)
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/mortgages/x/breakdown", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestMortgageSchedule() {
	suite.mortgage.On("GetSchedule", mock.Anything, int64(3)).Return(&dto.MortgageScheduleResponse{
		MortgageID:   3,
		Start:        domain.SessionDate{Day: 100, Year: 1100},
		Installments: []domain.MortgageInstallment{{Number: 1}, {Number: 2}},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/mortgages/3/schedule", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.MortgageScheduleResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got.Installments, 2)
}

// --- Budgets ---

func (suite *HandlerTestSuite) TestCreateBudget() {
	req := dto.CreateBudgetRequest{AccountID: "acc-1", StartDay: 1, StartYear: 1100, EndDay: 365, EndYear: 1100}
	suite.budget.On("CreateBudget", mock.Anything, req).
		Return(&domain.AnnualBudget{BudgetID: "b-1", AccountID: "acc-1", Start: req.Start(), End: req.End()}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/budgets", req)

	suite.Equal(http.StatusCreated, w.Code)
	var got domain.AnnualBudget
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("b-1", got.BudgetID)
}

func (suite *HandlerTestSuite) TestCreateBudget_MissingFields() {
	w := suite.do(http.MethodPost, "/api/v1/budgets", `{"accountID":"acc-1","startDay":1}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestProjectBudget() {
	suite.budget.On("ProjectBudget", mock.Anything, "b-1").Return(&domain.BudgetProjection{
		AccountID:       "acc-1",
		ProjectedBudget: decimal.RequireFromString("590000.25"),
	}, nil).Once()
	suite.budget.On("ProjectBudget", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/budgets/b-1/projection", nil)
	suite.Equal(http.StatusOK, w.Code)
	var got domain.BudgetProjection
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.ProjectedBudget.Equal(decimal.RequireFromString("590000.25")))

	w = suite.do(http.MethodGet, "/api/v1/budgets/nope/projection", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
