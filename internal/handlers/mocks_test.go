package handlers_test

import (
	"context"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Deposit(ctx context.Context, req dto.RecordEntryRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) Withdraw(ctx context.Context, req dto.RecordEntryRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) SettlePending(ctx context.Context, accountID string) (*dto.SettleResponse, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SettleResponse), args.Error(1)
}
func (m *MockLedgerService) VoidEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerService) ListEntries(ctx context.Context, accountID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}
func (m *MockLedgerService) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock FiscalYearService ---
type MockFiscalYearService struct {
	mock.Mock
}

func (m *MockFiscalYearService) CloseFiscalYear(ctx context.Context, assetID int64, year int) (*domain.FiscalYearClosure, error) {
	args := m.Called(ctx, assetID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYearClosure), args.Error(1)
}
func (m *MockFiscalYearService) ListClosures(ctx context.Context, assetID int64) ([]domain.FiscalYearClosure, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalYearClosure), args.Error(1)
}
func (m *MockFiscalYearService) ListArchivedEntries(ctx context.Context, assetID int64, year int) ([]domain.ArchivedEntry, error) {
	args := m.Called(ctx, assetID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArchivedEntry), args.Error(1)
}

var _ portssvc.FiscalYearSvc = (*MockFiscalYearService)(nil)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) Reconcile(ctx context.Context, incomes []domain.Income, costs []domain.Cost) (domain.ReconcileResult, error) {
	args := m.Called(ctx, incomes, costs)
	return args.Get(0).(domain.ReconcileResult), args.Error(1)
}
func (m *MockReconciliationService) ResyncAll(ctx context.Context) (domain.ReconcileResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ReconcileResult), args.Error(1)
}

var _ portssvc.ReconciliationSvc = (*MockReconciliationService)(nil)

// --- Mock MortgageService ---
type MockMortgageService struct {
	mock.Mock
}

func (m *MockMortgageService) GetBreakdown(ctx context.Context, mortgageID int64) (*domain.MortgageBreakdown, error) {
	args := m.Called(ctx, mortgageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MortgageBreakdown), args.Error(1)
}
func (m *MockMortgageService) GetSchedule(ctx context.Context, mortgageID int64) (*dto.MortgageScheduleResponse, error) {
	args := m.Called(ctx, mortgageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MortgageScheduleResponse), args.Error(1)
}

var _ portssvc.MortgageSvc = (*MockMortgageService)(nil)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) ProjectPeriod(ctx context.Context, budget domain.AnnualBudget) (*domain.BudgetProjection, error) {
	args := m.Called(ctx, budget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetProjection), args.Error(1)
}
func (m *MockBudgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.AnnualBudget, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnnualBudget), args.Error(1)
}
func (m *MockBudgetService) ProjectBudget(ctx context.Context, budgetID string) (*domain.BudgetProjection, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetProjection), args.Error(1)
}

var _ portssvc.BudgetSvc = (*MockBudgetService)(nil)
