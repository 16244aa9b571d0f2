package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/campaign_finance/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a database transaction; services only hand it back to repositories.
type fakeTx struct {
	pgx.Tx
	name string
}

// --- Mock TransactionManager ---
type MockTxManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.FinancialAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialAccount), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByAssetID(ctx context.Context, assetID int64) (*domain.FinancialAccount, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialAccount), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.FinancialAccount, error) {
	args := m.Called(ctx, tx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialAccount), args.Error(1)
}

func (m *MockAccountRepository) AdjustCreditsInTx(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, accountID, delta, now)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.LedgerEntry), returnedNextToken, args.Error(2)
}

func (m *MockLedgerRepository) InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) SourceLinkedInTx(ctx context.Context, tx pgx.Tx, ref domain.SourceRef) (bool, error) {
	args := m.Called(ctx, tx, ref)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) FindEntryByIDForUpdate(ctx context.Context, tx pgx.Tx, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, tx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListDuePendingInTx(ctx context.Context, tx pgx.Tx, accountID string, current domain.SessionDate) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, tx, accountID, current)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) UpdateEntryStatusInTx(ctx context.Context, tx pgx.Tx, entryIDs []string, from, to domain.EntryStatus, now time.Time) (int64, error) {
	args := m.Called(ctx, tx, entryIDs, from, to, now)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock FiscalYearRepository ---
type MockFiscalYearRepository struct {
	mock.Mock
}

var _ portsrepo.FiscalYearRepositoryFacade = (*MockFiscalYearRepository)(nil)

func (m *MockFiscalYearRepository) ListClosures(ctx context.Context, accountID string) ([]domain.FiscalYearClosure, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalYearClosure), args.Error(1)
}

func (m *MockFiscalYearRepository) ListArchivedEntries(ctx context.Context, assetID int64, year int) ([]domain.ArchivedEntry, error) {
	args := m.Called(ctx, assetID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArchivedEntry), args.Error(1)
}

func (m *MockFiscalYearRepository) IsYearClosedInTx(ctx context.Context, tx pgx.Tx, accountID string, year int) (bool, error) {
	args := m.Called(ctx, tx, accountID, year)
	return args.Bool(0), args.Error(1)
}

func (m *MockFiscalYearRepository) ListLiveEntriesForYearInTx(ctx context.Context, tx pgx.Tx, accountID string, year int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, tx, accountID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockFiscalYearRepository) ArchiveEntriesInTx(ctx context.Context, tx pgx.Tx, archived []domain.ArchivedEntry) error {
	args := m.Called(ctx, tx, archived)
	return args.Error(0)
}

func (m *MockFiscalYearRepository) ClosingBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, assetID int64, fiscalYear int) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, accountID, assetID, fiscalYear)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFiscalYearRepository) InsertClosureInTx(ctx context.Context, tx pgx.Tx, closure domain.FiscalYearClosure) error {
	args := m.Called(ctx, tx, closure)
	return args.Error(0)
}

// --- Mock RecordRepository ---
type MockRecordRepository struct {
	mock.Mock
}

var _ portsrepo.RecordRepositoryFacade = (*MockRecordRepository)(nil)

func (m *MockRecordRepository) ListIncomes(ctx context.Context) ([]domain.Income, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockRecordRepository) ListIncomesSignedWithin(ctx context.Context, accountID string, start, end domain.SessionDate) ([]domain.Income, error) {
	args := m.Called(ctx, accountID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockRecordRepository) ListCosts(ctx context.Context) ([]domain.Cost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cost), args.Error(1)
}

func (m *MockRecordRepository) ListCostsPaidWithin(ctx context.Context, accountID string, start, end domain.SessionDate) ([]domain.Cost, error) {
	args := m.Called(ctx, accountID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cost), args.Error(1)
}

func (m *MockRecordRepository) FindMortgageByID(ctx context.Context, mortgageID int64) (*domain.Mortgage, error) {
	args := m.Called(ctx, mortgageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mortgage), args.Error(1)
}

func (m *MockRecordRepository) FindMortgageByAssetID(ctx context.Context, assetID int64) (*domain.Mortgage, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mortgage), args.Error(1)
}

func (m *MockRecordRepository) ListInstallments(ctx context.Context, mortgageID int64) ([]domain.MortgageInstallment, error) {
	args := m.Called(ctx, mortgageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MortgageInstallment), args.Error(1)
}

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

var _ portsrepo.BudgetRepositoryFacade = (*MockBudgetRepository)(nil)

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.AnnualBudget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.AnnualBudget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnnualBudget), args.Error(1)
}

// --- Mock CampaignClock ---
type MockCampaignClock struct {
	mock.Mock
}

var _ portsrepo.CampaignClockReader = (*MockCampaignClock)(nil)

func (m *MockCampaignClock) CurrentDateForAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) (domain.SessionDate, error) {
	args := m.Called(ctx, tx, accountID)
	return args.Get(0).(domain.SessionDate), args.Error(1)
}

// repoMocks bundles the mocks behind a RepositoryProvider.
type repoMocks struct {
	tx       *fakeTx
	txm      *MockTxManager
	accounts *MockAccountRepository
	ledger   *MockLedgerRepository
	fiscal   *MockFiscalYearRepository
	records  *MockRecordRepository
	budgets  *MockBudgetRepository
	campaign *MockCampaignClock
}

func newRepoMocks() *repoMocks {
	return &repoMocks{
		tx:       &fakeTx{name: "tx"},
		txm:      new(MockTxManager),
		accounts: new(MockAccountRepository),
		ledger:   new(MockLedgerRepository),
		fiscal:   new(MockFiscalYearRepository),
		records:  new(MockRecordRepository),
		budgets:  new(MockBudgetRepository),
		campaign: new(MockCampaignClock),
	}
}

func (r *repoMocks) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:    r.txm,
		AccountRepo:  r.accounts,
		LedgerRepo:   r.ledger,
		FiscalRepo:   r.fiscal,
		RecordRepo:   r.records,
		BudgetRepo:   r.budgets,
		CampaignRepo: r.campaign,
	}
}

// expectCommit sets up a transaction that is expected to commit.
func (r *repoMocks) expectCommit(ctx context.Context) {
	r.txm.On("Begin", ctx).Return(r.tx, nil).Once()
	r.txm.On("Commit", ctx, r.tx).Return(nil).Once()
}

// expectRollback sets up a transaction that is expected to roll back.
func (r *repoMocks) expectRollback(ctx context.Context) {
	r.txm.On("Begin", ctx).Return(r.tx, nil).Once()
	r.txm.On("Rollback", ctx, r.tx).Return(nil).Once()
}

func (r *repoMocks) assertAll(t mock.TestingT) {
	r.txm.AssertExpectations(t)
	r.accounts.AssertExpectations(t)
	r.ledger.AssertExpectations(t)
	r.fiscal.AssertExpectations(t)
	r.records.AssertExpectations(t)
	r.budgets.AssertExpectations(t)
	r.campaign.AssertExpectations(t)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func date(day, year int) *domain.SessionDate {
	return &domain.SessionDate{Day: day, Year: year}
}

// decEq matches a decimal argument by value rather than representation.
func decEq(s string) any {
	want := dec(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
