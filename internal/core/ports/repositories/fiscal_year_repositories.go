package repositories

import (
	"context"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// FiscalYearReader defines read operations for closures and the archive
type FiscalYearReader interface {
	// ListClosures returns the closures of an account ordered by fiscal year.
	ListClosures(ctx context.Context, accountID string) ([]domain.FiscalYearClosure, error)

	// ListArchivedEntries returns the archived entries of an asset for a year,
	// ordered by (sessionDay, createdAt).
	ListArchivedEntries(ctx context.Context, assetID int64, year int) ([]domain.ArchivedEntry, error)
}

// FiscalYearTransactionSupport defines closure operations that run inside a caller-owned transaction
type FiscalYearTransactionSupport interface {
	// IsYearClosedInTx reports whether a closure exists for (accountID, year).
	IsYearClosedInTx(ctx context.Context, tx pgx.Tx, accountID string, year int) (bool, error)

	// ListLiveEntriesForYearInTx selects live entries of the year ordered by (sessionDay, createdAt).
	ListLiveEntriesForYearInTx(ctx context.Context, tx pgx.Tx, accountID string, year int) ([]domain.LedgerEntry, error)

	// ArchiveEntriesInTx copies entries into the archive and removes them from the live table.
	ArchiveEntriesInTx(ctx context.Context, tx pgx.Tx, archived []domain.ArchivedEntry) error

	// ClosingBalanceInTx sums POSTED signed amounts of archived entries with
	// year <= fiscalYear and live entries with year < fiscalYear.
	ClosingBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, assetID int64, fiscalYear int) (decimal.Decimal, error)

	// InsertClosureInTx stores the carry-forward snapshot. A duplicate returns apperrors.ErrAlreadyClosed.
	InsertClosureInTx(ctx context.Context, tx pgx.Tx, closure domain.FiscalYearClosure) error
}

// FiscalYearRepositoryFacade combines all fiscal-year repository interfaces
type FiscalYearRepositoryFacade interface {
	FiscalYearReader
	FiscalYearTransactionSupport
}
