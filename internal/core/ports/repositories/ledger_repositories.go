package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LedgerReader defines read operations for live ledger entries
type LedgerReader interface {
	// FindEntryByID retrieves a live entry by its ID.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntriesByAccount retrieves a page of live entries ordered by (sessionYear, sessionDay, createdAt).
	// It returns the entries, a token for the next page, and an error.
	ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerTransactionSupport defines ledger operations that run inside a caller-owned transaction
type LedgerTransactionSupport interface {
	// InsertEntryInTx inserts a live entry. A second entry for the same source
	// returns apperrors.ErrConflict without aborting the transaction.
	InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error

	// SourceLinkedInTx reports whether a live or archived entry exists for ref.
	SourceLinkedInTx(ctx context.Context, tx pgx.Tx, ref domain.SourceRef) (bool, error)

	// FindEntryByIDForUpdate selects a live entry and locks its row.
	FindEntryByIDForUpdate(ctx context.Context, tx pgx.Tx, entryID string) (*domain.LedgerEntry, error)

	// ListDuePendingInTx returns PENDING entries of the account dated on or before current.
	ListDuePendingInTx(ctx context.Context, tx pgx.Tx, accountID string, current domain.SessionDate) ([]domain.LedgerEntry, error)

	// UpdateEntryStatusInTx moves entries from one status to another. Entries
	// no longer in the expected status are left untouched; the number of
	// updated rows is returned.
	UpdateEntryStatusInTx(ctx context.Context, tx pgx.Tx, entryIDs []string, from, to domain.EntryStatus, now time.Time) (int64, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerTransactionSupport
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
