package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/campaign_finance/internal/apperrors"
	"github.com/SscSPs/campaign_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/campaign_finance/internal/core/ports/repositories"
	"github.com/SscSPs/campaign_finance/internal/models"
	"github.com/SscSPs/campaign_finance/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const pgUniqueViolation = "23505"

// PgxFiscalYearRepository stores the ledger archive and fiscal year closures.
type PgxFiscalYearRepository struct {
	BaseRepository
}

func newPgxFiscalYearRepository(pool *pgxpool.Pool) *PgxFiscalYearRepository {
	return &PgxFiscalYearRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FiscalYearRepositoryFacade = (*PgxFiscalYearRepository)(nil)

const archiveColumns = `archive_id, account_owner_asset_id, original_entry_id, account_id, kind, amount, description,
	session_day, session_year, related_source_type, related_source_id, status, created_at, archived_at`

const closureColumns = `account_id, asset_id, fiscal_year, closing_balance, archived_entry_count, closed_at`

// IsYearClosedInTx reports whether a closure exists for the account and year.
func (r *PgxFiscalYearRepository) IsYearClosedInTx(ctx context.Context, tx pgx.Tx, accountID string, year int) (bool, error) {
	var closed bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM fiscal_year_closures WHERE account_id = $1 AND fiscal_year = $2)`,
		accountID, year).Scan(&closed)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check fiscal year closure", err)
	}
	return closed, nil
}

// ListLiveEntriesForYearInTx locks and returns the live entries of one year.
func (r *PgxFiscalYearRepository) ListLiveEntriesForYearInTx(ctx context.Context, tx pgx.Tx, accountID string, year int) ([]domain.LedgerEntry, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+ledgerColumns+` FROM ledger_entries
		WHERE account_id = $1 AND session_year = $2
		ORDER BY session_day, created_at
		FOR UPDATE`, accountID, year)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list entries for year", err)
	}
	results, err := collectLedgerEntries(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan entries for year", err)
	}
	return mapping.ToDomainLedgerEntries(results), nil
}

// ArchiveEntriesInTx batch-inserts archive rows, then deletes the originals.
// A delete count mismatch means an entry moved underneath us.
func (r *PgxFiscalYearRepository) ArchiveEntriesInTx(ctx context.Context, tx pgx.Tx, archived []domain.ArchivedEntry) error {
	if len(archived) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	insertQuery := `INSERT INTO ledger_entry_archive (` + archiveColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	ids := make([]string, len(archived))
	for i, a := range archived {
		m := mapping.ToModelArchivedEntry(a)
		ids[i] = m.OriginalEntryID
		batch.Queue(insertQuery,
			m.ArchiveID, m.AccountOwnerAssetID, m.OriginalEntryID, m.AccountID, m.Kind, m.Amount, m.Description,
			m.SessionDay, m.SessionYear, m.RelatedSourceType, m.RelatedSourceID, m.Status, m.CreatedAt, m.ArchivedAt)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert archive batch", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM ledger_entries WHERE entry_id = ANY($1)`, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete archived entries", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return fmt.Errorf("%w: archived %d entries but deleted %d", apperrors.ErrConflict, len(ids), tag.RowsAffected())
	}
	return nil
}

// ClosingBalanceInTx sums posted signed amounts of archived entries up to and
// including fiscalYear plus live entries before it.
func (r *PgxFiscalYearRepository) ClosingBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, assetID int64, fiscalYear int) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := tx.QueryRow(ctx, `
		SELECT COALESCE((
			SELECT SUM(CASE WHEN kind = 'WITHDRAWAL' THEN -amount ELSE amount END)
			FROM ledger_entry_archive
			WHERE account_owner_asset_id = $2 AND status = 'POSTED' AND session_year <= $3
		), 0) + COALESCE((
			SELECT SUM(CASE WHEN kind = 'WITHDRAWAL' THEN -amount ELSE amount END)
			FROM ledger_entries
			WHERE account_id = $1 AND status = 'POSTED' AND session_year < $3
		), 0)`, accountID, assetID, fiscalYear).Scan(&balance)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to compute closing balance", err)
	}
	return balance, nil
}

// InsertClosureInTx stores the snapshot. The (account_id, fiscal_year) key
// turns a concurrent second close into apperrors.ErrAlreadyClosed.
func (r *PgxFiscalYearRepository) InsertClosureInTx(ctx context.Context, tx pgx.Tx, closure domain.FiscalYearClosure) error {
	m := mapping.ToModelClosure(closure)
	_, err := tx.Exec(ctx, `INSERT INTO fiscal_year_closures (`+closureColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		m.AccountID, m.AssetID, m.FiscalYear, m.ClosingBalance, m.ArchivedEntryCount, m.ClosedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: account %s year %d", apperrors.ErrAlreadyClosed, m.AccountID, m.FiscalYear)
		}
		return apperrors.NewAppError(500, "failed to insert fiscal year closure", err)
	}
	return nil
}

// ListClosures returns the closures of an account ordered by year.
func (r *PgxFiscalYearRepository) ListClosures(ctx context.Context, accountID string) ([]domain.FiscalYearClosure, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+closureColumns+` FROM fiscal_year_closures WHERE account_id = $1 ORDER BY fiscal_year`, accountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list closures", err)
	}
	defer rows.Close()

	closures := []domain.FiscalYearClosure{}
	for rows.Next() {
		var m models.FiscalYearClosure
		if err := rows.Scan(&m.AccountID, &m.AssetID, &m.FiscalYear, &m.ClosingBalance, &m.ArchivedEntryCount, &m.ClosedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan closure", err)
		}
		closures = append(closures, mapping.ToDomainClosure(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate closures", err)
	}
	return closures, nil
}

// ListArchivedEntries returns an asset's archive for one year.
func (r *PgxFiscalYearRepository) ListArchivedEntries(ctx context.Context, assetID int64, year int) ([]domain.ArchivedEntry, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+archiveColumns+` FROM ledger_entry_archive
		WHERE account_owner_asset_id = $1 AND session_year = $2
		ORDER BY session_day, created_at`, assetID, year)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list archived entries", err)
	}
	defer rows.Close()

	entries := []domain.ArchivedEntry{}
	for rows.Next() {
		var m models.ArchivedEntry
		err := rows.Scan(&m.ArchiveID, &m.AccountOwnerAssetID, &m.OriginalEntryID, &m.AccountID, &m.Kind, &m.Amount, &m.Description,
			&m.SessionDay, &m.SessionYear, &m.RelatedSourceType, &m.RelatedSourceID, &m.Status, &m.CreatedAt, &m.ArchivedAt)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan archived entry", err)
		}
		entries = append(entries, mapping.ToDomainArchivedEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate archived entries", err)
	}
	return entries, nil
}
