package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/campaign_finance/internal/apperrors"
	"github.com/SscSPs/campaign_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/campaign_finance/internal/core/ports/repositories"
	"github.com/SscSPs/campaign_finance/internal/models"
	"github.com/SscSPs/campaign_finance/internal/utils/mapping"
	"github.com/SscSPs/campaign_finance/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository stores live ledger entries.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

const ledgerColumns = `entry_id, account_id, kind, amount, description, session_day, session_year,
	related_source_type, related_source_id, status, created_at, last_updated_at`

func scanLedgerEntry(row rowScanner) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(&m.EntryID, &m.AccountID, &m.Kind, &m.Amount, &m.Description, &m.SessionDay, &m.SessionYear,
		&m.RelatedSourceType, &m.RelatedSourceID, &m.Status, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

func collectLedgerEntries(rows pgx.Rows) ([]models.LedgerEntry, error) {
	defer rows.Close()
	var out []models.LedgerEntry
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// FindEntryByID retrieves a live entry by its ID.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	m, err := scanLedgerEntry(r.Pool.QueryRow(ctx, `SELECT `+ledgerColumns+` FROM ledger_entries WHERE entry_id = $1`, entryID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find ledger entry %s", entryID)
	}
	e := mapping.ToDomainLedgerEntry(m)
	return &e, nil
}

// ListEntriesByAccount pages through live entries ordered by (session_year, session_day, created_at).
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE account_id = $1`
	args := []any{accountID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (session_year, session_day, created_at) > ($2, $3, $4)`
		args = append(args, lastDate.Year, lastDate.Day, lastCreatedAt)
	}
	query += ` ORDER BY session_year, session_day, created_at LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list ledger entries", err)
	}
	results, err := collectLedgerEntries(rows)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entries", err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		last := results[limit-1]
		token := pagination.EncodeToken(domain.SessionDate{Day: last.SessionDay, Year: last.SessionYear}, last.CreatedAt)
		nextTokenVal = &token
		results = results[:limit]
	}
	return mapping.ToDomainLedgerEntries(results), nextTokenVal, nil
}

// InsertEntryInTx inserts an entry. A source key already used by a live or
// archived entry yields apperrors.ErrConflict; ON CONFLICT DO NOTHING keeps the
// surrounding transaction usable.
func (r *PgxLedgerRepository) InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	tag, err := tx.Exec(ctx, `
		INSERT INTO ledger_entries (`+ledgerColumns+`)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8::text, $9::bigint, $10, $11, $12
		WHERE $8::text IS NULL OR NOT EXISTS (
			SELECT 1 FROM ledger_entry_archive WHERE related_source_type = $8::text AND related_source_id = $9::bigint)
		ON CONFLICT DO NOTHING`,
		m.EntryID, m.AccountID, m.Kind, m.Amount, m.Description, m.SessionDay, m.SessionYear,
		m.RelatedSourceType, m.RelatedSourceID, m.Status, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to insert ledger entry %s", m.EntryID), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry for source %v already exists", apperrors.ErrConflict, entry.Source)
	}
	return nil
}

// SourceLinkedInTx checks both the live table and the archive.
func (r *PgxLedgerRepository) SourceLinkedInTx(ctx context.Context, tx pgx.Tx, ref domain.SourceRef) (bool, error) {
	var linked bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM ledger_entries WHERE related_source_type = $1 AND related_source_id = $2)
		    OR EXISTS (SELECT 1 FROM ledger_entry_archive WHERE related_source_type = $1 AND related_source_id = $2)`,
		string(ref.Type), ref.ID).Scan(&linked)
	if err != nil {
		return false, apperrors.NewAppError(500, fmt.Sprintf("failed to check source %s/%d", ref.Type, ref.ID), err)
	}
	return linked, nil
}

// FindEntryByIDForUpdate selects a live entry and locks its row.
func (r *PgxLedgerRepository) FindEntryByIDForUpdate(ctx context.Context, tx pgx.Tx, entryID string) (*domain.LedgerEntry, error) {
	m, err := scanLedgerEntry(tx.QueryRow(ctx, `SELECT `+ledgerColumns+` FROM ledger_entries WHERE entry_id = $1 FOR UPDATE`, entryID))
	if err != nil {
		return nil, notFoundOr(err, "failed to lock ledger entry %s", entryID)
	}
	e := mapping.ToDomainLedgerEntry(m)
	return &e, nil
}

// ListDuePendingInTx locks PENDING entries dated on or before current.
func (r *PgxLedgerRepository) ListDuePendingInTx(ctx context.Context, tx pgx.Tx, accountID string, current domain.SessionDate) ([]domain.LedgerEntry, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+ledgerColumns+` FROM ledger_entries
		WHERE account_id = $1 AND status = $2 AND session_year * 1000 + session_day <= $3
		ORDER BY session_year, session_day, created_at
		FOR UPDATE`,
		accountID, string(domain.Pending), current.Ordinal())
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list due pending entries", err)
	}
	results, err := collectLedgerEntries(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan due pending entries", err)
	}
	return mapping.ToDomainLedgerEntries(results), nil
}

// UpdateEntryStatusInTx moves entries still in status from to status to.
func (r *PgxLedgerRepository) UpdateEntryStatusInTx(ctx context.Context, tx pgx.Tx, entryIDs []string, from, to domain.EntryStatus, now time.Time) (int64, error) {
	if len(entryIDs) == 0 {
		return 0, nil
	}
	tag, err := tx.Exec(ctx,
		`UPDATE ledger_entries SET status = $3, last_updated_at = $4 WHERE entry_id = ANY($1) AND status = $2`,
		entryIDs, string(from), string(to), now)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to update entry status", err)
	}
	return tag.RowsAffected(), nil
}
