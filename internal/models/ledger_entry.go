package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a row of ledger_entries.
type LedgerEntry struct {
	EntryID           string          `db:"entry_id"`
	AccountID         string          `db:"account_id"`
	Kind              string          `db:"kind"`
	Amount            decimal.Decimal `db:"amount"`
	Description       string          `db:"description"`
	SessionDay        int             `db:"session_day"`
	SessionYear       int             `db:"session_year"`
	RelatedSourceType *string         `db:"related_source_type"` // Nullable
	RelatedSourceID   *int64          `db:"related_source_id"`   // Nullable
	Status            string          `db:"status"`
	CreatedAt         time.Time       `db:"created_at"`
	LastUpdatedAt     time.Time       `db:"last_updated_at"`
}

// ArchivedEntry is a row of ledger_entry_archive.
type ArchivedEntry struct {
	ArchiveID           string    `db:"archive_id"`
	AccountOwnerAssetID int64     `db:"account_owner_asset_id"`
	OriginalEntryID     string    `db:"original_entry_id"`
	ArchivedAt          time.Time `db:"archived_at"`
	LedgerEntry
}

// FiscalYearClosure is a row of fiscal_year_closures.
type FiscalYearClosure struct {
	AccountID          string          `db:"account_id"`
	AssetID            int64           `db:"asset_id"`
	FiscalYear         int             `db:"fiscal_year"`
	ClosingBalance     decimal.Decimal `db:"closing_balance"`
	ArchivedEntryCount int             `db:"archived_entry_count"`
	ClosedAt           time.Time       `db:"closed_at"`
}
