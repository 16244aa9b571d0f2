package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArchivedEntry is a frozen copy of a ledger entry moved out of the live set
// by a fiscal year closure. It is never mutated after creation.
type ArchivedEntry struct {
	ArchiveID           string      `json:"id"`
	AccountOwnerAssetID int64       `json:"accountOwnerAssetId"`
	OriginalEntryID     string      `json:"originalEntryId"`
	ArchivedAt          time.Time   `json:"archivedAt"`
	Entry               LedgerEntry `json:"entry"`
}

// NewArchivedEntry copies entry for archival.
func NewArchivedEntry(archiveID string, assetID int64, entry LedgerEntry, archivedAt time.Time) ArchivedEntry {
	return ArchivedEntry{
		ArchiveID:           archiveID,
		AccountOwnerAssetID: assetID,
		OriginalEntryID:     entry.EntryID,
		ArchivedAt:          archivedAt,
		Entry:               entry,
	}
}

// FiscalYearClosure is the carry-forward snapshot written when a year is closed.
// ClosingBalance is the opening balance of FiscalYear+1.
type FiscalYearClosure struct {
	AccountID          string          `json:"accountID"`
	AssetID            int64           `json:"assetID"`
	FiscalYear         int             `json:"fiscalYear"`
	ClosingBalance     decimal.Decimal `json:"closingBalance"`
	ArchivedEntryCount int             `json:"archivedEntryCount"`
	ClosedAt           time.Time       `json:"closedAt"`
}

// OpeningYear is the year whose opening balance this closure establishes.
func (c FiscalYearClosure) OpeningYear() int {
	return c.FiscalYear + 1
}
