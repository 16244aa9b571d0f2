package mapping

import (
	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/SscSPs/campaign_finance/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	m := models.LedgerEntry{
		EntryID:       d.EntryID,
		AccountID:     d.AccountID,
		Kind:          string(d.Kind),
		Amount:        d.Amount,
		Description:   d.Description,
		SessionDay:    d.Date.Day,
		SessionYear:   d.Date.Year,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
	if d.Source != nil {
		st := string(d.Source.Type)
		id := d.Source.ID
		m.RelatedSourceType = &st
		m.RelatedSourceID = &id
	}
	return m
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	d := domain.LedgerEntry{
		EntryID:       m.EntryID,
		AccountID:     m.AccountID,
		Kind:          domain.EntryKind(m.Kind),
		Amount:        m.Amount,
		Description:   m.Description,
		Date:          domain.SessionDate{Day: m.SessionDay, Year: m.SessionYear},
		Status:        domain.EntryStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
	if m.RelatedSourceType != nil && m.RelatedSourceID != nil {
		d.Source = &domain.SourceRef{Type: domain.SourceType(*m.RelatedSourceType), ID: *m.RelatedSourceID}
	}
	return d
}

// ToDomainLedgerEntries converts a slice of model entries
func ToDomainLedgerEntries(ms []models.LedgerEntry) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainLedgerEntry(m)
	}
	return out
}

// ToModelArchivedEntry converts a domain ArchivedEntry to a model ArchivedEntry
func ToModelArchivedEntry(d domain.ArchivedEntry) models.ArchivedEntry {
	return models.ArchivedEntry{
		ArchiveID:           d.ArchiveID,
		AccountOwnerAssetID: d.AccountOwnerAssetID,
		OriginalEntryID:     d.OriginalEntryID,
		ArchivedAt:          d.ArchivedAt,
		LedgerEntry:         ToModelLedgerEntry(d.Entry),
	}
}

// ToDomainArchivedEntry converts a model ArchivedEntry to a domain ArchivedEntry
func ToDomainArchivedEntry(m models.ArchivedEntry) domain.ArchivedEntry {
	entry := ToDomainLedgerEntry(m.LedgerEntry)
	entry.EntryID = m.OriginalEntryID
	return domain.ArchivedEntry{
		ArchiveID:           m.ArchiveID,
		AccountOwnerAssetID: m.AccountOwnerAssetID,
		OriginalEntryID:     m.OriginalEntryID,
		ArchivedAt:          m.ArchivedAt,
		Entry:               entry,
	}
}

// ToDomainClosure converts a model FiscalYearClosure to a domain FiscalYearClosure
func ToDomainClosure(m models.FiscalYearClosure) domain.FiscalYearClosure {
	return domain.FiscalYearClosure{
		AccountID:          m.AccountID,
		AssetID:            m.AssetID,
		FiscalYear:         m.FiscalYear,
		ClosingBalance:     m.ClosingBalance,
		ArchivedEntryCount: m.ArchivedEntryCount,
		ClosedAt:           m.ClosedAt,
	}
}

// ToModelClosure converts a domain FiscalYearClosure to a model FiscalYearClosure
func ToModelClosure(d domain.FiscalYearClosure) models.FiscalYearClosure {
	return models.FiscalYearClosure{
		AccountID:          d.AccountID,
		AssetID:            d.AssetID,
		FiscalYear:         d.FiscalYear,
		ClosingBalance:     d.ClosingBalance,
		ArchivedEntryCount: d.ArchivedEntryCount,
		ClosedAt:           d.ClosedAt,
	}
}
