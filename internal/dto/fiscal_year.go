package dto

import "github.com/SscSPs/campaign_finance/internal/core/domain"

// CloseFiscalYearRequest guards the destructive closure endpoint.
type CloseFiscalYearRequest struct {
	Confirm bool `json:"confirm"`
}

// ListArchivedEntriesResponse is the archive of one asset and year.
type ListArchivedEntriesResponse struct {
	AssetID int64                  `json:"assetID"`
	Year    int                    `json:"year"`
	Entries []domain.ArchivedEntry `json:"entries"`
}
