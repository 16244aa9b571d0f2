package services

import (
	"context"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
)

// FiscalYearSvc closes fiscal years and exposes their archive
type FiscalYearSvc interface {
	// CloseFiscalYear archives every live entry of the year and stores the carry-forward balance.
	CloseFiscalYear(ctx context.Context, assetID int64, year int) (*domain.FiscalYearClosure, error)

	// ListClosures returns the closures recorded for an asset's account.
	ListClosures(ctx context.Context, assetID int64) ([]domain.FiscalYearClosure, error)

	// ListArchivedEntries returns the archive of an asset for a year.
	ListArchivedEntries(ctx context.Context, assetID int64, year int) ([]domain.ArchivedEntry, error)
}
