package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/campaign_finance/internal/apperrors"
	"github.com/SscSPs/campaign_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/campaign_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// fiscalYearService implements the FiscalYearSvc interface
type fiscalYearService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	fiscalRepo  portsrepo.FiscalYearRepositoryFacade
	epochYear   int
	clock       Clock
}

// NewFiscalYearService creates a new fiscal year service.
func NewFiscalYearService(repos portsrepo.RepositoryProvider, epochYear int) portssvc.FiscalYearSvc {
	return &fiscalYearService{
		BaseService: BaseService{TxManager: repos.TxManager},
		accountRepo: repos.AccountRepo,
		fiscalRepo:  repos.FiscalRepo,
		epochYear:   epochYear,
		clock:       processClock,
	}
}

var _ portssvc.FiscalYearSvc = (*fiscalYearService)(nil)

func (s *fiscalYearService) CloseFiscalYear(ctx context.Context, assetID int64, year int) (*domain.FiscalYearClosure, error) {
	logger := s.GetLogger(ctx).With(slog.Int64("asset_id", assetID), slog.Int("fiscal_year", year))

	if year < s.epochYear {
		return nil, fmt.Errorf("%w: fiscal year %d is before campaign epoch %d", apperrors.ErrValidation, year, s.epochYear)
	}

	account, err := s.accountRepo.FindAccountByAssetID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	var closure *domain.FiscalYearClosure
	err = s.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, account.AccountID); err != nil {
			return err
		}

		closed, err := s.fiscalRepo.IsYearClosedInTx(ctx, tx, account.AccountID, year)
		if err != nil {
			return err
		}
		if closed {
			return fmt.Errorf("%w: asset %d year %d", apperrors.ErrAlreadyClosed, assetID, year)
		}

		live, err := s.fiscalRepo.ListLiveEntriesForYearInTx(ctx, tx, account.AccountID, year)
		if err != nil {
			return err
		}

		archivedAt := s.clock.Now()
		if len(live) > 0 {
			archived := make([]domain.ArchivedEntry, len(live))
			for i, e := range live {
				archived[i] = domain.NewArchivedEntry(uuid.NewString(), assetID, e, archivedAt)
			}
			if err := s.fiscalRepo.ArchiveEntriesInTx(ctx, tx, archived); err != nil {
				return err
			}
		}

		balance, err := s.fiscalRepo.ClosingBalanceInTx(ctx, tx, account.AccountID, assetID, year)
		if err != nil {
			return err
		}

		closure = &domain.FiscalYearClosure{
			AccountID:          account.AccountID,
			AssetID:            assetID,
			FiscalYear:         year,
			ClosingBalance:     balance,
			ArchivedEntryCount: len(live),
			ClosedAt:           archivedAt,
		}
		return s.fiscalRepo.InsertClosureInTx(ctx, tx, *closure)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrAlreadyClosed) {
			logger.Error("Failed to close fiscal year", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Fiscal year closed",
		slog.String("account_id", closure.AccountID),
		slog.Int("archived_entries", closure.ArchivedEntryCount),
		slog.String("closing_balance", closure.ClosingBalance.String()),
	)
	return closure, nil
}

func (s *fiscalYearService) ListClosures(ctx context.Context, assetID int64) ([]domain.FiscalYearClosure, error) {
	account, err := s.accountRepo.FindAccountByAssetID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	closures, err := s.fiscalRepo.ListClosures(ctx, account.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fiscal year closures", slog.Int64("asset_id", assetID))
		return nil, err
	}
	if closures == nil {
		closures = []domain.FiscalYearClosure{}
	}
	return closures, nil
}

func (s *fiscalYearService) ListArchivedEntries(ctx context.Context, assetID int64, year int) ([]domain.ArchivedEntry, error) {
	if _, err := s.accountRepo.FindAccountByAssetID(ctx, assetID); err != nil {
		return nil, err
	}
	entries, err := s.fiscalRepo.ListArchivedEntries(ctx, assetID, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list archived entries", slog.Int64("asset_id", assetID), slog.Int("fiscal_year", year))
		return nil, err
	}
	if entries == nil {
		entries = []domain.ArchivedEntry{}
	}
	return entries, nil
}
