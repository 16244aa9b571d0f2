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
	"github.com/SscSPs/campaign_finance/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	recorder *entryRecorder
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock replaces the process clock used for createdAt timestamps.
func WithLedgerClock(clock Clock) LedgerServiceOption {
	return func(s *ledgerService) {
		s.recorder.clock = clock
	}
}

// NewLedgerService creates a new ledger service. Entries dated before epochYear are rejected.
func NewLedgerService(repos portsrepo.RepositoryProvider, epochYear int, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		BaseService: BaseService{TxManager: repos.TxManager},
		recorder:    newEntryRecorder(repos, epochYear),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func newEntryRecorder(repos portsrepo.RepositoryProvider, epochYear int) *entryRecorder {
	return &entryRecorder{
		accountRepo:  repos.AccountRepo,
		ledgerRepo:   repos.LedgerRepo,
		fiscalRepo:   repos.FiscalRepo,
		campaignRepo: repos.CampaignRepo,
		epochYear:    epochYear,
		clock:        processClock,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) Deposit(ctx context.Context, req dto.RecordEntryRequest) (*domain.LedgerEntry, error) {
	return s.recordEntry(ctx, domain.Deposit, req)
}

func (s *ledgerService) Withdraw(ctx context.Context, req dto.RecordEntryRequest) (*domain.LedgerEntry, error) {
	return s.recordEntry(ctx, domain.Withdrawal, req)
}

func (s *ledgerService) recordEntry(ctx context.Context, kind domain.EntryKind, req dto.RecordEntryRequest) (*domain.LedgerEntry, error) {
	logger := s.GetLogger(ctx)

	if err := s.recorder.validate(req); err != nil {
		logger.Warn("Rejected ledger entry", slog.String("account_id", req.AccountID), slog.String("error", err.Error()))
		return nil, err
	}

	var entry *domain.LedgerEntry
	err := s.WithTransaction(ctx, func(tx pgx.Tx) error {
		var recErr error
		entry, recErr = s.recorder.record(ctx, tx, kind, req)
		return recErr
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrAlreadyClosed) {
			s.LogError(ctx, err, "Failed to record ledger entry", slog.String("account_id", req.AccountID), slog.String("kind", string(kind)))
		}
		return nil, err
	}

	logger.Info("Ledger entry recorded",
		slog.String("entry_id", entry.EntryID),
		slog.String("account_id", entry.AccountID),
		slog.String("kind", string(entry.Kind)),
		slog.String("status", string(entry.Status)),
		slog.String("amount", entry.Amount.String()),
		slog.String("date", entry.Date.String()),
	)
	return entry, nil
}

func (s *ledgerService) SettlePending(ctx context.Context, accountID string) (*dto.SettleResponse, error) {
	resp := &dto.SettleResponse{AccountID: accountID, Delta: decimal.Zero}

	err := s.WithTransaction(ctx, func(tx pgx.Tx) error {
		account, err := s.recorder.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
		if err != nil {
			return err
		}
		current, err := s.recorder.campaignRepo.CurrentDateForAccountInTx(ctx, tx, account.AccountID)
		if err != nil {
			return err
		}
		due, err := s.recorder.ledgerRepo.ListDuePendingInTx(ctx, tx, account.AccountID, current)
		if err != nil {
			return err
		}
		if len(due) == 0 {
			return nil
		}

		ids := make([]string, len(due))
		delta := decimal.Zero
		for i, e := range due {
			ids[i] = e.EntryID
			delta = delta.Add(e.SignedAmount())
		}

		now := s.recorder.clock.Now()
		updated, err := s.recorder.ledgerRepo.UpdateEntryStatusInTx(ctx, tx, ids, domain.Pending, domain.Posted, now)
		if err != nil {
			return err
		}
		if updated != int64(len(ids)) {
			return fmt.Errorf("%w: expected to post %d entries, posted %d", apperrors.ErrConflict, len(ids), updated)
		}
		if err := s.recorder.accountRepo.AdjustCreditsInTx(ctx, tx, account.AccountID, delta, now); err != nil {
			return err
		}

		resp.Settled = len(ids)
		resp.Delta = delta
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to settle pending entries", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Pending entries settled", slog.String("account_id", accountID), slog.Int("settled", resp.Settled))
	return resp, nil
}

func (s *ledgerService) VoidEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	// Resolve the account first so the account lock is taken before the entry lock,
	// the same order used when recording.
	existing, err := s.recorder.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	var voided *domain.LedgerEntry
	err = s.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.recorder.accountRepo.FindAccountByIDForUpdate(ctx, tx, existing.AccountID); err != nil {
			return err
		}
		entry, err := s.recorder.ledgerRepo.FindEntryByIDForUpdate(ctx, tx, entryID)
		if err != nil {
			return err
		}
		if entry.Status == domain.Void {
			return fmt.Errorf("%w: entry %s is already void", apperrors.ErrValidation, entryID)
		}

		now := s.recorder.clock.Now()
		updated, err := s.recorder.ledgerRepo.UpdateEntryStatusInTx(ctx, tx, []string{entryID}, entry.Status, domain.Void, now)
		if err != nil {
			return err
		}
		if updated != 1 {
			return fmt.Errorf("%w: entry %s changed status concurrently", apperrors.ErrConflict, entryID)
		}
		if entry.Status == domain.Posted {
			if err := s.recorder.accountRepo.AdjustCreditsInTx(ctx, tx, entry.AccountID, entry.SignedAmount().Neg(), now); err != nil {
				return err
			}
		}

		entry.Status = domain.Void
		entry.LastUpdatedAt = now
		voided = entry
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to void ledger entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Ledger entry voided", slog.String("entry_id", entryID), slog.String("account_id", voided.AccountID))
	return voided, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, accountID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	if _, err := s.recorder.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}
	entries, next, err := s.recorder.ledgerRepo.ListEntriesByAccount(ctx, accountID, params.Limit, token)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("account_id", accountID))
		return nil, err
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return &dto.ListEntriesResponse{Entries: entries, NextToken: next}, nil
}

func (s *ledgerService) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := s.recorder.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Credits, nil
}
