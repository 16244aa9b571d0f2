package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/campaign_finance/internal/apperrors"
	"github.com/SscSPs/campaign_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/campaign_finance/internal/core/ports/repositories"
	"github.com/SscSPs/campaign_finance/internal/dto"
	"github.com/SscSPs/campaign_finance/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// entryRecorder writes a single ledger entry and its balance effect inside a
// caller-owned transaction. The ledger and reconciliation services share it.
type entryRecorder struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	fiscalRepo   portsrepo.FiscalYearRepositoryFacade
	campaignRepo portsrepo.CampaignClockReader
	epochYear    int
	clock        Clock
}

// validate checks req against the binding rules and the domain preconditions.
func (r *entryRecorder) validate(req dto.RecordEntryRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, req.Amount)
	}
	if !req.Amount.Equal(req.Amount.Truncate(accounting.MoneyPlaces)) {
		return fmt.Errorf("%w: amount %s has more than %d decimal places", apperrors.ErrValidation, req.Amount, accounting.MoneyPlaces)
	}
	if err := req.Date().Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if req.SessionYear < r.epochYear {
		return fmt.Errorf("%w: session year %d is before campaign epoch %d", apperrors.ErrValidation, req.SessionYear, r.epochYear)
	}
	if req.SourceType != "" && !req.SourceType.IsValid() {
		return fmt.Errorf("%w: unknown source type %q", apperrors.ErrValidation, req.SourceType)
	}
	return nil
}

// record locks the account, refuses closed years, inserts the entry and
// applies its balance effect when it is posted.
func (r *entryRecorder) record(ctx context.Context, tx pgx.Tx, kind domain.EntryKind, req dto.RecordEntryRequest) (*domain.LedgerEntry, error) {
	date := req.Date()

	account, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, req.AccountID)
	if err != nil {
		return nil, err
	}

	closed, err := r.fiscalRepo.IsYearClosedInTx(ctx, tx, account.AccountID, date.Year)
	if err != nil {
		return nil, err
	}
	if closed {
		return nil, fmt.Errorf("%w: account %s year %d", apperrors.ErrAlreadyClosed, account.AccountID, date.Year)
	}

	current, err := r.campaignRepo.CurrentDateForAccountInTx(ctx, tx, account.AccountID)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		AccountID:     account.AccountID,
		Kind:          kind,
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          date,
		Source:        req.Source(),
		Status:        domain.StatusFor(date, current),
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	if err := r.ledgerRepo.InsertEntryInTx(ctx, tx, entry); err != nil {
		return nil, err
	}

	if entry.Status == domain.Posted {
		if err := r.accountRepo.AdjustCreditsInTx(ctx, tx, account.AccountID, entry.SignedAmount(), now); err != nil {
			return nil, err
		}
	}
	return &entry, nil
}
