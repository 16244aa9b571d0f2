package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/campaign_finance/internal/apperrors"
	"github.com/SscSPs/campaign_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/campaign_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// reconciliationService implements the ReconciliationSvc interface
type reconciliationService struct {
	BaseService
	recorder   *entryRecorder
	recordRepo portsrepo.RecordRepositoryFacade
}

// NewReconciliationService creates a new reconciliation service.
func NewReconciliationService(repos portsrepo.RepositoryProvider, epochYear int) portssvc.ReconciliationSvc {
	return &reconciliationService{
		BaseService: BaseService{TxManager: repos.TxManager},
		recorder:    newEntryRecorder(repos, epochYear),
		recordRepo:  repos.RecordRepo,
	}
}

var _ portssvc.ReconciliationSvc = (*reconciliationService)(nil)

// plannedEntry is one ledger entry a business record implies.
type plannedEntry struct {
	kind domain.EntryKind
	req  dto.RecordEntryRequest
}

func newPlannedEntry(kind domain.EntryKind, accountID, description string, amount decimal.Decimal, date domain.SessionDate, source domain.SourceType, id int64) plannedEntry {
	sourceID := id
	return plannedEntry{
		kind: kind,
		req: dto.RecordEntryRequest{
			AccountID:   accountID,
			Amount:      amount,
			Description: description,
			SessionDay:  date.Day,
			SessionYear: date.Year,
			SourceType:  source,
			SourceID:    &sourceID,
		},
	}
}

// planCost returns the withdrawal a paid cost implies, or nothing for drafts.
func planCost(c domain.Cost) []plannedEntry {
	if c.Payment == nil || !c.Amount.IsPositive() {
		return nil
	}
	return []plannedEntry{
		newPlannedEntry(domain.Withdrawal, c.AccountID, c.Description, c.Amount, *c.Payment, domain.SourceCost, c.CostID),
	}
}

// planIncome returns the deposits an income implies. An income with a deposit
// component is split into the deposit at signing and the balance at payment.
func planIncome(inc domain.Income) []plannedEntry {
	total := inc.Total()

	deposit, hasDeposit := inc.Deposit()
	if !hasDeposit {
		if inc.Payment == nil || !inc.Amount.IsPositive() {
			return nil
		}
		return []plannedEntry{
			newPlannedEntry(domain.Deposit, inc.AccountID, inc.Description, total, *inc.Payment, domain.SourceIncome, inc.IncomeID),
		}
	}

	var planned []plannedEntry
	if inc.Signing != nil {
		planned = append(planned,
			newPlannedEntry(domain.Deposit, inc.AccountID, inc.Description+" (deposit)", deposit, *inc.Signing, domain.SourceIncomeDeposit, inc.IncomeID))
	}
	balance := decimal.Max(decimal.Zero, total.Sub(deposit))
	if inc.Payment != nil && balance.IsPositive() {
		planned = append(planned,
			newPlannedEntry(domain.Deposit, inc.AccountID, inc.Description+" (balance)", balance, *inc.Payment, domain.SourceIncome, inc.IncomeID))
	}
	return planned
}

func (s *reconciliationService) Reconcile(ctx context.Context, incomes []domain.Income, costs []domain.Cost) (domain.ReconcileResult, error) {
	logger := s.GetLogger(ctx)
	result := domain.ReconcileResult{}

	var planned []plannedEntry
	for _, inc := range incomes {
		parts := planIncome(inc)
		if len(parts) == 0 {
			result.Skipped++
			continue
		}
		planned = append(planned, parts...)
	}
	for _, c := range costs {
		parts := planCost(c)
		if len(parts) == 0 {
			result.Skipped++
			continue
		}
		planned = append(planned, parts...)
	}

	// Lock accounts in a stable order so concurrent passes cannot deadlock.
	sort.SliceStable(planned, func(i, j int) bool {
		return planned[i].req.AccountID < planned[j].req.AccountID
	})

	notReady := result.Skipped
	err := s.WithTransaction(ctx, func(tx pgx.Tx) error {
		result.Created, result.Skipped = 0, notReady
		for _, p := range planned {
			created, err := s.reconcileOne(ctx, tx, p)
			if err != nil {
				return err
			}
			if created {
				result.Created++
			} else {
				result.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Reconciliation pass failed")
		return domain.ReconcileResult{}, err
	}

	logger.Info("Reconciliation pass completed", slog.Int("created", result.Created), slog.Int("skipped", result.Skipped))
	return result, nil
}

// reconcileOne creates the entry unless one already exists for its source.
// It reports false for parts that are skipped.
func (s *reconciliationService) reconcileOne(ctx context.Context, tx pgx.Tx, p plannedEntry) (bool, error) {
	ref := *p.req.Source()

	linked, err := s.recorder.ledgerRepo.SourceLinkedInTx(ctx, tx, ref)
	if err != nil {
		return false, err
	}
	if linked {
		return false, nil
	}

	// A malformed record is not ready yet; it must not block the rest of the pass.
	if err := s.recorder.validate(p.req); err != nil {
		s.GetLogger(ctx).Warn("Skipping invalid business record",
			slog.String("source_type", string(ref.Type)),
			slog.Int64("source_id", ref.ID),
			slog.String("error", err.Error()))
		return false, nil
	}

	_, err = s.recorder.record(ctx, tx, p.kind, p.req)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrAlreadyClosed):
		s.LogDebug(ctx, "Skipping reconciliation part",
			slog.String("source_type", string(ref.Type)),
			slog.Int64("source_id", ref.ID),
			slog.String("reason", err.Error()))
		return false, nil
	default:
		return false, fmt.Errorf("%s %d: %w", ref.Type, ref.ID, err)
	}
}

func (s *reconciliationService) ResyncAll(ctx context.Context) (domain.ReconcileResult, error) {
	incomes, err := s.recordRepo.ListIncomes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load incomes for resync")
		return domain.ReconcileResult{}, err
	}
	costs, err := s.recordRepo.ListCosts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load costs for resync")
		return domain.ReconcileResult{}, err
	}
	s.LogInfo(ctx, "Resyncing business records", slog.Int("incomes", len(incomes)), slog.Int("costs", len(costs)))
	return s.Reconcile(ctx, incomes, costs)
}
