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
	"github.com/SscSPs/campaign_finance/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// budgetService implements the BudgetSvc interface
type budgetService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	recordRepo  portsrepo.RecordRepositoryFacade
	budgetRepo  portsrepo.BudgetRepositoryFacade
	clock       Clock
}

// NewBudgetService creates a new budget service.
func NewBudgetService(repos portsrepo.RepositoryProvider) portssvc.BudgetSvc {
	return &budgetService{
		BaseService: BaseService{TxManager: repos.TxManager},
		accountRepo: repos.AccountRepo,
		recordRepo:  repos.RecordRepo,
		budgetRepo:  repos.BudgetRepo,
		clock:       processClock,
	}
}

var _ portssvc.BudgetSvc = (*budgetService)(nil)

func (s *budgetService) ProjectPeriod(ctx context.Context, budget domain.AnnualBudget) (*domain.BudgetProjection, error) {
	if err := budget.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, budget.AccountID)
	if err != nil {
		return nil, err
	}

	var (
		incomes      []domain.Income
		costs        []domain.Cost
		mortgage     *domain.Mortgage
		installments []domain.MortgageInstallment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = s.recordRepo.ListIncomesSignedWithin(gctx, account.AccountID, budget.Start, budget.End)
		return err
	})
	g.Go(func() error {
		var err error
		costs, err = s.recordRepo.ListCostsPaidWithin(gctx, account.AccountID, budget.Start, budget.End)
		return err
	})
	g.Go(func() error {
		m, err := s.recordRepo.FindMortgageByAssetID(gctx, account.AssetID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		mortgage = m
		installments, err = s.recordRepo.ListInstallments(gctx, m.MortgageID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load budget inputs", slog.String("account_id", account.AccountID))
		return nil, err
	}

	totalIncome := decimal.Zero
	for _, inc := range incomes {
		if inc.Signing == nil || inc.IsCancelled() || !inc.Signing.Within(budget.Start, budget.End) {
			continue
		}
		totalIncome = totalIncome.Add(inc.Amount)
	}

	totalCosts := decimal.Zero
	for _, c := range costs {
		if c.Payment == nil || !c.Payment.Within(budget.Start, budget.End) {
			continue
		}
		totalCosts = totalCosts.Add(c.Amount)
	}

	remaining := accounting.SumUnpaid(installments)

	mortgageAnnual := decimal.Zero
	if mortgage != nil && mortgage.Signed {
		breakdown, err := accounting.CalculateMortgage(*mortgage)
		if err != nil {
			return nil, err
		}
		mortgageAnnual = breakdown.MortgageAnnual
	}

	net := totalIncome.Sub(totalCosts)
	return &domain.BudgetProjection{
		AccountID:             account.AccountID,
		Start:                 budget.Start,
		End:                   budget.End,
		TotalIncomeAmount:     accounting.RoundMoney(totalIncome),
		TotalCostsAmount:      accounting.RoundMoney(totalCosts),
		RemainingInstallments: accounting.RoundMoney(remaining),
		MortgageAnnual:        mortgageAnnual,
		ProjectedBudget:       accounting.RoundMoney(net.Sub(remaining)),
		ActualBudget:          accounting.RoundMoney(net.Sub(mortgageAnnual)),
	}, nil
}

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.AnnualBudget, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	budget := domain.AnnualBudget{
		BudgetID:  uuid.NewString(),
		AccountID: req.AccountID,
		Start:     req.Start(),
		End:       req.End(),
		Note:      req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := budget.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("account_id", req.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created", slog.String("budget_id", budget.BudgetID), slog.String("account_id", budget.AccountID))
	return &budget, nil
}

func (s *budgetService) ProjectBudget(ctx context.Context, budgetID string) (*domain.BudgetProjection, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	return s.ProjectPeriod(ctx, *budget)
}
