package services

import (
	"context"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/SscSPs/campaign_finance/internal/dto"
)

// BudgetSvc projects budgets over a period
type BudgetSvc interface {
	// ProjectPeriod computes the figures of a budget period. It never writes.
	ProjectPeriod(ctx context.Context, budget domain.AnnualBudget) (*domain.BudgetProjection, error)

	// CreateBudget validates and stores a budget period.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.AnnualBudget, error)

	// ProjectBudget loads a stored budget and projects it.
	ProjectBudget(ctx context.Context, budgetID string) (*domain.BudgetProjection, error)
}
