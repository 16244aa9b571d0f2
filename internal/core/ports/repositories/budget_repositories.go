package repositories

import (
	"context"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
)

// BudgetRepositoryFacade defines persistence operations for annual budgets
type BudgetRepositoryFacade interface {
	// SaveBudget persists a new budget.
	SaveBudget(ctx context.Context, budget domain.AnnualBudget) error

	// FindBudgetByID retrieves a budget by its ID.
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.AnnualBudget, error)
}
