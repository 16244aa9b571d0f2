package repositories

import (
	"context"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
)

// IncomeReader defines read operations for income business records
type IncomeReader interface {
	// ListIncomes returns every income record.
	ListIncomes(ctx context.Context) ([]domain.Income, error)

	// ListIncomesSignedWithin returns incomes of the account whose signing date lies in [start, end].
	ListIncomesSignedWithin(ctx context.Context, accountID string, start, end domain.SessionDate) ([]domain.Income, error)
}

// CostReader defines read operations for cost business records
type CostReader interface {
	// ListCosts returns every cost record.
	ListCosts(ctx context.Context) ([]domain.Cost, error)

	// ListCostsPaidWithin returns costs of the account whose payment date lies in [start, end].
	ListCostsPaidWithin(ctx context.Context, accountID string, start, end domain.SessionDate) ([]domain.Cost, error)
}

// MortgageReader defines read operations for mortgages and their installments
type MortgageReader interface {
	// FindMortgageByID retrieves a mortgage with its plans.
	FindMortgageByID(ctx context.Context, mortgageID int64) (*domain.Mortgage, error)

	// FindMortgageByAssetID retrieves the most recent mortgage of an asset.
	FindMortgageByAssetID(ctx context.Context, assetID int64) (*domain.Mortgage, error)

	// ListInstallments returns the installments of a mortgage ordered by number.
	ListInstallments(ctx context.Context, mortgageID int64) ([]domain.MortgageInstallment, error)
}

// RecordRepositoryFacade combines the business record readers
type RecordRepositoryFacade interface {
	IncomeReader
	CostReader
	MortgageReader
}
