package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for financial accounts
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.FinancialAccount, error)

	// FindAccountByAssetID retrieves the account owned by an asset.
	FindAccountByAssetID(ctx context.Context, assetID int64) (*domain.FinancialAccount, error)
}

// AccountTransactionSupport defines operations that run inside a caller-owned transaction
type AccountTransactionSupport interface {
	// FindAccountByIDForUpdate selects the account and locks its row until the transaction ends.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.FinancialAccount, error)

	// AdjustCreditsInTx adds delta to the materialized balance of the account.
	AdjustCreditsInTx(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
