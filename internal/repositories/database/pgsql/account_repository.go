package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/campaign_finance/internal/apperrors"
	"github.com/SscSPs/campaign_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/campaign_finance/internal/core/ports/repositories"
	"github.com/SscSPs/campaign_finance/internal/models"
	"github.com/SscSPs/campaign_finance/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxAccountRepository stores financial accounts and their materialized balance.
type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

const selectAccountSQL = `
	SELECT fa.account_id, fa.asset_id, a.campaign_id, fa.credits, fa.created_at, fa.last_updated_at
	FROM financial_accounts fa
	JOIN assets a ON a.asset_id = fa.asset_id`

func scanAccount(row rowScanner) (*domain.FinancialAccount, error) {
	var m models.FinancialAccount
	if err := row.Scan(&m.AccountID, &m.AssetID, &m.CampaignID, &m.Credits, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
		return nil, err
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.FinancialAccount, error) {
	acc, err := scanAccount(r.Pool.QueryRow(ctx, selectAccountSQL+` WHERE fa.account_id = $1`, accountID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find account %s", accountID)
	}
	return acc, nil
}

// FindAccountByAssetID retrieves the account owned by an asset.
func (r *PgxAccountRepository) FindAccountByAssetID(ctx context.Context, assetID int64) (*domain.FinancialAccount, error) {
	acc, err := scanAccount(r.Pool.QueryRow(ctx, selectAccountSQL+` WHERE fa.asset_id = $1`, assetID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find account for asset %d", assetID)
	}
	return acc, nil
}

// FindAccountByIDForUpdate locks the account row until tx ends.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.FinancialAccount, error) {
	acc, err := scanAccount(tx.QueryRow(ctx, selectAccountSQL+` WHERE fa.account_id = $1 FOR UPDATE OF fa`, accountID))
	if err != nil {
		return nil, notFoundOr(err, "failed to lock account %s", accountID)
	}
	return acc, nil
}

// AdjustCreditsInTx adds delta to the account's credits.
func (r *PgxAccountRepository) AdjustCreditsInTx(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal, now time.Time) error {
	tag, err := tx.Exec(ctx,
		`UPDATE financial_accounts SET credits = credits + $2, last_updated_at = $3 WHERE account_id = $1`,
		accountID, delta, now)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to adjust credits of account %s", accountID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
