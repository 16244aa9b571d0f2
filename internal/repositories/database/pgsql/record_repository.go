package pgsql

import (
	"context"

	"github.com/SscSPs/campaign_finance/internal/apperrors"
	"github.com/SscSPs/campaign_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/campaign_finance/internal/core/ports/repositories"
	"github.com/SscSPs/campaign_finance/internal/models"
	"github.com/SscSPs/campaign_finance/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRecordRepository reads the business records ledger entries are derived from.
type PgxRecordRepository struct {
	BaseRepository
}

func newPgxRecordRepository(pool *pgxpool.Pool) *PgxRecordRepository {
	return &PgxRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RecordRepositoryFacade = (*PgxRecordRepository)(nil)

const incomeColumns = `income_id, account_id, description, amount, signing_day, signing_year,
	payment_day, payment_year, cancel_day, cancel_year, detail_kind, detail_deposit, detail_bonus`

const costColumns = `cost_id, account_id, description, category, amount, payment_day, payment_year`

func (r *PgxRecordRepository) queryIncomes(ctx context.Context, query string, args ...any) ([]domain.Income, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query incomes", err)
	}
	defer rows.Close()

	var ms []models.Income
	for rows.Next() {
		var m models.Income
		err := rows.Scan(&m.IncomeID, &m.AccountID, &m.Description, &m.Amount, &m.SigningDay, &m.SigningYear,
			&m.PaymentDay, &m.PaymentYear, &m.CancelDay, &m.CancelYear, &m.DetailKind, &m.DetailDeposit, &m.DetailBonus)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan income", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate incomes", err)
	}
	incomes, err := mapping.ToDomainIncomes(ms)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map incomes", err)
	}
	return incomes, nil
}

func (r *PgxRecordRepository) queryCosts(ctx context.Context, query string, args ...any) ([]domain.Cost, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query costs", err)
	}
	defer rows.Close()

	costs := []domain.Cost{}
	for rows.Next() {
		var m models.Cost
		if err := rows.Scan(&m.CostID, &m.AccountID, &m.Description, &m.Category, &m.Amount, &m.PaymentDay, &m.PaymentYear); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cost", err)
		}
		costs = append(costs, mapping.ToDomainCost(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate costs", err)
	}
	return costs, nil
}

// ListIncomes returns every income record.
func (r *PgxRecordRepository) ListIncomes(ctx context.Context) ([]domain.Income, error) {
	return r.queryIncomes(ctx, `SELECT `+incomeColumns+` FROM incomes ORDER BY income_id`)
}

// ListIncomesSignedWithin returns the account's incomes signed in [start, end].
func (r *PgxRecordRepository) ListIncomesSignedWithin(ctx context.Context, accountID string, start, end domain.SessionDate) ([]domain.Income, error) {
	return r.queryIncomes(ctx, `
		SELECT `+incomeColumns+` FROM incomes
		WHERE account_id = $1 AND signing_year IS NOT NULL AND signing_day IS NOT NULL
		  AND signing_year * 1000 + signing_day BETWEEN $2 AND $3
		ORDER BY income_id`, accountID, start.Ordinal(), end.Ordinal())
}

// ListCosts returns every cost record.
func (r *PgxRecordRepository) ListCosts(ctx context.Context) ([]domain.Cost, error) {
	return r.queryCosts(ctx, `SELECT `+costColumns+` FROM costs ORDER BY cost_id`)
}

// ListCostsPaidWithin returns the account's costs paid in [start, end].
func (r *PgxRecordRepository) ListCostsPaidWithin(ctx context.Context, accountID string, start, end domain.SessionDate) ([]domain.Cost, error) {
	return r.queryCosts(ctx, `
		SELECT `+costColumns+` FROM costs
		WHERE account_id = $1 AND payment_year IS NOT NULL AND payment_day IS NOT NULL
		  AND payment_year * 1000 + payment_day BETWEEN $2 AND $3
		ORDER BY cost_id`, accountID, start.Ordinal(), end.Ordinal())
}

const selectMortgageSQL = `
	SELECT m.mortgage_id, m.asset_id, m.ship_price_at_signing, m.shares_bought_out, m.advance_payment,
	       m.discount_percent, m.signed, m.signing_day, m.signing_year,
	       ip.duration_months, ip.price_multiplier, ip.annual_interest_rate, ins.annual_cost_percent
	FROM mortgages m
	LEFT JOIN interest_rate_plans ip ON ip.plan_id = m.interest_rate_plan_id
	LEFT JOIN insurance_plans ins ON ins.plan_id = m.insurance_plan_id`

func scanMortgage(row pgx.Row) (*domain.Mortgage, error) {
	var m models.Mortgage
	err := row.Scan(&m.MortgageID, &m.AssetID, &m.ShipPriceAtSigning, &m.SharesBoughtOut, &m.AdvancePayment,
		&m.DiscountPercent, &m.Signed, &m.SigningDay, &m.SigningYear,
		&m.DurationMonths, &m.PriceMultiplier, &m.AnnualInterestRate, &m.AnnualCostPercent)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainMortgage(m)
	return &d, nil
}

// FindMortgageByID retrieves a mortgage with its plans.
func (r *PgxRecordRepository) FindMortgageByID(ctx context.Context, mortgageID int64) (*domain.Mortgage, error) {
	mortgage, err := scanMortgage(r.Pool.QueryRow(ctx, selectMortgageSQL+` WHERE m.mortgage_id = $1`, mortgageID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find mortgage %d", mortgageID)
	}
	return mortgage, nil
}

// FindMortgageByAssetID retrieves the latest mortgage of an asset.
func (r *PgxRecordRepository) FindMortgageByAssetID(ctx context.Context, assetID int64) (*domain.Mortgage, error) {
	mortgage, err := scanMortgage(r.Pool.QueryRow(ctx, selectMortgageSQL+` WHERE m.asset_id = $1 ORDER BY m.mortgage_id DESC LIMIT 1`, assetID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find mortgage for asset %d", assetID)
	}
	return mortgage, nil
}

// ListInstallments returns a mortgage's installments by number.
func (r *PgxRecordRepository) ListInstallments(ctx context.Context, mortgageID int64) ([]domain.MortgageInstallment, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT installment_id, mortgage_id, number, due_day, due_year, amount, paid
		FROM mortgage_installments WHERE mortgage_id = $1 ORDER BY number`, mortgageID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list installments", err)
	}
	defer rows.Close()

	installments := []domain.MortgageInstallment{}
	for rows.Next() {
		var m models.MortgageInstallment
		if err := rows.Scan(&m.InstallmentID, &m.MortgageID, &m.Number, &m.DueDay, &m.DueYear, &m.Amount, &m.Paid); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan installment", err)
		}
		installments = append(installments, mapping.ToDomainInstallment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate installments", err)
	}
	return installments, nil
}
