package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/campaign_finance/internal/apperrors"
	"github.com/SscSPs/campaign_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/campaign_finance/internal/core/ports/repositories"
	"github.com/SscSPs/campaign_finance/internal/models"
	"github.com/SscSPs/campaign_finance/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBudgetRepository stores annual budget periods.
type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) *PgxBudgetRepository {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

// SaveBudget inserts a new budget.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.AnnualBudget) error {
	m := mapping.ToModelBudget(budget)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO annual_budgets (budget_id, account_id, start_day, start_year, end_day, end_year, note, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.BudgetID, m.AccountID, m.StartDay, m.StartYear, m.EndDay, m.EndYear, m.Note, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: budget with ID %s already exists", apperrors.ErrDuplicate, m.BudgetID)
		}
		return apperrors.NewAppError(500, fmt.Sprintf("failed to save budget %s", m.BudgetID), err)
	}
	return nil
}

// FindBudgetByID retrieves a budget by its ID.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.AnnualBudget, error) {
	var m models.AnnualBudget
	err := r.Pool.QueryRow(ctx, `
		SELECT budget_id, account_id, start_day, start_year, end_day, end_year, note, created_at, last_updated_at
		FROM annual_budgets WHERE budget_id = $1`, budgetID).
		Scan(&m.BudgetID, &m.AccountID, &m.StartDay, &m.StartYear, &m.EndDay, &m.EndYear, &m.Note, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		return nil, notFoundOr(err, "failed to find budget %s", budgetID)
	}
	b := mapping.ToDomainBudget(m)
	return &b, nil
}
