package pgsql

import (
	"context"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/campaign_finance/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCampaignRepository reads the campaign calendar.
type PgxCampaignRepository struct {
	BaseRepository
}

func newPgxCampaignRepository(pool *pgxpool.Pool) *PgxCampaignRepository {
	return &PgxCampaignRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CampaignClockReader = (*PgxCampaignRepository)(nil)

// CurrentDateForAccountInTx resolves account -> asset -> campaign and returns the campaign's current date.
func (r *PgxCampaignRepository) CurrentDateForAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) (domain.SessionDate, error) {
	var d domain.SessionDate
	err := tx.QueryRow(ctx, `
		SELECT c.current_day, c.current_year
		FROM financial_accounts fa
		JOIN assets a ON a.asset_id = fa.asset_id
		JOIN campaigns c ON c.campaign_id = a.campaign_id
		WHERE fa.account_id = $1`, accountID).Scan(&d.Day, &d.Year)
	if err != nil {
		return domain.SessionDate{}, notFoundOr(err, "failed to resolve campaign date for account %s", accountID)
	}
	return d, nil
}
