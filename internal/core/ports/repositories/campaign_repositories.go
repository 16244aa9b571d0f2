package repositories

import (
	"context"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CampaignClockReader resolves the campaign's current session date for an account
// through account -> asset -> campaign. It reads inside the caller's transaction
// so the date and the account lock share one snapshot.
type CampaignClockReader interface {
	CurrentDateForAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) (domain.SessionDate, error)
}
