package pgsql

import (
	portsrepo "github.com/SscSPs/campaign_finance/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:    &BaseRepository{Pool: dbPool},
		AccountRepo:  newPgxAccountRepository(dbPool),
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		FiscalRepo:   newPgxFiscalYearRepository(dbPool),
		RecordRepo:   newPgxRecordRepository(dbPool),
		BudgetRepo:   newPgxBudgetRepository(dbPool),
		CampaignRepo: newPgxCampaignRepository(dbPool),
	}
}
