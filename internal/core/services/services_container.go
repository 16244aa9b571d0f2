package services

import (
	portsrepo "github.com/SscSPs/campaign_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:         NewLedgerService(repos, cfg.CampaignEpochYear),
		Reconciliation: NewReconciliationService(repos, cfg.CampaignEpochYear),
		FiscalYear:     NewFiscalYearService(repos, cfg.CampaignEpochYear),
		Budget:         NewBudgetService(repos),
		Mortgage:       NewMortgageService(repos.RecordRepo),
	}
}
