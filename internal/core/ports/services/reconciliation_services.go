package services

import (
	"context"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
)

// ReconciliationSvc backfills ledger entries that business records imply but that were never created.
type ReconciliationSvc interface {
	// Reconcile creates the missing entries for the given records in one transaction.
	Reconcile(ctx context.Context, incomes []domain.Income, costs []domain.Cost) (domain.ReconcileResult, error)

	// ResyncAll reconciles every stored income and cost.
	ResyncAll(ctx context.Context) (domain.ReconcileResult, error)
}
