package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens the single transaction a ledger write, reconciliation
// pass or fiscal-year close runs in.
type TransactionManager interface {
	// Begin starts the transaction the account lock is taken in
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit makes the entries, balance adjustments and archive rows visible together
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback discards every write of the unit of work
	Rollback(ctx context.Context, tx pgx.Tx) error
}
