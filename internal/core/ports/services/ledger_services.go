package services

import (
	"context"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/SscSPs/campaign_finance/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerWriterSvc defines operations that record money movements
type LedgerWriterSvc interface {
	// Deposit records a credit on the account.
	Deposit(ctx context.Context, req dto.RecordEntryRequest) (*domain.LedgerEntry, error)

	// Withdraw records a debit on the account.
	Withdraw(ctx context.Context, req dto.RecordEntryRequest) (*domain.LedgerEntry, error)

	// SettlePending posts every PENDING entry whose date the campaign clock has reached.
	SettlePending(ctx context.Context, accountID string) (*dto.SettleResponse, error)

	// VoidEntry marks a live entry VOID and reverses its balance effect.
	VoidEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error)
}

// LedgerReaderSvc defines read operations for ledger data
type LedgerReaderSvc interface {
	// ListEntries returns a page of live entries of an account.
	ListEntries(ctx context.Context, accountID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// GetBalance returns the materialized balance of an account.
	GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerWriterSvc
	LedgerReaderSvc
}
