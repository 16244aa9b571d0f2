package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind indicates whether a ledger entry adds or removes credits.
type EntryKind string

const (
	Deposit    EntryKind = "DEPOSIT"
	Withdrawal EntryKind = "WITHDRAWAL"
)

// EntryStatus is the lifecycle state of a ledger entry.
type EntryStatus string

const (
	// Pending entries are future-dated and excluded from the realized balance.
	Pending EntryStatus = "PENDING"
	// Posted entries count toward the realized balance.
	Posted EntryStatus = "POSTED"
	// Void marks a manual correction; the entry no longer affects the balance.
	Void EntryStatus = "VOID"
)

// SourceType identifies the kind of business record that caused an entry.
type SourceType string

const (
	SourceIncome              SourceType = "INCOME"
	SourceIncomeDeposit       SourceType = "INCOME_DEPOSIT"
	SourceCost                SourceType = "COST"
	SourceSalary              SourceType = "SALARY"
	SourceMortgageInstallment SourceType = "MORTGAGE_INSTALLMENT"
	SourceManual              SourceType = "MANUAL"
)

// IsValid reports whether s is a known source type.
func (s SourceType) IsValid() bool {
	switch s {
	case SourceIncome, SourceIncomeDeposit, SourceCost, SourceSalary, SourceMortgageInstallment, SourceManual:
		return true
	}
	return false
}

// SourceRef is the idempotency key of an entry: (sourceType, sourceID).
type SourceRef struct {
	Type SourceType `json:"type"`
	ID   int64      `json:"id"`
}

// LedgerEntry is a single money movement on a financial account.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`   // Primary Key (UUID)
	AccountID     string          `json:"accountID"` // FK -> financial_accounts.account_id
	Kind          EntryKind       `json:"kind"`      // DEPOSIT or WITHDRAWAL
	Amount        decimal.Decimal `json:"amount"`    // Positive magnitude
	Description   string          `json:"description"`
	Date          SessionDate     `json:"date"`
	Source        *SourceRef      `json:"source,omitempty"` // Nil for entries without a business record
	Status        EntryStatus     `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// SignedAmount returns +Amount for deposits and -Amount for withdrawals.
func (e LedgerEntry) SignedAmount() decimal.Decimal {
	if e.Kind == Withdrawal {
		return e.Amount.Neg()
	}
	return e.Amount
}

// BalanceEffect is the contribution of the entry to the realized balance.
func (e LedgerEntry) BalanceEffect() decimal.Decimal {
	if e.Status != Posted {
		return decimal.Zero
	}
	return e.SignedAmount()
}

// StatusFor decides the lifecycle status of an entry dated entryDate when the
// campaign clock reads current: on or before the current date is POSTED,
// anything later is PENDING.
func StatusFor(entryDate, current SessionDate) EntryStatus {
	if entryDate.Compare(current) <= 0 {
		return Posted
	}
	return Pending
}

// SumBalance adds up the balance effect of entries.
func SumBalance(entries []LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.BalanceEffect())
	}
	return total
}
