package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AnnualBudget is a bookkeeping period for an account.
type AnnualBudget struct {
	BudgetID  string      `json:"budgetID"`
	AccountID string      `json:"accountID"`
	Start     SessionDate `json:"start"`
	End       SessionDate `json:"end"`
	Note      string      `json:"note,omitempty"`
	AuditFields
}

// Validate checks both bounds and their ordering.
func (b AnnualBudget) Validate() error {
	if err := b.Start.Validate(); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if err := b.End.Validate(); err != nil {
		return fmt.Errorf("end: %w", err)
	}
	if b.Start.After(b.End) {
		return fmt.Errorf("start %s is after end %s", b.Start, b.End)
	}
	return nil
}

// BudgetProjection holds the computed figures of a budget period.
type BudgetProjection struct {
	AccountID         string          `json:"accountID"`
	Start             SessionDate     `json:"start"`
	End               SessionDate     `json:"end"`
	TotalIncomeAmount decimal.Decimal `json:"totalIncomeAmount"`
	TotalCostsAmount  decimal.Decimal `json:"totalCostsAmount"`
	// RemainingInstallments is the sum of unpaid installments of the asset's mortgage.
	RemainingInstallments decimal.Decimal `json:"remainingInstallments"`
	// MortgageAnnual is the calculator's annual payment figure.
	MortgageAnnual  decimal.Decimal `json:"mortgageAnnual"`
	ProjectedBudget decimal.Decimal `json:"projectedBudget"`
	ActualBudget    decimal.Decimal `json:"actualBudget"`
}

// ReconcileResult reports how many entries a reconciliation pass created and skipped.
type ReconcileResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
