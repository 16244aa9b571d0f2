package dto

import "github.com/SscSPs/campaign_finance/internal/core/domain"

// MortgageScheduleResponse is the generated installment plan of a mortgage.
type MortgageScheduleResponse struct {
	MortgageID   int64                        `json:"mortgageID"`
	Start        domain.SessionDate           `json:"start"`
	Installments []domain.MortgageInstallment `json:"installments"`
}
