package dto

import "github.com/SscSPs/campaign_finance/internal/core/domain"

// CreateBudgetRequest defines the data needed to create an annual budget.
type CreateBudgetRequest struct {
	AccountID string `json:"accountID" binding:"required"`
	StartDay  int    `json:"startDay" binding:"required,min=1,max=365"`
	StartYear int    `json:"startYear" binding:"required"`
	EndDay    int    `json:"endDay" binding:"required,min=1,max=365"`
	EndYear   int    `json:"endYear" binding:"required"`
	Note      string `json:"note,omitempty" binding:"max=500"`
}

// Start returns the first day of the period.
func (r CreateBudgetRequest) Start() domain.SessionDate {
	return domain.SessionDate{Day: r.StartDay, Year: r.StartYear}
}

// End returns the last day of the period.
func (r CreateBudgetRequest) End() domain.SessionDate {
	return domain.SessionDate{Day: r.EndDay, Year: r.EndYear}
}
