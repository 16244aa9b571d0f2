package dto

import (
	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordEntryRequest is the input of a deposit or withdrawal.
type RecordEntryRequest struct {
	AccountID   string            `json:"accountID" binding:"required"`
	Amount      decimal.Decimal   `json:"amount"` // Must be > 0
	Description string            `json:"description"`
	SessionDay  int               `json:"sessionDay" binding:"required,min=1,max=365"`
	SessionYear int               `json:"sessionYear" binding:"required"`
	SourceType  domain.SourceType `json:"sourceType,omitempty" binding:"omitempty,oneof=INCOME INCOME_DEPOSIT COST SALARY MORTGAGE_INSTALLMENT MANUAL"`
	SourceID    *int64            `json:"sourceID,omitempty" binding:"required_with=SourceType"`
}

// Date returns the session date of the request.
func (r RecordEntryRequest) Date() domain.SessionDate {
	return domain.SessionDate{Day: r.SessionDay, Year: r.SessionYear}
}

// Source returns the idempotency key of the request, or nil when it has none.
func (r RecordEntryRequest) Source() *domain.SourceRef {
	if r.SourceType == "" || r.SourceID == nil {
		return nil
	}
	return &domain.SourceRef{Type: r.SourceType, ID: *r.SourceID}
}

// RecordEntryBody is the HTTP body of a deposit or withdrawal; the account comes from the path.
type RecordEntryBody struct {
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description" binding:"max=255"`
	SessionDay  int               `json:"sessionDay" binding:"required,min=1,max=365"`
	SessionYear int               `json:"sessionYear" binding:"required"`
	SourceType  domain.SourceType `json:"sourceType,omitempty"`
	SourceID    *int64            `json:"sourceID,omitempty"`
}

// ToRequest attaches the account ID.
func (b RecordEntryBody) ToRequest(accountID string) RecordEntryRequest {
	return RecordEntryRequest{
		AccountID:   accountID,
		Amount:      b.Amount,
		Description: b.Description,
		SessionDay:  b.SessionDay,
		SessionYear: b.SessionYear,
		SourceType:  b.SourceType,
		SourceID:    b.SourceID,
	}
}

// ListEntriesParams defines parameters for listing live ledger entries.
type ListEntriesParams struct {
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListEntriesResponse is a page of ledger entries.
type ListEntriesResponse struct {
	Entries   []domain.LedgerEntry `json:"entries"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// BalanceResponse reports the realized balance of an account.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	Credits   decimal.Decimal `json:"credits"`
}

// SettleResponse reports how many pending entries were posted.
type SettleResponse struct {
	AccountID string          `json:"accountID"`
	Settled   int             `json:"settled"`
	Delta     decimal.Decimal `json:"delta"`
}
