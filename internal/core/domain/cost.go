package domain

import "github.com/shopspring/decimal"

// Cost is an expense incurred by an asset.
type Cost struct {
	CostID      int64           `json:"costID"`
	AccountID   string          `json:"accountID"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Payment     *SessionDate    `json:"payment,omitempty"`
}
