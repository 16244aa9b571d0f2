package models

import "github.com/shopspring/decimal"

// FinancialAccount is a row of financial_accounts joined with its asset's campaign.
type FinancialAccount struct {
	AccountID  string          `db:"account_id"`
	AssetID    int64           `db:"asset_id"`
	CampaignID int64           `db:"campaign_id"` // From assets
	Credits    decimal.Decimal `db:"credits"`
	AuditFields
}
