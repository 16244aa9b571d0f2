package domain

import (
	"github.com/shopspring/decimal"
)

// FinancialAccount is the scope boundary for all ledger activity of one asset.
type FinancialAccount struct {
	AccountID   string          `json:"accountID"`  // Primary Key (UUID)
	AssetID     int64           `json:"assetID"`    // One account per asset
	CampaignID  int64           `json:"campaignID"` // Resolved through the asset
	Credits     decimal.Decimal `json:"credits"`    // Materialized sum of POSTED entries
	AuditFields
}
