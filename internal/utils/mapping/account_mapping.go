package mapping

import (
	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/SscSPs/campaign_finance/internal/models"
)

// ToDomainAccount converts a model FinancialAccount to a domain FinancialAccount
func ToDomainAccount(m models.FinancialAccount) domain.FinancialAccount {
	return domain.FinancialAccount{
		AccountID:   m.AccountID,
		AssetID:     m.AssetID,
		CampaignID:  m.CampaignID,
		Credits:     m.Credits,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
