package mapping

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/SscSPs/campaign_finance/internal/models"
)

func nullDecimalPtr(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	v := n.Decimal
	return &v
}

// ToDomainIncome converts a model Income to a domain Income, resolving the detail union.
func ToDomainIncome(m models.Income) (domain.Income, error) {
	d := domain.Income{
		IncomeID:    m.IncomeID,
		AccountID:   m.AccountID,
		Description: m.Description,
		Amount:      m.Amount,
		Signing:     domain.OptionalDate(m.SigningDay, m.SigningYear),
		Payment:     domain.OptionalDate(m.PaymentDay, m.PaymentYear),
		Cancel:      domain.OptionalDate(m.CancelDay, m.CancelYear),
		Cancelled:   m.CancelDay != nil || m.CancelYear != nil,
	}
	switch domain.DetailKind(m.DetailKind) {
	case domain.DetailStandard, "":
		d.Detail = domain.StandardDetail{}
	case domain.DetailContract:
		d.Detail = domain.ContractDetail{Deposit: nullDecimalPtr(m.DetailDeposit), Bonus: nullDecimalPtr(m.DetailBonus)}
	case domain.DetailCharter:
		d.Detail = domain.CharterDetail{Deposit: nullDecimalPtr(m.DetailDeposit)}
	default:
		return domain.Income{}, fmt.Errorf("income %d: unknown detail kind %q", m.IncomeID, m.DetailKind)
	}
	return d, nil
}

// ToDomainIncomes converts a slice of model incomes
func ToDomainIncomes(ms []models.Income) ([]domain.Income, error) {
	out := make([]domain.Income, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainIncome(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ToDomainCost converts a model Cost to a domain Cost
func ToDomainCost(m models.Cost) domain.Cost {
	return domain.Cost{
		CostID:      m.CostID,
		AccountID:   m.AccountID,
		Description: m.Description,
		Category:    m.Category,
		Amount:      m.Amount,
		Payment:     domain.OptionalDate(m.PaymentDay, m.PaymentYear),
	}
}

// ToDomainMortgage converts a model Mortgage to a domain Mortgage.
// Plans are attached only when their joined columns are present.
func ToDomainMortgage(m models.Mortgage) domain.Mortgage {
	d := domain.Mortgage{
		MortgageID:         m.MortgageID,
		AssetID:            m.AssetID,
		ShipPriceAtSigning: m.ShipPriceAtSigning,
		SharesBoughtOut:    m.SharesBoughtOut,
		AdvancePayment:     m.AdvancePayment,
		DiscountPercent:    m.DiscountPercent,
		Signed:             m.Signed,
		Signing:            domain.OptionalDate(m.SigningDay, m.SigningYear),
	}
	if m.DurationMonths != nil && m.PriceMultiplier.Valid {
		d.InterestRatePlan = &domain.InterestRatePlan{
			DurationMonths:     *m.DurationMonths,
			PriceMultiplier:    m.PriceMultiplier.Decimal,
			AnnualInterestRate: m.AnnualInterestRate.Decimal,
		}
	}
	if m.AnnualCostPercent.Valid {
		d.InsurancePlan = &domain.InsurancePlan{AnnualCostPercent: m.AnnualCostPercent.Decimal}
	}
	return d
}

// ToDomainInstallment converts a model MortgageInstallment to a domain MortgageInstallment
func ToDomainInstallment(m models.MortgageInstallment) domain.MortgageInstallment {
	return domain.MortgageInstallment{
		InstallmentID: m.InstallmentID,
		MortgageID:    m.MortgageID,
		Number:        m.Number,
		Due:           domain.SessionDate{Day: m.DueDay, Year: m.DueYear},
		Amount:        m.Amount,
		Paid:          m.Paid,
	}
}

// ToModelBudget converts a domain AnnualBudget to a model AnnualBudget
func ToModelBudget(d domain.AnnualBudget) models.AnnualBudget {
	return models.AnnualBudget{
		BudgetID:    d.BudgetID,
		AccountID:   d.AccountID,
		StartDay:    d.Start.Day,
		StartYear:   d.Start.Year,
		EndDay:      d.End.Day,
		EndYear:     d.End.Year,
		Note:        d.Note,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a model AnnualBudget to a domain AnnualBudget
func ToDomainBudget(m models.AnnualBudget) domain.AnnualBudget {
	return domain.AnnualBudget{
		BudgetID:    m.BudgetID,
		AccountID:   m.AccountID,
		Start:       domain.SessionDate{Day: m.StartDay, Year: m.StartYear},
		End:         domain.SessionDate{Day: m.EndDay, Year: m.EndYear},
		Note:        m.Note,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
