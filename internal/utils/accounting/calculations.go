package accounting

import (
	"fmt"

	"github.com/SscSPs/campaign_finance/internal/apperrors"
	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// CalculateMortgage derives the amortization figures of a mortgage.
// Intermediate values stay unrounded; each output is rounded half-down once.
// It has no side effects and is safe for concurrent use.
func CalculateMortgage(m domain.Mortgage) (domain.MortgageBreakdown, error) {
	if err := checkMortgagePreconditions(m); err != nil {
		return domain.MortgageBreakdown{}, err
	}
	plan := m.InterestRatePlan
	price := m.ShipPriceAtSigning

	shipCost := shipCost(m)
	duration := decimal.NewFromInt(int64(plan.DurationMonths))

	mortgageMonthly := shipCost.Mul(plan.PriceMultiplier).Div(duration).Div(monthsInYear)
	mortgageAnnual := mortgageMonthly.Mul(monthsInYear)

	insuranceMonthly := decimal.Zero
	if m.InsurancePlan != nil {
		insuranceMonthly = price.Div(hundred).Mul(m.InsurancePlan.AnnualCostPercent).Div(monthsInYear)
	}
	insuranceAnnual := insuranceMonthly.Mul(monthsInYear)

	totalMonthly := mortgageMonthly.Add(insuranceMonthly)
	totalAnnual := totalMonthly.Mul(monthsInYear)

	return domain.MortgageBreakdown{
		ShipCost:         RoundMoney(shipCost),
		MortgageMonthly:  RoundMoney(mortgageMonthly),
		MortgageAnnual:   RoundMoney(mortgageAnnual),
		InsuranceMonthly: RoundMoney(insuranceMonthly),
		InsuranceAnnual:  RoundMoney(insuranceAnnual),
		TotalMonthly:     RoundMoney(totalMonthly),
		TotalAnnual:      RoundMoney(totalAnnual),
		TotalMortgage:    RoundMoney(shipCost.Mul(plan.PriceMultiplier)),
	}, nil
}

// InstallmentSchedule splits the total mortgage into DurationMonths installments,
// one per in-universe month after start. The last installment absorbs the
// rounding remainder so the schedule sums exactly to the total.
func InstallmentSchedule(m domain.Mortgage, start domain.SessionDate) ([]domain.MortgageInstallment, error) {
	if err := checkMortgagePreconditions(m); err != nil {
		return nil, err
	}
	months := m.InterestRatePlan.DurationMonths
	total := RoundMoney(shipCost(m).Mul(m.InterestRatePlan.PriceMultiplier))
	each := RoundMoney(total.Div(decimal.NewFromInt(int64(months))))

	schedule := make([]domain.MortgageInstallment, 0, months)
	allocated := decimal.Zero
	for i := 1; i <= months; i++ {
		amount := each
		if i == months {
			amount = total.Sub(allocated)
		}
		allocated = allocated.Add(amount)
		schedule = append(schedule, domain.MortgageInstallment{
			MortgageID: m.MortgageID,
			Number:     i,
			Due:        start.AddMonths(i),
			Amount:     amount,
		})
	}
	return schedule, nil
}

// SumUnpaid adds up the amounts of installments not yet paid.
func SumUnpaid(installments []domain.MortgageInstallment) decimal.Decimal {
	total := decimal.Zero
	for _, inst := range installments {
		if !inst.Paid {
			total = total.Add(inst.Amount)
		}
	}
	return total
}

func shipCost(m domain.Mortgage) decimal.Decimal {
	price := m.ShipPriceAtSigning
	buyout := domain.ShareValue.Mul(decimal.NewFromInt(int64(m.SharesBoughtOut)))
	discount := price.Mul(m.DiscountPercent).Div(hundred)
	return price.Sub(buyout).Sub(m.AdvancePayment).Sub(discount)
}

func checkMortgagePreconditions(m domain.Mortgage) error {
	if m.InterestRatePlan == nil {
		return fmt.Errorf("%w: mortgage %d has no interest rate plan", apperrors.ErrCalculationPrecondition, m.MortgageID)
	}
	if m.InterestRatePlan.DurationMonths <= 0 {
		return fmt.Errorf("%w: mortgage %d has non-positive duration %d", apperrors.ErrCalculationPrecondition, m.MortgageID, m.InterestRatePlan.DurationMonths)
	}
	if !m.ShipPriceAtSigning.IsPositive() {
		return fmt.Errorf("%w: mortgage %d has no ship price", apperrors.ErrCalculationPrecondition, m.MortgageID)
	}
	return nil
}
