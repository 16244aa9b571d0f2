package domain

import "github.com/shopspring/decimal"

// ShareValue is the fixed value of one bought-out ownership share.
var ShareValue = decimal.NewFromInt(1_000_000)

// InterestRatePlan describes how a financed purchase is repaid.
type InterestRatePlan struct {
	DurationMonths     int             `json:"durationMonths"`
	PriceMultiplier    decimal.Decimal `json:"priceMultiplier"`
	AnnualInterestRate decimal.Decimal `json:"annualInterestRate"`
}

// InsurancePlan is an optional yearly insurance priced as a percentage of the ship price.
type InsurancePlan struct {
	AnnualCostPercent decimal.Decimal `json:"annualCostPercent"`
}

// Mortgage is a financed asset purchase.
type Mortgage struct {
	MortgageID         int64             `json:"mortgageID"`
	AssetID            int64             `json:"assetID"`
	ShipPriceAtSigning decimal.Decimal   `json:"shipPriceAtSigning"`
	SharesBoughtOut    int               `json:"sharesBoughtOut"`
	AdvancePayment     decimal.Decimal   `json:"advancePayment"`
	DiscountPercent    decimal.Decimal   `json:"discountPercent"`
	InterestRatePlan   *InterestRatePlan `json:"interestRatePlan,omitempty"`
	InsurancePlan      *InsurancePlan    `json:"insurancePlan,omitempty"`
	Signed             bool              `json:"signed"`
	Signing            *SessionDate      `json:"signing,omitempty"`
}

// MortgageBreakdown holds the derived amortization figures of a mortgage,
// each rounded half-down to two decimals.
type MortgageBreakdown struct {
	ShipCost         decimal.Decimal `json:"shipCost"`
	MortgageMonthly  decimal.Decimal `json:"mortgageMonthly"`
	MortgageAnnual   decimal.Decimal `json:"mortgageAnnual"`
	InsuranceMonthly decimal.Decimal `json:"insuranceMonthly"`
	InsuranceAnnual  decimal.Decimal `json:"insuranceAnnual"`
	TotalMonthly     decimal.Decimal `json:"totalMonthly"`
	TotalAnnual      decimal.Decimal `json:"totalAnnual"`
	TotalMortgage    decimal.Decimal `json:"totalMortgage"`
}

// MortgageInstallment is one scheduled repayment of a mortgage.
type MortgageInstallment struct {
	InstallmentID int64           `json:"installmentID"`
	MortgageID    int64           `json:"mortgageID"`
	Number        int             `json:"number"`
	Due           SessionDate     `json:"due"`
	Amount        decimal.Decimal `json:"amount"`
	Paid          bool            `json:"paid"`
}
