package models

import "github.com/shopspring/decimal"

// Income is a row of incomes. Detail columns are only meaningful for the matching detail kind.
type Income struct {
	IncomeID      int64               `db:"income_id"`
	AccountID     string              `db:"account_id"`
	Description   string              `db:"description"`
	Amount        decimal.Decimal     `db:"amount"`
	SigningDay    *int                `db:"signing_day"`
	SigningYear   *int                `db:"signing_year"`
	PaymentDay    *int                `db:"payment_day"`
	PaymentYear   *int                `db:"payment_year"`
	CancelDay     *int                `db:"cancel_day"`
	CancelYear    *int                `db:"cancel_year"`
	DetailKind    string              `db:"detail_kind"`
	DetailDeposit decimal.NullDecimal `db:"detail_deposit"`
	DetailBonus   decimal.NullDecimal `db:"detail_bonus"`
}

// Cost is a row of costs.
type Cost struct {
	CostID      int64           `db:"cost_id"`
	AccountID   string          `db:"account_id"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	PaymentDay  *int            `db:"payment_day"`
	PaymentYear *int            `db:"payment_year"`
}

// Mortgage is a row of mortgages left-joined with its plans.
type Mortgage struct {
	MortgageID         int64               `db:"mortgage_id"`
	AssetID            int64               `db:"asset_id"`
	ShipPriceAtSigning decimal.Decimal     `db:"ship_price_at_signing"`
	SharesBoughtOut    int                 `db:"shares_bought_out"`
	AdvancePayment     decimal.Decimal     `db:"advance_payment"`
	DiscountPercent    decimal.Decimal     `db:"discount_percent"`
	Signed             bool                `db:"signed"`
	SigningDay         *int                `db:"signing_day"`
	SigningYear        *int                `db:"signing_year"`
	DurationMonths     *int                `db:"duration_months"`     // From interest_rate_plans
	PriceMultiplier    decimal.NullDecimal `db:"price_multiplier"`    // From interest_rate_plans
	AnnualInterestRate decimal.NullDecimal `db:"annual_interest_rate"` // From interest_rate_plans
	AnnualCostPercent  decimal.NullDecimal `db:"annual_cost_percent"`  // From insurance_plans
}

// MortgageInstallment is a row of mortgage_installments.
type MortgageInstallment struct {
	InstallmentID int64           `db:"installment_id"`
	MortgageID    int64           `db:"mortgage_id"`
	Number        int             `db:"number"`
	DueDay        int             `db:"due_day"`
	DueYear       int             `db:"due_year"`
	Amount        decimal.Decimal `db:"amount"`
	Paid          bool            `db:"paid"`
}

// AnnualBudget is a row of annual_budgets.
type AnnualBudget struct {
	BudgetID  string `db:"budget_id"`
	AccountID string `db:"account_id"`
	StartDay  int    `db:"start_day"`
	StartYear int    `db:"start_year"`
	EndDay    int    `db:"end_day"`
	EndYear   int    `db:"end_year"`
	Note      string `db:"note"`
	AuditFields
}
