package domain

import "github.com/shopspring/decimal"

// DetailKind names the variant carried by an Income.
type DetailKind string

const (
	DetailStandard DetailKind = "STANDARD"
	DetailContract DetailKind = "CONTRACT"
	DetailCharter  DetailKind = "CHARTER"
)

// IncomeDetail is the closed set of typed detail records an Income can carry.
// The unexported method seals the union to this package.
type IncomeDetail interface {
	Kind() DetailKind
	isIncomeDetail()
}

// StandardDetail carries no deposit or bonus.
type StandardDetail struct{}

// ContractDetail is a contract that may include an upfront deposit and a bonus.
type ContractDetail struct {
	Deposit *decimal.Decimal `json:"deposit,omitempty"`
	Bonus   *decimal.Decimal `json:"bonus,omitempty"`
}

// CharterDetail is a charter that may include an upfront deposit.
type CharterDetail struct {
	Deposit *decimal.Decimal `json:"deposit,omitempty"`
}

func (StandardDetail) Kind() DetailKind { return DetailStandard }
func (ContractDetail) Kind() DetailKind { return DetailContract }
func (CharterDetail) Kind() DetailKind  { return DetailCharter }

func (StandardDetail) isIncomeDetail() {}
func (ContractDetail) isIncomeDetail() {}
func (CharterDetail) isIncomeDetail()  {}

// Income is a signed revenue record for an asset.
type Income struct {
	IncomeID    int64           `json:"incomeID"`
	AccountID   string          `json:"accountID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Signing     *SessionDate    `json:"signing,omitempty"`
	Payment     *SessionDate    `json:"payment,omitempty"`
	Cancel      *SessionDate    `json:"cancel,omitempty"`
	// Cancelled is set when any part of the cancellation date is stored,
	// even if the date itself is incomplete.
	Cancelled   bool            `json:"cancelled"`
	Detail      IncomeDetail    `json:"detail"`
}

// Bonus returns the contract bonus, or zero for every other detail kind.
func (i Income) Bonus() decimal.Decimal {
	if c, ok := i.Detail.(ContractDetail); ok && c.Bonus != nil {
		return *c.Bonus
	}
	return decimal.Zero
}

// Deposit returns the deposit component and whether one is present.
// Only strictly positive deposits count.
func (i Income) Deposit() (decimal.Decimal, bool) {
	var dep *decimal.Decimal
	switch d := i.Detail.(type) {
	case ContractDetail:
		dep = d.Deposit
	case CharterDetail:
		dep = d.Deposit
	}
	if dep == nil || !dep.IsPositive() {
		return decimal.Zero, false
	}
	return *dep, true
}

// Total is amount plus bonus.
func (i Income) Total() decimal.Decimal {
	return i.Amount.Add(i.Bonus())
}

// IsCancelled reports whether a cancellation, complete or partial, has been recorded.
func (i Income) IsCancelled() bool {
	return i.Cancelled || i.Cancel != nil
}
