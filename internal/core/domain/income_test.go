package domain_test

import (
	"testing"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestIncome_DepositAndBonus(t *testing.T) {
	tests := []struct {
		name        string
		detail      domain.IncomeDetail
		wantDeposit decimal.Decimal
		hasDeposit  bool
		wantTotal   decimal.Decimal
	}{
		{
			name:      "standard detail",
			detail:    domain.StandardDetail{},
			wantTotal: decimal.NewFromInt(10000),
		},
		{
			name:        "contract with deposit and bonus",
			detail:      domain.ContractDetail{Deposit: decimalPtr(decimal.NewFromInt(3000)), Bonus: decimalPtr(decimal.NewFromInt(500))},
			wantDeposit: decimal.NewFromInt(3000),
			hasDeposit:  true,
			wantTotal:   decimal.NewFromInt(10500),
		},
		{
			name:      "contract with zero deposit",
			detail:    domain.ContractDetail{Deposit: decimalPtr(decimal.Zero)},
			wantTotal: decimal.NewFromInt(10000),
		},
		{
			name:        "charter deposit, no bonus",
			detail:      domain.CharterDetail{Deposit: decimalPtr(decimal.NewFromInt(2000))},
			wantDeposit: decimal.NewFromInt(2000),
			hasDeposit:  true,
			wantTotal:   decimal.NewFromInt(10000),
		},
		{
			name:      "nil detail",
			detail:    nil,
			wantTotal: decimal.NewFromInt(10000),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inc := domain.Income{Amount: decimal.NewFromInt(10000), Detail: tt.detail}
			dep, ok := inc.Deposit()
			assert.Equal(t, tt.hasDeposit, ok)
			assert.True(t, tt.wantDeposit.Equal(dep), "deposit %s", dep)
			assert.True(t, tt.wantTotal.Equal(inc.Total()), "total %s", inc.Total())
		})
	}
}

func TestAnnualBudget_Validate(t *testing.T) {
	ok := domain.AnnualBudget{Start: domain.SessionDate{Day: 1, Year: 1100}, End: domain.SessionDate{Day: 365, Year: 1100}}
	assert.NoError(t, ok.Validate())

	same := domain.AnnualBudget{Start: domain.SessionDate{Day: 7, Year: 1100}, End: domain.SessionDate{Day: 7, Year: 1100}}
	assert.NoError(t, same.Validate())

	reversed := domain.AnnualBudget{Start: domain.SessionDate{Day: 2, Year: 1101}, End: domain.SessionDate{Day: 300, Year: 1100}}
	assert.Error(t, reversed.Validate())

	badDay := domain.AnnualBudget{Start: domain.SessionDate{Day: 0, Year: 1100}, End: domain.SessionDate{Day: 3, Year: 1100}}
	assert.Error(t, badDay.Validate())
}
