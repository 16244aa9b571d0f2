package mapping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/SscSPs/campaign_finance/internal/models"
)

func intPtr(v int) *int { return &v }

func TestLedgerEntryMapping_SourceRoundTrip(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	entry := domain.LedgerEntry{
		EntryID:     "e-1",
		AccountID:   "acc-1",
		Kind:        domain.Withdrawal,
		Amount:      decimal.RequireFromString("12.50"),
		Description: "fuel",
		Date:        domain.SessionDate{Day: 40, Year: 1100},
		Source:      &domain.SourceRef{Type: domain.SourceCost, ID: 7},
		Status:      domain.Posted,
		CreatedAt:   now,
	}

	m := ToModelLedgerEntry(entry)
	require.NotNil(t, m.RelatedSourceType)
	assert.Equal(t, "COST", *m.RelatedSourceType)
	assert.Equal(t, int64(7), *m.RelatedSourceID)

	back := ToDomainLedgerEntry(m)
	assert.Equal(t, entry.Source, back.Source)
	assert.True(t, entry.SignedAmount().Equal(back.SignedAmount()))
	assert.Equal(t, entry.Date, back.Date)
}

func TestLedgerEntryMapping_NoSource(t *testing.T) {
	m := ToModelLedgerEntry(domain.LedgerEntry{EntryID: "e-2", Kind: domain.Deposit})
	assert.Nil(t, m.RelatedSourceType)
	assert.Nil(t, m.RelatedSourceID)
	assert.Nil(t, ToDomainLedgerEntry(m).Source)
}

func TestArchivedEntryMapping_KeepsOriginalID(t *testing.T) {
	arch := domain.NewArchivedEntry("a-1", 3, domain.LedgerEntry{EntryID: "e-9", Kind: domain.Deposit}, time.Now().UTC())
	back := ToDomainArchivedEntry(ToModelArchivedEntry(arch))
	assert.Equal(t, "e-9", back.OriginalEntryID)
	assert.Equal(t, "e-9", back.Entry.EntryID)
	assert.Equal(t, int64(3), back.AccountOwnerAssetID)
}

func TestToDomainIncome_Details(t *testing.T) {
	dep := decimal.NewFromInt(3000)
	tests := []struct {
		name string
		m    models.Income
		want domain.IncomeDetail
	}{
		{"standard", models.Income{DetailKind: "STANDARD"}, domain.StandardDetail{}},
		{"empty kind", models.Income{}, domain.StandardDetail{}},
		{"contract", models.Income{DetailKind: "CONTRACT", DetailDeposit: decimal.NewNullDecimal(dep)}, domain.ContractDetail{Deposit: &dep}},
		{"charter", models.Income{DetailKind: "CHARTER"}, domain.CharterDetail{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDomainIncome(tt.m)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind(), got.Detail.Kind())
			gotDep, gotOK := got.Deposit()
			wantDep, wantOK := domain.Income{Detail: tt.want}.Deposit()
			assert.Equal(t, wantOK, gotOK)
			assert.True(t, wantDep.Equal(gotDep))
		})
	}

	_, err := ToDomainIncome(models.Income{IncomeID: 4, DetailKind: "LOAN"})
	assert.ErrorContains(t, err, "unknown detail kind")
}

func TestToDomainIncome_PartialDates(t *testing.T) {
	got, err := ToDomainIncome(models.Income{SigningDay: intPtr(10), SigningYear: intPtr(1100), PaymentDay: intPtr(40)})
	require.NoError(t, err)
	require.NotNil(t, got.Signing)
	assert.Equal(t, domain.SessionDate{Day: 10, Year: 1100}, *got.Signing)
	assert.Nil(t, got.Payment)
	assert.Nil(t, got.Cancel)
}

func TestToDomainIncome_PartialCancelDateCountsAsCancelled(t *testing.T) {
	tests := []struct {
		name string
		m    models.Income
		want bool
	}{
		{"no cancel columns", models.Income{}, false},
		{"cancel day only", models.Income{CancelDay: intPtr(30)}, true},
		{"cancel year only", models.Income{CancelYear: intPtr(1100)}, true},
		{"full cancel date", models.Income{CancelDay: intPtr(30), CancelYear: intPtr(1100)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDomainIncome(tt.m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.IsCancelled())
		})
	}
}

func TestToDomainMortgage_Plans(t *testing.T) {
	m := models.Mortgage{
		MortgageID:      1,
		DurationMonths:  intPtr(24),
		PriceMultiplier: decimal.NewNullDecimal(decimal.RequireFromString("1.25")),
	}
	d := ToDomainMortgage(m)
	require.NotNil(t, d.InterestRatePlan)
	assert.Equal(t, 24, d.InterestRatePlan.DurationMonths)
	assert.Nil(t, d.InsurancePlan)

	assert.Nil(t, ToDomainMortgage(models.Mortgage{}).InterestRatePlan)
}

func TestBudgetMapping_RoundTrip(t *testing.T) {
	b := domain.AnnualBudget{
		BudgetID:  "b-1",
		AccountID: "acc-1",
		Start:     domain.SessionDate{Day: 1, Year: 1100},
		End:       domain.SessionDate{Day: 365, Year: 1100},
		Note:      "fy1100",
	}
	assert.Equal(t, b, ToDomainBudget(ToModelBudget(b)))
}
