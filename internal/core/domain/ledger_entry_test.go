package domain_test

import (
	"testing"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	clock := domain.SessionDate{Day: 50, Year: 1100}
	tests := []struct {
		name  string
		entry domain.SessionDate
		want  domain.EntryStatus
	}{
		{"same day is posted", domain.SessionDate{Day: 50, Year: 1100}, domain.Posted},
		{"next day is pending", domain.SessionDate{Day: 51, Year: 1100}, domain.Pending},
		{"previous day is posted", domain.SessionDate{Day: 49, Year: 1100}, domain.Posted},
		{"next year is pending", domain.SessionDate{Day: 1, Year: 1101}, domain.Pending},
		{"previous year is posted", domain.SessionDate{Day: 365, Year: 1099}, domain.Posted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.StatusFor(tt.entry, clock))
		})
	}
}

func TestLedgerEntry_SignedAmount(t *testing.T) {
	dep := domain.LedgerEntry{Kind: domain.Deposit, Amount: decimal.RequireFromString("120.50")}
	wd := domain.LedgerEntry{Kind: domain.Withdrawal, Amount: decimal.RequireFromString("20.25")}

	assert.True(t, dep.SignedAmount().Equal(decimal.RequireFromString("120.50")))
	assert.True(t, wd.SignedAmount().Equal(decimal.RequireFromString("-20.25")))
}

func TestSumBalance_OnlyPosted(t *testing.T) {
	entries := []domain.LedgerEntry{
		{Kind: domain.Deposit, Amount: decimal.NewFromInt(1000), Status: domain.Posted},
		{Kind: domain.Withdrawal, Amount: decimal.NewFromInt(250), Status: domain.Posted},
		{Kind: domain.Deposit, Amount: decimal.NewFromInt(9999), Status: domain.Pending},
		{Kind: domain.Withdrawal, Amount: decimal.NewFromInt(400), Status: domain.Void},
	}
	assert.True(t, domain.SumBalance(entries).Equal(decimal.NewFromInt(750)))
}

func TestSourceType_IsValid(t *testing.T) {
	assert.True(t, domain.SourceIncomeDeposit.IsValid())
	assert.True(t, domain.SourceManual.IsValid())
	assert.False(t, domain.SourceType("Income").IsValid())
}
