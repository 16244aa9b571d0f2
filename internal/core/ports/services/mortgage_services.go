package services

import (
	"context"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
	"github.com/SscSPs/campaign_finance/internal/dto"
)

// MortgageSvc exposes the mortgage calculator over stored mortgages
type MortgageSvc interface {
	// GetBreakdown calculates the amortization figures of a mortgage.
	GetBreakdown(ctx context.Context, mortgageID int64) (*domain.MortgageBreakdown, error)

	// GetSchedule generates the installment plan starting at the signing date.
	GetSchedule(ctx context.Context, mortgageID int64) (*dto.MortgageScheduleResponse, error)
}
