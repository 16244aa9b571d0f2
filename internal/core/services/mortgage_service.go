package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/campaign_finance/internal/apperrors"
	"github.com/SscSPs/campaign_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/campaign_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/campaign_finance/internal/core/ports/services"
	"github.com/SscSPs/campaign_finance/internal/dto"
	"github.com/SscSPs/campaign_finance/internal/utils/accounting"
)

type mortgageService struct {
	BaseService
	recordRepo portsrepo.MortgageReader
}

// NewMortgageService creates a new mortgage service.
func NewMortgageService(recordRepo portsrepo.MortgageReader) portssvc.MortgageSvc {
	return &mortgageService{recordRepo: recordRepo}
}

var _ portssvc.MortgageSvc = (*mortgageService)(nil)

func (s *mortgageService) GetBreakdown(ctx context.Context, mortgageID int64) (*domain.MortgageBreakdown, error) {
	m, err := s.recordRepo.FindMortgageByID(ctx, mortgageID)
	if err != nil {
		return nil, err
	}
	breakdown, err := accounting.CalculateMortgage(*m)
	if err != nil {
		return nil, err
	}
	return &breakdown, nil
}

func (s *mortgageService) GetSchedule(ctx context.Context, mortgageID int64) (*dto.MortgageScheduleResponse, error) {
	m, err := s.recordRepo.FindMortgageByID(ctx, mortgageID)
	if err != nil {
		return nil, err
	}
	if m.Signing == nil {
		return nil, fmt.Errorf("%w: mortgage %d has no signing date", apperrors.ErrCalculationPrecondition, mortgageID)
	}
	schedule, err := accounting.InstallmentSchedule(*m, *m.Signing)
	if err != nil {
		return nil, err
	}
	return &dto.MortgageScheduleResponse{MortgageID: m.MortgageID, Start: *m.Signing, Installments: schedule}, nil
}
