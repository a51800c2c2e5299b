package services

import (
	"context"
	"fmt"
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/apperrors"
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
)

// vatLedgerService exposes the read-only VAT ledger view.
type vatLedgerService struct {
	vatLedgerRepo portsrepo.VatLedgerRepositoryFacade
}

// NewVatLedgerService creates a new VatLedgerService.
func NewVatLedgerService(vatLedgerRepo portsrepo.VatLedgerRepositoryFacade) portssvc.VatLedgerSvc {
	return &vatLedgerService{vatLedgerRepo: vatLedgerRepo}
}

var _ portssvc.VatLedgerSvc = (*vatLedgerService)(nil)

func validateDateRange(fromDate *time.Time, toDate *time.Time) error {
	if fromDate != nil && toDate != nil && toDate.Before(*fromDate) {
		return fmt.Errorf("%w: toDate precedes fromDate", apperrors.ErrValidation)
	}
	return nil
}

// ListVatEntries retrieves ledger entries, optionally bounded by an
// inclusive entry-date range.
func (s *vatLedgerService) ListVatEntries(ctx context.Context, fromDate *time.Time, toDate *time.Time) ([]domain.VatLedgerEntry, error) {
	if err := validateDateRange(fromDate, toDate); err != nil {
		return nil, err
	}
	return s.vatLedgerRepo.ListVatEntries(ctx, fromDate, toDate)
}

// GetVatSummary computes collected, paid and payable VAT over the range.
func (s *vatLedgerService) GetVatSummary(ctx context.Context, fromDate *time.Time, toDate *time.Time) (*domain.VatSummary, error) {
	if err := validateDateRange(fromDate, toDate); err != nil {
		return nil, err
	}
	return s.vatLedgerRepo.GetVatSummary(ctx, fromDate, toDate)
}
