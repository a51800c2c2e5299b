package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
	"github.com/PasalPOS/pasal_pos_app/internal/middleware"
)

// vendorService provides vendor operations.
type vendorService struct {
	vendorRepo portsrepo.VendorRepositoryFacade
}

// NewVendorService creates a new VendorService.
func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade) portssvc.VendorSvcFacade {
	return &vendorService{vendorRepo: vendorRepo}
}

var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

// CreateVendor persists a new vendor.
func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	vendor := domain.Vendor{
		VendorID:     uuid.NewString(),
		Name:         req.Name,
		VatNumber:    req.VatNumber,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		PaymentTerms: req.PaymentTerms,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		logger.Error("Failed to save vendor", slog.String("error", err.Error()), slog.String("vendor_id", vendor.VendorID))
		return nil, err
	}

	return &vendor, nil
}

// GetVendorByID retrieves a vendor by its ID.
func (s *vendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	return s.vendorRepo.FindVendorByID(ctx, vendorID)
}

// ListVendors retrieves a paginated list of vendors.
func (s *vendorService) ListVendors(ctx context.Context, limit int, offset int) ([]domain.Vendor, error) {
	return s.vendorRepo.ListVendors(ctx, limit, offset)
}

// UpdateVendor applies the provided field updates to a vendor. Completed
// bills keep their recorded vendor name snapshot.
func (s *vendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, requestingUserID string) (*domain.Vendor, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.VatNumber != nil {
		vendor.VatNumber = *req.VatNumber
	}
	if req.Address != nil {
		vendor.Address = *req.Address
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.PaymentTerms != nil {
		vendor.PaymentTerms = *req.PaymentTerms
	}

	vendor.LastUpdatedAt = time.Now().UTC()
	vendor.LastUpdatedBy = requestingUserID

	if err := s.vendorRepo.UpdateVendor(ctx, *vendor); err != nil {
		logger.Error("Failed to update vendor", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		return nil, err
	}

	return vendor, nil
}

// DeleteVendor removes a vendor. Vendors on recorded bills stay; the
// repository surfaces the conflict.
func (s *vendorService) DeleteVendor(ctx context.Context, vendorID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.vendorRepo.DeleteVendor(ctx, vendorID); err != nil {
		logger.Error("Failed to delete vendor", slog.String("error", err.Error()), slog.String("vendor_id", vendorID))
		return err
	}

	logger.Info("Vendor deleted", slog.String("vendor_id", vendorID), slog.String("deleted_by", requestingUserID))
	return nil
}
