package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PasalPOS/pasal_pos_app/internal/apperrors"
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
	"github.com/PasalPOS/pasal_pos_app/internal/middleware"
	"github.com/PasalPOS/pasal_pos_app/internal/utils/taxation"
)

// customerService provides customer operations.
type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer persists a new customer.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		Name:        req.Name,
		VatNumber:   req.VatNumber,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		CreditLimit: taxation.RoundMoney(req.CreditLimit),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer", slog.String("error", err.Error()), slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	return &customer, nil
}

// GetCustomerByID retrieves a customer by its ID.
func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

// ListCustomers retrieves a paginated list of customers.
func (s *customerService) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx, limit, offset)
}

// UpdateCustomer applies the provided field updates to a customer.
func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, requestingUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.VatNumber != nil {
		customer.VatNumber = *req.VatNumber
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, fmt.Errorf("%w: credit limit must not be negative", apperrors.ErrValidation)
		}
		customer.CreditLimit = taxation.RoundMoney(*req.CreditLimit)
	}

	customer.LastUpdatedAt = time.Now().UTC()
	customer.LastUpdatedBy = requestingUserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		logger.Error("Failed to update customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer. Customers on recorded invoices stay;
// the repository surfaces the conflict.
func (s *customerService) DeleteCustomer(ctx context.Context, customerID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		logger.Error("Failed to delete customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return err
	}

	logger.Info("Customer deleted", slog.String("customer_id", customerID), slog.String("deleted_by", requestingUserID))
	return nil
}
