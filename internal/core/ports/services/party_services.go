package services

import (
	"context"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
)

// VendorReaderSvc defines read operations for vendors
type VendorReaderSvc interface {
	// GetVendorByID retrieves a specific vendor by its ID.
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves a paginated list of vendors.
	ListVendors(ctx context.Context, limit int, offset int) ([]domain.Vendor, error)
}

// VendorWriterSvc defines write operations for vendors
type VendorWriterSvc interface {
	// CreateVendor persists a new vendor.
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error)

	// UpdateVendor updates vendor details. Historical bills keep the name
	// snapshot taken at recording time.
	UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, requestingUserID string) (*domain.Vendor, error)

	// DeleteVendor removes a vendor with no recorded bills.
	DeleteVendor(ctx context.Context, vendorID string, requestingUserID string) error
}

// VendorSvcFacade combines all vendor-related service interfaces
type VendorSvcFacade interface {
	VendorReaderSvc
	VendorWriterSvc
}

// CustomerReaderSvc defines read operations for customers
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a specific customer by its ID.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers.
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customers
type CustomerWriterSvc interface {
	// CreateCustomer persists a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)

	// UpdateCustomer updates customer details.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, requestingUserID string) (*domain.Customer, error)

	// DeleteCustomer removes a customer with no recorded invoices.
	DeleteCustomer(ctx context.Context, customerID string, requestingUserID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
