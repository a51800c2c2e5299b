package repositories

import (
	"context"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
)

// VendorReader defines read operations for vendor data
type VendorReader interface {
	// FindVendorByID retrieves a specific vendor by its unique identifier.
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves a paginated list of vendors.
	ListVendors(ctx context.Context, limit int, offset int) ([]domain.Vendor, error)
}

// VendorWriter defines write operations for vendor data
type VendorWriter interface {
	// SaveVendor persists a new vendor.
	SaveVendor(ctx context.Context, vendor domain.Vendor) error

	// UpdateVendor updates an existing vendor's details.
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error

	// DeleteVendor removes a vendor. Vendors referenced by recorded bills
	// cannot be deleted; the attempt returns ErrConflict.
	DeleteVendor(ctx context.Context, vendorID string) error
}

// VendorRepositoryFacade combines all vendor-related repository interfaces
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by its unique identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers.
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates an existing customer's details.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes a customer. Customers referenced by recorded
	// invoices cannot be deleted; the attempt returns ErrConflict.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
