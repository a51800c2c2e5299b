package dto

import (
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVendorRequest defines the data needed to create a vendor.
type CreateVendorRequest struct {
	Name         string `json:"name" binding:"required"`
	VatNumber    string `json:"vatNumber"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"omitempty,email"`
	PaymentTerms string `json:"paymentTerms"`
}

// UpdateVendorRequest defines the data allowed for updating a vendor.
type UpdateVendorRequest struct {
	Name         *string `json:"name"`
	VatNumber    *string `json:"vatNumber"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	PaymentTerms *string `json:"paymentTerms"`
}

// VendorResponse defines the data returned for a vendor.
type VendorResponse struct {
	VendorID      string    `json:"vendorID"`
	Name          string    `json:"name"`
	VatNumber     string    `json:"vatNumber"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	PaymentTerms  string    `json:"paymentTerms"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToVendorResponse converts a domain.Vendor to VendorResponse DTO
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:      v.VendorID,
		Name:          v.Name,
		VatNumber:     v.VatNumber,
		Address:       v.Address,
		Phone:         v.Phone,
		Email:         v.Email,
		PaymentTerms:  v.PaymentTerms,
		CreatedAt:     v.CreatedAt,
		LastUpdatedAt: v.LastUpdatedAt,
	}
}

// ToVendorResponses converts a slice of domain.Vendor to []VendorResponse.
func ToVendorResponses(vendors []domain.Vendor) []VendorResponse {
	responses := make([]VendorResponse, len(vendors))
	for i := range vendors {
		responses[i] = ToVendorResponse(&vendors[i])
	}
	return responses
}

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	Name        string          `json:"name" binding:"required"`
	VatNumber   string          `json:"vatNumber"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email" binding:"omitempty,email"`
	CreditLimit decimal.Decimal `json:"creditLimit" binding:"dgte0"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
type UpdateCustomerRequest struct {
	Name        *string          `json:"name"`
	VatNumber   *string          `json:"vatNumber"`
	Address     *string          `json:"address"`
	Phone       *string          `json:"phone"`
	Email       *string          `json:"email" binding:"omitempty,email"`
	CreditLimit *decimal.Decimal `json:"creditLimit"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID    string          `json:"customerID"`
	Name          string          `json:"name"`
	VatNumber     string          `json:"vatNumber"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	CreditLimit   decimal.Decimal `json:"creditLimit"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.CustomerID,
		Name:          c.Name,
		VatNumber:     c.VatNumber,
		Address:       c.Address,
		Phone:         c.Phone,
		Email:         c.Email,
		CreditLimit:   c.CreditLimit,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToCustomerResponses converts a slice of domain.Customer to []CustomerResponse.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
