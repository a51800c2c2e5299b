package mapping

import (
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/PasalPOS/pasal_pos_app/internal/models"
)

// ToModelVendor converts a domain Vendor to a model Vendor
func ToModelVendor(d domain.Vendor) models.Vendor {
	return models.Vendor{
		VendorID:     d.VendorID,
		Name:         d.Name,
		VatNumber:    d.VatNumber,
		Address:      d.Address,
		Phone:        d.Phone,
		Email:        d.Email,
		PaymentTerms: d.PaymentTerms,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVendor converts a model Vendor to a domain Vendor
func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:     m.VendorID,
		Name:         m.Name,
		VatNumber:    m.VatNumber,
		Address:      m.Address,
		Phone:        m.Phone,
		Email:        m.Email,
		PaymentTerms: m.PaymentTerms,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVendorSlice converts a slice of model Vendors to a slice of domain Vendors
func ToDomainVendorSlice(ms []models.Vendor) []domain.Vendor {
	ds := make([]domain.Vendor, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVendor(m)
	}
	return ds
}

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:  d.CustomerID,
		Name:        d.Name,
		VatNumber:   d.VatNumber,
		Address:     d.Address,
		Phone:       d.Phone,
		Email:       d.Email,
		CreditLimit: d.CreditLimit,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		VatNumber:   m.VatNumber,
		Address:     m.Address,
		Phone:       m.Phone,
		Email:       m.Email,
		CreditLimit: m.CreditLimit,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to a slice of domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
