package models

import "github.com/shopspring/decimal"

// Vendor maps one row of the vendors table.
type Vendor struct {
	VendorID     string `json:"vendorID" db:"vendor_id"`
	Name         string `json:"name" db:"name"`
	VatNumber    string `json:"vatNumber" db:"vat_number"`
	Address      string `json:"address" db:"address"`
	Phone        string `json:"phone" db:"phone"`
	Email        string `json:"email" db:"email"`
	PaymentTerms string `json:"paymentTerms" db:"payment_terms"`
	AuditFields
}

// Customer maps one row of the customers table.
type Customer struct {
	CustomerID  string          `json:"customerID" db:"customer_id"`
	Name        string          `json:"name" db:"name"`
	VatNumber   string          `json:"vatNumber" db:"vat_number"`
	Address     string          `json:"address" db:"address"`
	Phone       string          `json:"phone" db:"phone"`
	Email       string          `json:"email" db:"email"`
	CreditLimit decimal.Decimal `json:"creditLimit" db:"credit_limit"`
	AuditFields
}
