package domain

import "github.com/shopspring/decimal"

// Vendor is a purchase-side party. Transactions snapshot the vendor's display
// name at creation time, so renaming a vendor never alters historical bills.
type Vendor struct {
	VendorID     string `json:"vendorID"` // Primary key (UUID)
	Name         string `json:"name"`
	VatNumber    string `json:"vatNumber"` // PAN/VAT registration, optional
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	PaymentTerms string `json:"paymentTerms"`
	AuditFields
}

// Customer is a sales-side party, snapshotted by name into invoices the same
// way vendors are into bills.
type Customer struct {
	CustomerID  string          `json:"customerID"` // Primary key (UUID)
	Name        string          `json:"name"`
	VatNumber   string          `json:"vatNumber"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	AuditFields
}
