package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseTransaction maps one row of the purchase_transactions table.
type PurchaseTransaction struct {
	TransactionID             string          `json:"transactionID" db:"transaction_id"`
	BillNumber                string          `json:"billNumber" db:"bill_number"`
	VendorID                  *string         `json:"vendorID,omitempty" db:"vendor_id"`
	VendorName                string          `json:"vendorName" db:"vendor_name"`
	PurchaseDate              time.Time       `json:"purchaseDate" db:"purchase_date"`
	Subtotal                  decimal.Decimal `json:"subtotal" db:"subtotal"`
	DiscountPercent           decimal.Decimal `json:"discountPercent" db:"discount_percent"`
	DiscountAmount            decimal.Decimal `json:"discountAmount" db:"discount_amount"`
	ExciseAmount              decimal.Decimal `json:"exciseAmount" db:"excise_amount"`
	VatEnabled                bool            `json:"vatEnabled" db:"vat_enabled"`
	VatAmount                 decimal.Decimal `json:"vatAmount" db:"vat_amount"`
	TotalAmount               decimal.Decimal `json:"totalAmount" db:"total_amount"`
	PaymentTerms              string          `json:"paymentTerms" db:"payment_terms"`
	PaymentStatus             string          `json:"paymentStatus" db:"payment_status"`
	IncludeExciseInAccounting bool            `json:"includeExciseInAccounting" db:"include_excise_in_accounting"`
	AuditFields
}

// PurchaseTransactionItem maps one row of the purchase_transaction_items table.
type PurchaseTransactionItem struct {
	LineID          string          `json:"lineID" db:"line_id"`
	TransactionID   string          `json:"transactionID" db:"transaction_id"`
	ItemID          string          `json:"itemID" db:"item_id"`
	ItemName        string          `json:"itemName" db:"item_name"`
	Quantity        int64           `json:"quantity" db:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice" db:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discountPercent" db:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discountAmount" db:"discount_amount"`
	ExciseAmount    decimal.Decimal `json:"exciseAmount" db:"excise_amount"`
	TotalPrice      decimal.Decimal `json:"totalPrice" db:"total_price"`
}
