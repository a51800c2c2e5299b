package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseTransaction is a vendor bill header. Invariant:
// TotalAmount == Subtotal - DiscountAmount + ExciseAmount + VatAmount.
// BillNumber is vendor supplied and not required to be unique.
type PurchaseTransaction struct {
	TransactionID             string          `json:"transactionID"` // Primary key (UUID)
	BillNumber                string          `json:"billNumber"`
	VendorID                  *string         `json:"vendorID,omitempty"`
	VendorName                string          `json:"vendorName"` // Name snapshot at purchase time
	PurchaseDate              time.Time       `json:"purchaseDate"`
	Subtotal                  decimal.Decimal `json:"subtotal"`
	DiscountPercent           decimal.Decimal `json:"discountPercent"`
	DiscountAmount            decimal.Decimal `json:"discountAmount"`
	ExciseAmount              decimal.Decimal `json:"exciseAmount"`
	VatEnabled                bool            `json:"vatEnabled"`
	VatAmount                 decimal.Decimal `json:"vatAmount"`
	TotalAmount               decimal.Decimal `json:"totalAmount"`
	PaymentTerms              string          `json:"paymentTerms"`
	PaymentStatus             PaymentStatus   `json:"paymentStatus"`
	IncludeExciseInAccounting bool            `json:"includeExciseInAccounting"`
	AuditFields

	Items []PurchaseTransactionItem `json:"items,omitempty"`
}

// PurchaseTransactionItem is one product line within a bill. Invariant:
// TotalPrice == Quantity*UnitPrice - DiscountAmount + ExciseAmount.
type PurchaseTransactionItem struct {
	LineID          string          `json:"lineID"`        // Primary key (UUID)
	TransactionID   string          `json:"transactionID"` // FK -> PurchaseTransaction
	ItemID          string          `json:"itemID"`        // FK -> Item
	ItemName        string          `json:"itemName"`
	Quantity        int64           `json:"quantity"` // > 0
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	ExciseAmount    decimal.Decimal `json:"exciseAmount"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
}
