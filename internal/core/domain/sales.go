package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates how far a transaction has been settled.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
)

// SalesTransaction is an invoice header. Invariant:
// TotalAmount == Subtotal - DiscountAmount + VatAmount (no excise on sales).
type SalesTransaction struct {
	TransactionID   string          `json:"transactionID"` // Primary key (UUID)
	InvoiceNumber   string          `json:"invoiceNumber"` // Caller supplied, unique
	CustomerID      *string         `json:"customerID,omitempty"`
	CustomerName    string          `json:"customerName"` // Name snapshot at sale time
	SaleDate        time.Time       `json:"saleDate"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	VatEnabled      bool            `json:"vatEnabled"`
	VatAmount       decimal.Decimal `json:"vatAmount"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	PaymentMethod   string          `json:"paymentMethod"` // e.g. "cash", "credit"
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	AuditFields

	// Line items, populated on detail reads. Not part of the header row.
	Items []SalesTransactionItem `json:"items,omitempty"`
}

// SalesTransactionItem is one product line within an invoice. Invariant:
// TotalPrice == Quantity*UnitPrice - DiscountAmount.
// ItemName is an immutable snapshot of the catalog item's name.
type SalesTransactionItem struct {
	LineID          string          `json:"lineID"`        // Primary key (UUID)
	TransactionID   string          `json:"transactionID"` // FK -> SalesTransaction
	ItemID          string          `json:"itemID"`        // FK -> Item
	ItemName        string          `json:"itemName"`
	Quantity        int64           `json:"quantity"` // > 0
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
}
