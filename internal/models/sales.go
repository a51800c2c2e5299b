package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesTransaction maps one row of the sales_transactions table.
type SalesTransaction struct {
	TransactionID   string          `json:"transactionID" db:"transaction_id"`
	InvoiceNumber   string          `json:"invoiceNumber" db:"invoice_number"`
	CustomerID      *string         `json:"customerID,omitempty" db:"customer_id"`
	CustomerName    string          `json:"customerName" db:"customer_name"`
	SaleDate        time.Time       `json:"saleDate" db:"sale_date"`
	Subtotal        decimal.Decimal `json:"subtotal" db:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discountPercent" db:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discountAmount" db:"discount_amount"`
	VatEnabled      bool            `json:"vatEnabled" db:"vat_enabled"`
	VatAmount       decimal.Decimal `json:"vatAmount" db:"vat_amount"`
	TotalAmount     decimal.Decimal `json:"totalAmount" db:"total_amount"`
	PaymentMethod   string          `json:"paymentMethod" db:"payment_method"`
	PaymentStatus   string          `json:"paymentStatus" db:"payment_status"`
	AuditFields
}

// SalesTransactionItem maps one row of the sales_transaction_items table.
type SalesTransactionItem struct {
	LineID          string          `json:"lineID" db:"line_id"`
	TransactionID   string          `json:"transactionID" db:"transaction_id"`
	ItemID          string          `json:"itemID" db:"item_id"`
	ItemName        string          `json:"itemName" db:"item_name"`
	Quantity        int64           `json:"quantity" db:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice" db:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discountPercent" db:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discountAmount" db:"discount_amount"`
	TotalPrice      decimal.Decimal `json:"totalPrice" db:"total_price"`
}
