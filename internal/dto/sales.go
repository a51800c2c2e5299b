package dto

import (
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSalesItemRequest is one product line of an invoice submission. The
// caller computes TotalPrice; the ledger engine recomputes and verifies it.
type CreateSalesItemRequest struct {
	ItemID          string          `json:"itemID" binding:"required"`
	Quantity        int64           `json:"quantity" binding:"required,gte=1"`
	UnitPrice       decimal.Decimal `json:"unitPrice" binding:"dgte0"`
	DiscountPercent decimal.Decimal `json:"discountPercent" binding:"dgte0"`
	DiscountAmount  decimal.Decimal `json:"discountAmount" binding:"dgte0"`
	TotalPrice      decimal.Decimal `json:"totalPrice" binding:"dgte0"`
}

// CreateSalesTransactionRequest is the invoice header of a submission.
type CreateSalesTransactionRequest struct {
	InvoiceNumber   string          `json:"invoiceNumber" binding:"required"`
	CustomerID      *string         `json:"customerID"`
	CustomerName    string          `json:"customerName"`
	SaleDate        time.Time       `json:"saleDate"`
	Subtotal        decimal.Decimal `json:"subtotal" binding:"dgte0"`
	DiscountPercent decimal.Decimal `json:"discountPercent" binding:"dgte0"`
	DiscountAmount  decimal.Decimal `json:"discountAmount" binding:"dgte0"`
	VatEnabled      bool            `json:"vatEnabled"`
	VatAmount       decimal.Decimal `json:"vatAmount" binding:"dgte0"`
	TotalAmount     decimal.Decimal `json:"totalAmount" binding:"dgte0"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   string          `json:"paymentStatus" binding:"omitempty,oneof=paid pending partial"`
}

// CreateSalesRequest is the full POST /sales payload: one header plus a
// non-empty ordered list of line items.
type CreateSalesRequest struct {
	Transaction CreateSalesTransactionRequest `json:"transaction" binding:"required"`
	Items       []CreateSalesItemRequest      `json:"items" binding:"required,min=1,dive"`
}

// SalesItemResponse defines the data returned for an invoice line.
type SalesItemResponse struct {
	LineID          string          `json:"lineID"`
	ItemID          string          `json:"itemID"`
	ItemName        string          `json:"itemName"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
}

// SalesTransactionResponse defines the data returned for an invoice.
type SalesTransactionResponse struct {
	TransactionID   string              `json:"transactionID"`
	InvoiceNumber   string              `json:"invoiceNumber"`
	CustomerID      *string             `json:"customerID,omitempty"`
	CustomerName    string              `json:"customerName"`
	SaleDate        time.Time           `json:"saleDate"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	DiscountPercent decimal.Decimal     `json:"discountPercent"`
	DiscountAmount  decimal.Decimal     `json:"discountAmount"`
	VatEnabled      bool                `json:"vatEnabled"`
	VatAmount       decimal.Decimal     `json:"vatAmount"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	PaymentMethod   string              `json:"paymentMethod"`
	PaymentStatus   string              `json:"paymentStatus"`
	CreatedAt       time.Time           `json:"createdAt"`
	Items           []SalesItemResponse `json:"items,omitempty"`
}

// ListSalesParams holds parameters for listing invoices.
type ListSalesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListSalesResponse is the paginated invoice listing.
type ListSalesResponse struct {
	Transactions []SalesTransactionResponse `json:"transactions"`
	NextToken    *string                    `json:"nextToken,omitempty"`
}

// ToSalesItemResponse converts a domain sales line to its response DTO.
func ToSalesItemResponse(item *domain.SalesTransactionItem) SalesItemResponse {
	return SalesItemResponse{
		LineID:          item.LineID,
		ItemID:          item.ItemID,
		ItemName:        item.ItemName,
		Quantity:        item.Quantity,
		UnitPrice:       item.UnitPrice,
		DiscountPercent: item.DiscountPercent,
		DiscountAmount:  item.DiscountAmount,
		TotalPrice:      item.TotalPrice,
	}
}

// ToSalesTransactionResponse converts a domain invoice (with any loaded
// items) to its response DTO.
func ToSalesTransactionResponse(txn *domain.SalesTransaction) SalesTransactionResponse {
	resp := SalesTransactionResponse{
		TransactionID:   txn.TransactionID,
		InvoiceNumber:   txn.InvoiceNumber,
		CustomerID:      txn.CustomerID,
		CustomerName:    txn.CustomerName,
		SaleDate:        txn.SaleDate,
		Subtotal:        txn.Subtotal,
		DiscountPercent: txn.DiscountPercent,
		DiscountAmount:  txn.DiscountAmount,
		VatEnabled:      txn.VatEnabled,
		VatAmount:       txn.VatAmount,
		TotalAmount:     txn.TotalAmount,
		PaymentMethod:   txn.PaymentMethod,
		PaymentStatus:   string(txn.PaymentStatus),
		CreatedAt:       txn.CreatedAt,
	}
	if len(txn.Items) > 0 {
		resp.Items = make([]SalesItemResponse, len(txn.Items))
		for i := range txn.Items {
			resp.Items[i] = ToSalesItemResponse(&txn.Items[i])
		}
	}
	return resp
}
