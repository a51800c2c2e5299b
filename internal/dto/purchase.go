package dto

import (
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseItemRequest is one product line of a bill submission.
type CreatePurchaseItemRequest struct {
	ItemID          string          `json:"itemID" binding:"required"`
	Quantity        int64           `json:"quantity" binding:"required,gte=1"`
	UnitPrice       decimal.Decimal `json:"unitPrice" binding:"dgte0"`
	DiscountPercent decimal.Decimal `json:"discountPercent" binding:"dgte0"`
	DiscountAmount  decimal.Decimal `json:"discountAmount" binding:"dgte0"`
	ExciseAmount    decimal.Decimal `json:"exciseAmount" binding:"dgte0"`
	TotalPrice      decimal.Decimal `json:"totalPrice" binding:"dgte0"`
}

// CreatePurchaseTransactionRequest is the bill header of a submission.
// BillNumber is vendor supplied and not required to be unique.
type CreatePurchaseTransactionRequest struct {
	BillNumber                string          `json:"billNumber" binding:"required"`
	VendorID                  *string         `json:"vendorID"`
	VendorName                string          `json:"vendorName"`
	PurchaseDate              time.Time       `json:"purchaseDate"`
	Subtotal                  decimal.Decimal `json:"subtotal" binding:"dgte0"`
	DiscountPercent           decimal.Decimal `json:"discountPercent" binding:"dgte0"`
	DiscountAmount            decimal.Decimal `json:"discountAmount" binding:"dgte0"`
	ExciseAmount              decimal.Decimal `json:"exciseAmount" binding:"dgte0"`
	VatEnabled                bool            `json:"vatEnabled"`
	VatAmount                 decimal.Decimal `json:"vatAmount" binding:"dgte0"`
	TotalAmount               decimal.Decimal `json:"totalAmount" binding:"dgte0"`
	PaymentTerms              string          `json:"paymentTerms"`
	PaymentStatus             string          `json:"paymentStatus" binding:"omitempty,oneof=paid pending partial"`
	IncludeExciseInAccounting bool            `json:"includeExciseInAccounting"`
}

// CreatePurchaseRequest is the full POST /purchases payload.
type CreatePurchaseRequest struct {
	Transaction CreatePurchaseTransactionRequest `json:"transaction" binding:"required"`
	Items       []CreatePurchaseItemRequest      `json:"items" binding:"required,min=1,dive"`
}

// PurchaseItemResponse defines the data returned for a bill line.
type PurchaseItemResponse struct {
	LineID          string          `json:"lineID"`
	ItemID          string          `json:"itemID"`
	ItemName        string          `json:"itemName"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	ExciseAmount    decimal.Decimal `json:"exciseAmount"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
}

// PurchaseTransactionResponse defines the data returned for a bill.
type PurchaseTransactionResponse struct {
	TransactionID             string                 `json:"transactionID"`
	BillNumber                string                 `json:"billNumber"`
	VendorID                  *string                `json:"vendorID,omitempty"`
	VendorName                string                 `json:"vendorName"`
	PurchaseDate              time.Time              `json:"purchaseDate"`
	Subtotal                  decimal.Decimal        `json:"subtotal"`
	DiscountPercent           decimal.Decimal        `json:"discountPercent"`
	DiscountAmount            decimal.Decimal        `json:"discountAmount"`
	ExciseAmount              decimal.Decimal        `json:"exciseAmount"`
	VatEnabled                bool                   `json:"vatEnabled"`
	VatAmount                 decimal.Decimal        `json:"vatAmount"`
	TotalAmount               decimal.Decimal        `json:"totalAmount"`
	PaymentTerms              string                 `json:"paymentTerms"`
	PaymentStatus             string                 `json:"paymentStatus"`
	IncludeExciseInAccounting bool                   `json:"includeExciseInAccounting"`
	CreatedAt                 time.Time              `json:"createdAt"`
	Items                     []PurchaseItemResponse `json:"items,omitempty"`
}

// ListPurchasesParams holds parameters for listing bills.
type ListPurchasesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListPurchasesResponse is the paginated bill listing.
type ListPurchasesResponse struct {
	Transactions []PurchaseTransactionResponse `json:"transactions"`
	NextToken    *string                       `json:"nextToken,omitempty"`
}

// ToPurchaseItemResponse converts a domain purchase line to its response DTO.
func ToPurchaseItemResponse(item *domain.PurchaseTransactionItem) PurchaseItemResponse {
	return PurchaseItemResponse{
		LineID:          item.LineID,
		ItemID:          item.ItemID,
		ItemName:        item.ItemName,
		Quantity:        item.Quantity,
		UnitPrice:       item.UnitPrice,
		DiscountPercent: item.DiscountPercent,
		DiscountAmount:  item.DiscountAmount,
		ExciseAmount:    item.ExciseAmount,
		TotalPrice:      item.TotalPrice,
	}
}

// ToPurchaseTransactionResponse converts a domain bill (with any loaded
// items) to its response DTO.
func ToPurchaseTransactionResponse(txn *domain.PurchaseTransaction) PurchaseTransactionResponse {
	resp := PurchaseTransactionResponse{
		TransactionID:             txn.TransactionID,
		BillNumber:                txn.BillNumber,
		VendorID:                  txn.VendorID,
		VendorName:                txn.VendorName,
		PurchaseDate:              txn.PurchaseDate,
		Subtotal:                  txn.Subtotal,
		DiscountPercent:           txn.DiscountPercent,
		DiscountAmount:            txn.DiscountAmount,
		ExciseAmount:              txn.ExciseAmount,
		VatEnabled:                txn.VatEnabled,
		VatAmount:                 txn.VatAmount,
		TotalAmount:               txn.TotalAmount,
		PaymentTerms:              txn.PaymentTerms,
		PaymentStatus:             string(txn.PaymentStatus),
		IncludeExciseInAccounting: txn.IncludeExciseInAccounting,
		CreatedAt:                 txn.CreatedAt,
	}
	if len(txn.Items) > 0 {
		resp.Items = make([]PurchaseItemResponse, len(txn.Items))
		for i := range txn.Items {
			resp.Items[i] = ToPurchaseItemResponse(&txn.Items[i])
		}
	}
	return resp
}
