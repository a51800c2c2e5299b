package mapping

import (
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/PasalPOS/pasal_pos_app/internal/models"
)

// ToModelPurchaseTransaction converts a domain PurchaseTransaction to a model PurchaseTransaction
func ToModelPurchaseTransaction(d domain.PurchaseTransaction) models.PurchaseTransaction {
	return models.PurchaseTransaction{
		TransactionID:             d.TransactionID,
		BillNumber:                d.BillNumber,
		VendorID:                  d.VendorID,
		VendorName:                d.VendorName,
		PurchaseDate:              d.PurchaseDate,
		Subtotal:                  d.Subtotal,
		DiscountPercent:           d.DiscountPercent,
		DiscountAmount:            d.DiscountAmount,
		ExciseAmount:              d.ExciseAmount,
		VatEnabled:                d.VatEnabled,
		VatAmount:                 d.VatAmount,
		TotalAmount:               d.TotalAmount,
		PaymentTerms:              d.PaymentTerms,
		PaymentStatus:             string(d.PaymentStatus),
		IncludeExciseInAccounting: d.IncludeExciseInAccounting,
		AuditFields:               ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseTransaction converts a model PurchaseTransaction to a domain PurchaseTransaction
func ToDomainPurchaseTransaction(m models.PurchaseTransaction) domain.PurchaseTransaction {
	return domain.PurchaseTransaction{
		TransactionID:             m.TransactionID,
		BillNumber:                m.BillNumber,
		VendorID:                  m.VendorID,
		VendorName:                m.VendorName,
		PurchaseDate:              m.PurchaseDate,
		Subtotal:                  m.Subtotal,
		DiscountPercent:           m.DiscountPercent,
		DiscountAmount:            m.DiscountAmount,
		ExciseAmount:              m.ExciseAmount,
		VatEnabled:                m.VatEnabled,
		VatAmount:                 m.VatAmount,
		TotalAmount:               m.TotalAmount,
		PaymentTerms:              m.PaymentTerms,
		PaymentStatus:             domain.PaymentStatus(m.PaymentStatus),
		IncludeExciseInAccounting: m.IncludeExciseInAccounting,
		AuditFields:               ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPurchaseTransactionSlice converts a slice of model purchase headers to domain headers
func ToDomainPurchaseTransactionSlice(ms []models.PurchaseTransaction) []domain.PurchaseTransaction {
	ds := make([]domain.PurchaseTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchaseTransaction(m)
	}
	return ds
}

// ToModelPurchaseTransactionItem converts a domain purchase line to a model purchase line
func ToModelPurchaseTransactionItem(d domain.PurchaseTransactionItem) models.PurchaseTransactionItem {
	return models.PurchaseTransactionItem{
		LineID:          d.LineID,
		TransactionID:   d.TransactionID,
		ItemID:          d.ItemID,
		ItemName:        d.ItemName,
		Quantity:        d.Quantity,
		UnitPrice:       d.UnitPrice,
		DiscountPercent: d.DiscountPercent,
		DiscountAmount:  d.DiscountAmount,
		ExciseAmount:    d.ExciseAmount,
		TotalPrice:      d.TotalPrice,
	}
}

// ToDomainPurchaseTransactionItem converts a model purchase line to a domain purchase line
func ToDomainPurchaseTransactionItem(m models.PurchaseTransactionItem) domain.PurchaseTransactionItem {
	return domain.PurchaseTransactionItem{
		LineID:          m.LineID,
		TransactionID:   m.TransactionID,
		ItemID:          m.ItemID,
		ItemName:        m.ItemName,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		DiscountPercent: m.DiscountPercent,
		DiscountAmount:  m.DiscountAmount,
		ExciseAmount:    m.ExciseAmount,
		TotalPrice:      m.TotalPrice,
	}
}

// ToDomainPurchaseTransactionItemSlice converts a slice of model purchase lines to domain lines
func ToDomainPurchaseTransactionItemSlice(ms []models.PurchaseTransactionItem) []domain.PurchaseTransactionItem {
	ds := make([]domain.PurchaseTransactionItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchaseTransactionItem(m)
	}
	return ds
}
