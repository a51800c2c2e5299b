package mapping

import (
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/PasalPOS/pasal_pos_app/internal/models"
)

// ToModelSalesTransaction converts a domain SalesTransaction to a model SalesTransaction
func ToModelSalesTransaction(d domain.SalesTransaction) models.SalesTransaction {
	return models.SalesTransaction{
		TransactionID:   d.TransactionID,
		InvoiceNumber:   d.InvoiceNumber,
		CustomerID:      d.CustomerID,
		CustomerName:    d.CustomerName,
		SaleDate:        d.SaleDate,
		Subtotal:        d.Subtotal,
		DiscountPercent: d.DiscountPercent,
		DiscountAmount:  d.DiscountAmount,
		VatEnabled:      d.VatEnabled,
		VatAmount:       d.VatAmount,
		TotalAmount:     d.TotalAmount,
		PaymentMethod:   d.PaymentMethod,
		PaymentStatus:   string(d.PaymentStatus),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSalesTransaction converts a model SalesTransaction to a domain SalesTransaction
func ToDomainSalesTransaction(m models.SalesTransaction) domain.SalesTransaction {
	return domain.SalesTransaction{
		TransactionID:   m.TransactionID,
		InvoiceNumber:   m.InvoiceNumber,
		CustomerID:      m.CustomerID,
		CustomerName:    m.CustomerName,
		SaleDate:        m.SaleDate,
		Subtotal:        m.Subtotal,
		DiscountPercent: m.DiscountPercent,
		DiscountAmount:  m.DiscountAmount,
		VatEnabled:      m.VatEnabled,
		VatAmount:       m.VatAmount,
		TotalAmount:     m.TotalAmount,
		PaymentMethod:   m.PaymentMethod,
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSalesTransactionSlice converts a slice of model sales headers to domain headers
func ToDomainSalesTransactionSlice(ms []models.SalesTransaction) []domain.SalesTransaction {
	ds := make([]domain.SalesTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSalesTransaction(m)
	}
	return ds
}

// ToModelSalesTransactionItem converts a domain sales line to a model sales line
func ToModelSalesTransactionItem(d domain.SalesTransactionItem) models.SalesTransactionItem {
	return models.SalesTransactionItem{
		LineID:          d.LineID,
		TransactionID:   d.TransactionID,
		ItemID:          d.ItemID,
		ItemName:        d.ItemName,
		Quantity:        d.Quantity,
		UnitPrice:       d.UnitPrice,
		DiscountPercent: d.DiscountPercent,
		DiscountAmount:  d.DiscountAmount,
		TotalPrice:      d.TotalPrice,
	}
}

// ToDomainSalesTransactionItem converts a model sales line to a domain sales line
func ToDomainSalesTransactionItem(m models.SalesTransactionItem) domain.SalesTransactionItem {
	return domain.SalesTransactionItem{
		LineID:          m.LineID,
		TransactionID:   m.TransactionID,
		ItemID:          m.ItemID,
		ItemName:        m.ItemName,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
		DiscountPercent: m.DiscountPercent,
		DiscountAmount:  m.DiscountAmount,
		TotalPrice:      m.TotalPrice,
	}
}

// ToDomainSalesTransactionItemSlice converts a slice of model sales lines to domain lines
func ToDomainSalesTransactionItemSlice(ms []models.SalesTransactionItem) []domain.SalesTransactionItem {
	ds := make([]domain.SalesTransactionItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSalesTransactionItem(m)
	}
	return ds
}
