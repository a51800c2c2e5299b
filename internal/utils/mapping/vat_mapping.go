package mapping

import (
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/PasalPOS/pasal_pos_app/internal/models"
)

// ToModelVatLedgerEntry converts a domain VatLedgerEntry to a model VatLedgerEntry
func ToModelVatLedgerEntry(d domain.VatLedgerEntry) models.VatLedgerEntry {
	return models.VatLedgerEntry{
		EntryID:               d.EntryID,
		EntryDate:             d.EntryDate,
		EntryType:             string(d.EntryType),
		ReferenceNumber:       d.ReferenceNumber,
		PartyName:             d.PartyName,
		PartyVatNumber:        d.PartyVatNumber,
		TaxableAmount:         d.TaxableAmount,
		VatAmount:             d.VatAmount,
		VatRate:               d.VatRate,
		Status:                string(d.Status),
		SalesTransactionID:    d.SalesTransactionID,
		PurchaseTransactionID: d.PurchaseTransactionID,
		CreatedAt:             d.CreatedAt,
		CreatedBy:             d.CreatedBy,
	}
}

// ToDomainVatLedgerEntry converts a model VatLedgerEntry to a domain VatLedgerEntry
func ToDomainVatLedgerEntry(m models.VatLedgerEntry) domain.VatLedgerEntry {
	return domain.VatLedgerEntry{
		EntryID:               m.EntryID,
		EntryDate:             m.EntryDate,
		EntryType:             domain.VatEntryType(m.EntryType),
		ReferenceNumber:       m.ReferenceNumber,
		PartyName:             m.PartyName,
		PartyVatNumber:        m.PartyVatNumber,
		TaxableAmount:         m.TaxableAmount,
		VatAmount:             m.VatAmount,
		VatRate:               m.VatRate,
		Status:                domain.VatEntryStatus(m.Status),
		SalesTransactionID:    m.SalesTransactionID,
		PurchaseTransactionID: m.PurchaseTransactionID,
		CreatedAt:             m.CreatedAt,
		CreatedBy:             m.CreatedBy,
	}
}

// ToDomainVatLedgerEntrySlice converts a slice of model entries to domain entries
func ToDomainVatLedgerEntrySlice(ms []models.VatLedgerEntry) []domain.VatLedgerEntry {
	ds := make([]domain.VatLedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVatLedgerEntry(m)
	}
	return ds
}
