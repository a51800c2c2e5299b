package dto

import (
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VatLedgerQuery holds the optional date-range filter for the VAT ledger.
// Bounds are inclusive; either side may be omitted.
type VatLedgerQuery struct {
	FromDate *time.Time `form:"fromDate" time_format:"2006-01-02"`
	ToDate   *time.Time `form:"toDate" time_format:"2006-01-02"`
}

// VatLedgerEntryResponse defines the data returned for a VAT ledger entry.
type VatLedgerEntryResponse struct {
	EntryID               string          `json:"entryID"`
	EntryDate             time.Time       `json:"entryDate"`
	EntryType             string          `json:"entryType"`
	ReferenceNumber       string          `json:"referenceNumber"`
	PartyName             string          `json:"partyName"`
	PartyVatNumber        string          `json:"partyVatNumber,omitempty"`
	TaxableAmount         decimal.Decimal `json:"taxableAmount"`
	VatAmount             decimal.Decimal `json:"vatAmount"`
	VatRate               decimal.Decimal `json:"vatRate"`
	Status                string          `json:"status"`
	SalesTransactionID    *string         `json:"salesTransactionID,omitempty"`
	PurchaseTransactionID *string         `json:"purchaseTransactionID,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// VatSummaryResponse is the payable rollup for a (filtered) ledger view.
type VatSummaryResponse struct {
	VatCollected decimal.Decimal `json:"vatCollected"`
	VatPaid      decimal.Decimal `json:"vatPaid"`
	VatPayable   decimal.Decimal `json:"vatPayable"`
}

// ToVatLedgerEntryResponse converts a domain ledger entry to its response DTO.
func ToVatLedgerEntryResponse(entry *domain.VatLedgerEntry) VatLedgerEntryResponse {
	return VatLedgerEntryResponse{
		EntryID:               entry.EntryID,
		EntryDate:             entry.EntryDate,
		EntryType:             string(entry.EntryType),
		ReferenceNumber:       entry.ReferenceNumber,
		PartyName:             entry.PartyName,
		PartyVatNumber:        entry.PartyVatNumber,
		TaxableAmount:         entry.TaxableAmount,
		VatAmount:             entry.VatAmount,
		VatRate:               entry.VatRate,
		Status:                string(entry.Status),
		SalesTransactionID:    entry.SalesTransactionID,
		PurchaseTransactionID: entry.PurchaseTransactionID,
		CreatedAt:             entry.CreatedAt,
	}
}

// ToVatLedgerEntryResponses converts a slice of domain entries.
func ToVatLedgerEntryResponses(entries []domain.VatLedgerEntry) []VatLedgerEntryResponse {
	responses := make([]VatLedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToVatLedgerEntryResponse(&entries[i])
	}
	return responses
}

// ToVatSummaryResponse converts a domain VAT summary to its response DTO.
func ToVatSummaryResponse(summary *domain.VatSummary) VatSummaryResponse {
	return VatSummaryResponse{
		VatCollected: summary.VatCollected,
		VatPaid:      summary.VatPaid,
		VatPayable:   summary.VatPayable,
	}
}
