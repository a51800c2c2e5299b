package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VatEntryType distinguishes output VAT collected on sales from input VAT
// paid on purchases.
type VatEntryType string

const (
	VatSalesOutput   VatEntryType = "sales_output"
	VatPurchaseInput VatEntryType = "purchase_input"
)

// VatEntryStatus is the verification state of a ledger entry.
type VatEntryStatus string

const (
	VatVerified VatEntryStatus = "verified"
)

// VatLedgerEntry is one append-only record of a taxable event. Entries are
// created exclusively by the ledger engine as a side effect of recording a
// transaction and are never mutated afterwards.
type VatLedgerEntry struct {
	EntryID               string          `json:"entryID"` // Primary key (UUID)
	EntryDate             time.Time       `json:"entryDate"`
	EntryType             VatEntryType    `json:"entryType"`
	ReferenceNumber       string          `json:"referenceNumber"` // Invoice or bill number
	PartyName             string          `json:"partyName"`
	PartyVatNumber        string          `json:"partyVatNumber"`
	TaxableAmount         decimal.Decimal `json:"taxableAmount"`
	VatAmount             decimal.Decimal `json:"vatAmount"`
	VatRate               decimal.Decimal `json:"vatRate"` // Fixed 13
	Status                VatEntryStatus  `json:"status"`
	SalesTransactionID    *string         `json:"salesTransactionID,omitempty"`
	PurchaseTransactionID *string         `json:"purchaseTransactionID,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
	CreatedBy             string          `json:"createdBy"`
}
