package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VatLedgerEntry maps one row of the vat_ledger_entries table. The table is
// append-only; there is no update path.
type VatLedgerEntry struct {
	EntryID               string          `json:"entryID" db:"entry_id"`
	EntryDate             time.Time       `json:"entryDate" db:"entry_date"`
	EntryType             string          `json:"entryType" db:"entry_type"`
	ReferenceNumber       string          `json:"referenceNumber" db:"reference_number"`
	PartyName             string          `json:"partyName" db:"party_name"`
	PartyVatNumber        string          `json:"partyVatNumber" db:"party_vat_number"`
	TaxableAmount         decimal.Decimal `json:"taxableAmount" db:"taxable_amount"`
	VatAmount             decimal.Decimal `json:"vatAmount" db:"vat_amount"`
	VatRate               decimal.Decimal `json:"vatRate" db:"vat_rate"`
	Status                string          `json:"status" db:"status"`
	SalesTransactionID    *string         `json:"salesTransactionID,omitempty" db:"sales_transaction_id"`
	PurchaseTransactionID *string         `json:"purchaseTransactionID,omitempty" db:"purchase_transaction_id"`
	CreatedAt             time.Time       `json:"createdAt" db:"created_at"`
	CreatedBy             string          `json:"createdBy" db:"created_by"`
}
