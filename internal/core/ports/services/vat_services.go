package services

import (
	"context"
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
)

// VatLedgerSvc defines the read-only view over the VAT ledger. Entries are
// appended only by the ledger engine.
type VatLedgerSvc interface {
	// ListVatEntries retrieves ledger entries, optionally bounded by an
	// inclusive entry-date range, newest first.
	ListVatEntries(ctx context.Context, fromDate *time.Time, toDate *time.Time) ([]domain.VatLedgerEntry, error)

	// GetVatSummary computes collected, paid and payable VAT over the same
	// optional range.
	GetVatSummary(ctx context.Context, fromDate *time.Time, toDate *time.Time) (*domain.VatSummary, error)
}
