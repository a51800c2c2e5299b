package repositories

import (
	"context"
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
)

// VatLedgerReader defines read operations for the append-only VAT ledger.
// Entries are written only by the ledger engine, so there is no writer port.
type VatLedgerReader interface {
	// ListVatEntries retrieves ledger entries with an optional inclusive
	// date-range filter on entry_date, newest first.
	ListVatEntries(ctx context.Context, fromDate *time.Time, toDate *time.Time) ([]domain.VatLedgerEntry, error)

	// GetVatSummary computes output minus input VAT totals over the same
	// optional date range.
	GetVatSummary(ctx context.Context, fromDate *time.Time, toDate *time.Time) (*domain.VatSummary, error)
}

// VatLedgerRepositoryFacade combines all VAT ledger repository interfaces
type VatLedgerRepositoryFacade interface {
	VatLedgerReader
}
