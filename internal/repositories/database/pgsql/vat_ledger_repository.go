package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	"github.com/PasalPOS/pasal_pos_app/internal/models"
	"github.com/PasalPOS/pasal_pos_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxVatLedgerRepository struct {
	BaseRepository
}

// newPgxVatLedgerRepository creates a read-only repository over the VAT
// ledger. Writes happen only inside the ledger engine's transactions.
func newPgxVatLedgerRepository(pool *pgxpool.Pool) portsrepo.VatLedgerRepositoryFacade {
	return &PgxVatLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VatLedgerRepositoryFacade = (*PgxVatLedgerRepository)(nil)

// dateRangeClause builds the optional inclusive entry_date filter. The
// returned clause starts with WHERE when any bound is set.
func dateRangeClause(fromDate *time.Time, toDate *time.Time, args *[]interface{}) string {
	conditions := ""
	if fromDate != nil {
		*args = append(*args, *fromDate)
		conditions = `entry_date >= $` + strconv.Itoa(len(*args))
	}
	if toDate != nil {
		*args = append(*args, *toDate)
		if conditions != "" {
			conditions += ` AND `
		}
		conditions += `entry_date <= $` + strconv.Itoa(len(*args))
	}
	if conditions == "" {
		return ""
	}
	return ` WHERE ` + conditions
}

// ListVatEntries retrieves ledger entries newest first, optionally bounded
// by an inclusive date range.
func (r *PgxVatLedgerRepository) ListVatEntries(ctx context.Context, fromDate *time.Time, toDate *time.Time) ([]domain.VatLedgerEntry, error) {
	args := []interface{}{}
	query := `
		SELECT entry_id, entry_date, entry_type, reference_number, party_name, party_vat_number,
		       taxable_amount, vat_amount, vat_rate, status, sales_transaction_id,
		       purchase_transaction_id, created_at, created_by
		FROM vat_ledger_entries` +
		dateRangeClause(fromDate, toDate, &args) + `
		ORDER BY entry_date DESC, created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query VAT ledger entries: %w", err)
	}
	defer rows.Close()

	entries := []models.VatLedgerEntry{}
	for rows.Next() {
		var m models.VatLedgerEntry
		err := rows.Scan(
			&m.EntryID,
			&m.EntryDate,
			&m.EntryType,
			&m.ReferenceNumber,
			&m.PartyName,
			&m.PartyVatNumber,
			&m.TaxableAmount,
			&m.VatAmount,
			&m.VatRate,
			&m.Status,
			&m.SalesTransactionID,
			&m.PurchaseTransactionID,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan VAT ledger entry row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating VAT ledger entry rows: %w", err)
	}

	return mapping.ToDomainVatLedgerEntrySlice(entries), nil
}

// GetVatSummary aggregates output and input VAT over the optional date range.
func (r *PgxVatLedgerRepository) GetVatSummary(ctx context.Context, fromDate *time.Time, toDate *time.Time) (*domain.VatSummary, error) {
	args := []interface{}{}
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN entry_type = 'sales_output' THEN vat_amount ELSE 0 END), 0) AS vat_collected,
			COALESCE(SUM(CASE WHEN entry_type = 'purchase_input' THEN vat_amount ELSE 0 END), 0) AS vat_paid
		FROM vat_ledger_entries` +
		dateRangeClause(fromDate, toDate, &args) + `;`

	var collected, paid decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&collected, &paid); err != nil {
		return nil, fmt.Errorf("failed to aggregate VAT summary: %w", err)
	}

	return &domain.VatSummary{
		VatCollected: collected,
		VatPaid:      paid,
		VatPayable:   collected.Sub(paid),
	}, nil
}
