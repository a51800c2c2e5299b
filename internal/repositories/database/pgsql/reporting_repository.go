package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	"github.com/PasalPOS/pasal_pos_app/internal/models"
	"github.com/PasalPOS/pasal_pos_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates the read-only repository behind the
// dashboard aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// GetSalesTotalBetween sums invoice totals dated in [from, to). The sale
// date is the document date, not the insertion time, so back-dated invoices
// fall into the day they belong to.
func (r *PgxReportingRepository) GetSalesTotalBetween(ctx context.Context, from time.Time, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM sales_transactions
		WHERE sale_date >= $1 AND sale_date < $2;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum sales between %s and %s: %w", from, to, err)
	}
	return total, nil
}

// GetInventoryValue sums stock_quantity * cost_price over the whole catalog.
// Negative stock rows subtract from the total.
func (r *PgxReportingRepository) GetInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(stock_quantity * cost_price), 0) FROM items;`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute inventory value: %w", err)
	}
	return total, nil
}

// ListRecentSales retrieves the most recently recorded invoices.
func (r *PgxReportingRepository) ListRecentSales(ctx context.Context, limit int) ([]domain.RecentSale, error) {
	if limit <= 0 {
		limit = 5
	}

	query := `
		SELECT invoice_number, customer_name, total_amount, created_at
		FROM sales_transactions
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.RecentSale{}
	for rows.Next() {
		var s domain.RecentSale
		if err := rows.Scan(&s.InvoiceNumber, &s.CustomerName, &s.TotalAmount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent sale row: %w", err)
		}
		sales = append(sales, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating recent sale rows: %w", rows.Err())
	}

	return sales, nil
}

// ListLowStockItems retrieves items at or below their minimum stock level,
// lowest stock first.
func (r *PgxReportingRepository) ListLowStockItems(ctx context.Context, limit int) ([]domain.Item, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT ` + itemColumns + `
		FROM items
		WHERE stock_quantity <= min_stock_level
		ORDER BY stock_quantity ASC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		m, err := scanItemRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan low stock item row: %w", err)
		}
		items = append(items, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating low stock item rows: %w", rows.Err())
	}

	return mapping.ToDomainItemSlice(items), nil
}
