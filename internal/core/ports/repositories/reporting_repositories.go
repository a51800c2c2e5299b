package repositories

import (
	"context"
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingReader defines the read-only aggregates behind the dashboard.
// All values are computed per call; nothing is cached or persisted.
type ReportingReader interface {
	// GetSalesTotalBetween sums invoice totals with sale_date in [from, to).
	GetSalesTotalBetween(ctx context.Context, from time.Time, to time.Time) (decimal.Decimal, error)

	// GetInventoryValue sums stock_quantity * cost_price over the catalog.
	GetInventoryValue(ctx context.Context) (decimal.Decimal, error)

	// ListRecentSales retrieves the most recent invoices, newest first.
	ListRecentSales(ctx context.Context, limit int) ([]domain.RecentSale, error)

	// ListLowStockItems retrieves items with stock at or below their minimum
	// level, lowest stock first.
	ListLowStockItems(ctx context.Context, limit int) ([]domain.Item, error)
}

// ReportingRepositoryFacade combines all reporting repository interfaces
type ReportingRepositoryFacade interface {
	ReportingReader
}
