package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecentSale is the trimmed invoice view shown on the dashboard.
type RecentSale struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerName  string          `json:"customerName"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// DashboardStats is the read-only rollup computed per request; nothing in it
// is persisted or cached.
type DashboardStats struct {
	TodaySales     decimal.Decimal `json:"todaySales"`
	VatPayable     decimal.Decimal `json:"vatPayable"`
	TotalInventory decimal.Decimal `json:"totalInventory"` // Sum of stock * cost price
	RecentSales    []RecentSale    `json:"recentSales"`
	LowStockItems  []Item          `json:"lowStockItems"`
}

// VatSummary is the payable aggregate over a (possibly filtered) set of
// ledger entries: output collected minus input paid, recomputed on read.
type VatSummary struct {
	VatCollected decimal.Decimal `json:"vatCollected"` // sales_output total
	VatPaid      decimal.Decimal `json:"vatPaid"`      // purchase_input total
	VatPayable   decimal.Decimal `json:"vatPayable"`   // collected - paid
}
