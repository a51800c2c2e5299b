package dto

import (
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecentSaleResponse is a trimmed invoice view for the dashboard feed.
type RecentSaleResponse struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerName  string          `json:"customerName"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// DashboardStatsResponse is the per-request dashboard rollup.
type DashboardStatsResponse struct {
	TodaySales     decimal.Decimal      `json:"todaySales"`
	VatPayable     decimal.Decimal      `json:"vatPayable"`
	TotalInventory decimal.Decimal      `json:"totalInventory"`
	RecentSales    []RecentSaleResponse `json:"recentSales"`
	LowStockItems  []ItemResponse       `json:"lowStockItems"`
}

// ToDashboardStatsResponse converts domain dashboard stats to the response DTO.
func ToDashboardStatsResponse(stats *domain.DashboardStats) DashboardStatsResponse {
	recent := make([]RecentSaleResponse, len(stats.RecentSales))
	for i, sale := range stats.RecentSales {
		recent[i] = RecentSaleResponse{
			InvoiceNumber: sale.InvoiceNumber,
			CustomerName:  sale.CustomerName,
			TotalAmount:   sale.TotalAmount,
			CreatedAt:     sale.CreatedAt,
		}
	}
	return DashboardStatsResponse{
		TodaySales:     stats.TodaySales,
		VatPayable:     stats.VatPayable,
		TotalInventory: stats.TotalInventory,
		RecentSales:    recent,
		LowStockItems:  ToItemResponses(stats.LowStockItems),
	}
}
