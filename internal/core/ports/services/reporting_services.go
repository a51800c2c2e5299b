package services

import (
	"context"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
)

// ReportingSvc defines the dashboard aggregates, recomputed on every call.
type ReportingSvc interface {
	// GetDashboardStats assembles today's sales total, net VAT payable,
	// inventory value, the recent sales feed and the low-stock list.
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
