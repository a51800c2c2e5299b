package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/middleware"
)

const (
	recentSalesLimit   = 5
	lowStockItemsLimit = 10
)

// reportingService assembles the dashboard rollup from live queries.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
	vatLedgerRepo portsrepo.VatLedgerRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, vatLedgerRepo portsrepo.VatLedgerRepositoryFacade) portssvc.ReportingSvc {
	return &reportingService{
		reportingRepo: reportingRepo,
		vatLedgerRepo: vatLedgerRepo,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// GetDashboardStats computes the dashboard aggregates per call. "Today" is
// the server's local calendar day.
func (s *reportingService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	todaySales, err := s.reportingRepo.GetSalesTotalBetween(ctx, dayStart, dayEnd)
	if err != nil {
		logger.Error("Failed to compute today's sales", slog.String("error", err.Error()))
		return nil, err
	}

	// Net VAT position over the full ledger, not just today.
	vatSummary, err := s.vatLedgerRepo.GetVatSummary(ctx, nil, nil)
	if err != nil {
		logger.Error("Failed to compute VAT summary", slog.String("error", err.Error()))
		return nil, err
	}

	inventoryValue, err := s.reportingRepo.GetInventoryValue(ctx)
	if err != nil {
		logger.Error("Failed to compute inventory value", slog.String("error", err.Error()))
		return nil, err
	}

	recentSales, err := s.reportingRepo.ListRecentSales(ctx, recentSalesLimit)
	if err != nil {
		logger.Error("Failed to list recent sales", slog.String("error", err.Error()))
		return nil, err
	}

	lowStockItems, err := s.reportingRepo.ListLowStockItems(ctx, lowStockItemsLimit)
	if err != nil {
		logger.Error("Failed to list low stock items", slog.String("error", err.Error()))
		return nil, err
	}

	return &domain.DashboardStats{
		TodaySales:     todaySales,
		VatPayable:     vatSummary.VatPayable,
		TotalInventory: inventoryValue,
		RecentSales:    recentSales,
		LowStockItems:  lowStockItems,
	}, nil
}
