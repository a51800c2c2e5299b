package services

import (
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Item = NewItemService(repos.ItemRepo)
	container.Vendor = NewVendorService(repos.VendorRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Ledger = NewLedgerService(
		repos.LedgerRepo,
		repos.ItemRepo,
		repos.CustomerRepo,
		repos.VendorRepo,
		cfg.AllowNegativeStock,
	)
	container.VatLedger = NewVatLedgerService(repos.VatLedgerRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.VatLedgerRepo)
	container.User = NewUserService(repos.UserRepo, cfg)

	return container
}
