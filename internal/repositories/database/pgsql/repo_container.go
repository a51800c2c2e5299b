package pgsql

import (
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	itemRepo := newPgxItemRepository(dbPool)
	vendorRepo := newPgxVendorRepository(dbPool)
	customerRepo := newPgxCustomerRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, itemRepo)
	vatLedgerRepo := newPgxVatLedgerRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ItemRepo:      itemRepo,
		VendorRepo:    vendorRepo,
		CustomerRepo:  customerRepo,
		LedgerRepo:    ledgerRepo,
		VatLedgerRepo: vatLedgerRepo,
		ReportingRepo: reportingRepo,
		UserRepo:      userRepo,
	}
}
