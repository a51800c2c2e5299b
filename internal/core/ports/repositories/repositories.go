package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ItemRepo      ItemRepositoryFacade
	VendorRepo    VendorRepositoryFacade
	CustomerRepo  CustomerRepositoryFacade
	LedgerRepo    LedgerRepositoryFacade
	VatLedgerRepo VatLedgerRepositoryFacade
	ReportingRepo ReportingRepositoryFacade
	UserRepo      UserRepositoryFacade
}
