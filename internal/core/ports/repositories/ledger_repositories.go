package repositories

import (
	"context"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
)

// SalesReader defines read operations for recorded invoices
type SalesReader interface {
	// FindSalesTransactionByID retrieves a specific invoice header by its ID.
	FindSalesTransactionByID(ctx context.Context, transactionID string) (*domain.SalesTransaction, error)

	// FindSalesItemsByTransactionID retrieves all line items of an invoice.
	FindSalesItemsByTransactionID(ctx context.Context, transactionID string) ([]domain.SalesTransactionItem, error)

	// ListSalesTransactions retrieves a paginated list of invoice headers
	// using token-based pagination, newest first.
	ListSalesTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.SalesTransaction, *string, error)
}

// SalesWriter defines the atomic write operation for invoices
type SalesWriter interface {
	// SaveSalesTransaction persists an invoice header with its line items,
	// applies the stock deltas to the referenced items, and appends the VAT
	// entry (when non-nil), all within one database transaction. When
	// enforceStock is true the write fails with ErrInsufficientStock if any
	// delta would take a locked item's stock below zero.
	SaveSalesTransaction(ctx context.Context, txn domain.SalesTransaction, items []domain.SalesTransactionItem, stockDeltas map[string]int64, vatEntry *domain.VatLedgerEntry, enforceStock bool) error
}

// SalesRepositoryFacade combines all sales-related repository interfaces
type SalesRepositoryFacade interface {
	SalesReader
	SalesWriter
}

// PurchaseReader defines read operations for recorded bills
type PurchaseReader interface {
	// FindPurchaseTransactionByID retrieves a specific bill header by its ID.
	FindPurchaseTransactionByID(ctx context.Context, transactionID string) (*domain.PurchaseTransaction, error)

	// FindPurchaseItemsByTransactionID retrieves all line items of a bill.
	FindPurchaseItemsByTransactionID(ctx context.Context, transactionID string) ([]domain.PurchaseTransactionItem, error)

	// ListPurchaseTransactions retrieves a paginated list of bill headers
	// using token-based pagination, newest first.
	ListPurchaseTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.PurchaseTransaction, *string, error)
}

// PurchaseWriter defines the atomic write operation for bills
type PurchaseWriter interface {
	// SavePurchaseTransaction persists a bill header with its line items,
	// applies the stock deltas to the referenced items, and appends the VAT
	// entry (when non-nil), all within one database transaction.
	SavePurchaseTransaction(ctx context.Context, txn domain.PurchaseTransaction, items []domain.PurchaseTransactionItem, stockDeltas map[string]int64, vatEntry *domain.VatLedgerEntry) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}

// LedgerRepositoryFacade combines both sides of the transactional ledger
type LedgerRepositoryFacade interface {
	SalesRepositoryFacade
	PurchaseRepositoryFacade
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
