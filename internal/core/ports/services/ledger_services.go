package services

import (
	"context"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
)

// SalesReaderSvc defines read operations for recorded invoices
type SalesReaderSvc interface {
	// GetSalesTransactionByID retrieves an invoice with its line items.
	GetSalesTransactionByID(ctx context.Context, transactionID string) (*domain.SalesTransaction, error)

	// ListSalesTransactions retrieves a paginated list of invoice headers.
	ListSalesTransactions(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error)
}

// SalesWriterSvc defines the recording operation for invoices
type SalesWriterSvc interface {
	// RecordSale validates and persists an invoice: line items, stock
	// decrements and the output VAT entry commit together or not at all.
	RecordSale(ctx context.Context, req dto.CreateSalesRequest, creatorUserID string) (*domain.SalesTransaction, error)
}

// PurchaseReaderSvc defines read operations for recorded bills
type PurchaseReaderSvc interface {
	// GetPurchaseTransactionByID retrieves a bill with its line items.
	GetPurchaseTransactionByID(ctx context.Context, transactionID string) (*domain.PurchaseTransaction, error)

	// ListPurchaseTransactions retrieves a paginated list of bill headers.
	ListPurchaseTransactions(ctx context.Context, params dto.ListPurchasesParams) (*dto.ListPurchasesResponse, error)
}

// PurchaseWriterSvc defines the recording operation for bills
type PurchaseWriterSvc interface {
	// RecordPurchase validates and persists a bill: line items, stock
	// increments and the input VAT entry commit together or not at all.
	RecordPurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.PurchaseTransaction, error)
}

// LedgerSvcFacade combines both sides of the transactional ledger
type LedgerSvcFacade interface {
	SalesReaderSvc
	SalesWriterSvc
	PurchaseReaderSvc
	PurchaseWriterSvc
}
