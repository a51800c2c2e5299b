package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/apperrors"
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	"github.com/PasalPOS/pasal_pos_app/internal/models"
	"github.com/PasalPOS/pasal_pos_app/internal/utils/mapping"
	"github.com/PasalPOS/pasal_pos_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
	itemRepo portsrepo.ItemRepositoryFacade
}

// newPgxLedgerRepository creates the repository behind the transactional
// ledger engine. It needs the item repository for row locking and stock
// updates inside its transactions.
func newPgxLedgerRepository(pool *pgxpool.Pool, itemRepo portsrepo.ItemRepositoryFacade) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		itemRepo:       itemRepo,
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryWithTx
var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

const vatEntryInsertQuery = `
	INSERT INTO vat_ledger_entries (
		entry_id, entry_date, entry_type, reference_number, party_name, party_vat_number,
		taxable_amount, vat_amount, vat_rate, status, sales_transaction_id,
		purchase_transaction_id, created_at, created_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`

func insertVatEntryInTx(ctx context.Context, tx pgx.Tx, entry *domain.VatLedgerEntry) error {
	m := mapping.ToModelVatLedgerEntry(*entry)
	_, err := tx.Exec(ctx, vatEntryInsertQuery,
		m.EntryID,
		m.EntryDate,
		m.EntryType,
		m.ReferenceNumber,
		m.PartyName,
		m.PartyVatNumber,
		m.TaxableAmount,
		m.VatAmount,
		m.VatRate,
		m.Status,
		m.SalesTransactionID,
		m.PurchaseTransactionID,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert VAT ledger entry %s: %w", m.EntryID, err)
	}
	return nil
}

// lockAndApplyStockDeltas locks the affected item rows, optionally rejects
// deltas that would drive stock negative, then applies the relative updates.
func (r *PgxLedgerRepository) lockAndApplyStockDeltas(ctx context.Context, tx pgx.Tx, stockDeltas map[string]int64, enforceStock bool, userID string, now time.Time) error {
	itemIDs := make([]string, 0, len(stockDeltas))
	for itemID := range stockDeltas {
		itemIDs = append(itemIDs, itemID)
	}

	lockedItems, err := r.itemRepo.FindItemsByIDsForUpdate(ctx, tx, itemIDs)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return apperrors.NewAppError(500, "failed to lock items for update", err)
	}

	if enforceStock {
		for itemID, delta := range stockDeltas {
			item := lockedItems[itemID]
			if item.StockQuantity+delta < 0 {
				return fmt.Errorf("%w: item %s has %d in stock, change of %d not allowed",
					apperrors.ErrInsufficientStock, itemID, item.StockQuantity, delta)
			}
		}
	}

	if err := r.itemRepo.UpdateStockQuantitiesInTx(ctx, tx, stockDeltas, userID, now); err != nil {
		return apperrors.NewAppError(500, "failed to update stock quantities", err)
	}
	return nil
}

// SaveSalesTransaction saves an invoice, applies stock decrements and appends
// the output VAT entry within one DB transaction.
func (r *PgxLedgerRepository) SaveSalesTransaction(ctx context.Context, txn domain.SalesTransaction, items []domain.SalesTransactionItem, stockDeltas map[string]int64, vatEntry *domain.VatLedgerEntry, enforceStock bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	modelTxn := mapping.ToModelSalesTransaction(txn)

	// 1. Insert the invoice header
	headerQuery := `
		INSERT INTO sales_transactions (
			transaction_id, invoice_number, customer_id, customer_name, sale_date,
			subtotal, discount_percent, discount_amount, vat_enabled, vat_amount,
			total_amount, payment_method, payment_status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelTxn.TransactionID,
		modelTxn.InvoiceNumber,
		modelTxn.CustomerID,
		modelTxn.CustomerName,
		modelTxn.SaleDate,
		modelTxn.Subtotal,
		modelTxn.DiscountPercent,
		modelTxn.DiscountAmount,
		modelTxn.VatEnabled,
		modelTxn.VatAmount,
		modelTxn.TotalAmount,
		modelTxn.PaymentMethod,
		modelTxn.PaymentStatus,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, modelTxn.InvoiceNumber)
		}
		return apperrors.NewAppError(500, "failed to insert sales transaction "+modelTxn.TransactionID, err)
	}

	// 2. Lock items, enforce stock policy and apply the decrements
	if err := r.lockAndApplyStockDeltas(ctx, tx, stockDeltas, enforceStock, modelTxn.CreatedBy, modelTxn.LastUpdatedAt); err != nil {
		return err
	}

	// 3. Insert the line items as a batch
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO sales_transaction_items (
			line_id, transaction_id, item_id, item_name, quantity, unit_price,
			discount_percent, discount_amount, total_price
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, item := range items {
		modelItem := mapping.ToModelSalesTransactionItem(item)
		batch.Queue(lineQuery,
			modelItem.LineID,
			modelItem.TransactionID,
			modelItem.ItemID,
			modelItem.ItemName,
			modelItem.Quantity,
			modelItem.UnitPrice,
			modelItem.DiscountPercent,
			modelItem.DiscountAmount,
			modelItem.TotalPrice,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line item batch for sales transaction "+modelTxn.TransactionID, err)
	}

	// 4. Append the VAT ledger entry when the sale carries VAT
	if vatEntry != nil {
		if err := insertVatEntryInTx(ctx, tx, vatEntry); err != nil {
			return apperrors.NewAppError(500, "failed to append VAT entry for sales transaction "+modelTxn.TransactionID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit sales transaction "+modelTxn.TransactionID, err)
	}
	return nil
}

// SavePurchaseTransaction saves a bill, applies stock increments and appends
// the input VAT entry within one DB transaction.
func (r *PgxLedgerRepository) SavePurchaseTransaction(ctx context.Context, txn domain.PurchaseTransaction, items []domain.PurchaseTransactionItem, stockDeltas map[string]int64, vatEntry *domain.VatLedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer r.Rollback(ctx, tx)

	modelTxn := mapping.ToModelPurchaseTransaction(txn)

	headerQuery := `
		INSERT INTO purchase_transactions (
			transaction_id, bill_number, vendor_id, vendor_name, purchase_date,
			subtotal, discount_percent, discount_amount, excise_amount, vat_enabled,
			vat_amount, total_amount, payment_terms, payment_status, include_excise_in_accounting,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelTxn.TransactionID,
		modelTxn.BillNumber,
		modelTxn.VendorID,
		modelTxn.VendorName,
		modelTxn.PurchaseDate,
		modelTxn.Subtotal,
		modelTxn.DiscountPercent,
		modelTxn.DiscountAmount,
		modelTxn.ExciseAmount,
		modelTxn.VatEnabled,
		modelTxn.VatAmount,
		modelTxn.TotalAmount,
		modelTxn.PaymentTerms,
		modelTxn.PaymentStatus,
		modelTxn.IncludeExciseInAccounting,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert purchase transaction "+modelTxn.TransactionID, err)
	}

	// Purchases only add stock, so the no-negative-stock policy never applies
	if err := r.lockAndApplyStockDeltas(ctx, tx, stockDeltas, false, modelTxn.CreatedBy, modelTxn.LastUpdatedAt); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO purchase_transaction_items (
			line_id, transaction_id, item_id, item_name, quantity, unit_price,
			discount_percent, discount_amount, excise_amount, total_price
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, item := range items {
		modelItem := mapping.ToModelPurchaseTransactionItem(item)
		batch.Queue(lineQuery,
			modelItem.LineID,
			modelItem.TransactionID,
			modelItem.ItemID,
			modelItem.ItemName,
			modelItem.Quantity,
			modelItem.UnitPrice,
			modelItem.DiscountPercent,
			modelItem.DiscountAmount,
			modelItem.ExciseAmount,
			modelItem.TotalPrice,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line item batch for purchase transaction "+modelTxn.TransactionID, err)
	}

	if vatEntry != nil {
		if err := insertVatEntryInTx(ctx, tx, vatEntry); err != nil {
			return apperrors.NewAppError(500, "failed to append VAT entry for purchase transaction "+modelTxn.TransactionID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit purchase transaction "+modelTxn.TransactionID, err)
	}
	return nil
}

const salesTxnColumns = `transaction_id, invoice_number, customer_id, customer_name, sale_date, subtotal, discount_percent, discount_amount, vat_enabled, vat_amount, total_amount, payment_method, payment_status, created_at, created_by, last_updated_at, last_updated_by`

func scanSalesTxnRow(row pgx.Row) (*models.SalesTransaction, error) {
	var m models.SalesTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.InvoiceNumber,
		&m.CustomerID,
		&m.CustomerName,
		&m.SaleDate,
		&m.Subtotal,
		&m.DiscountPercent,
		&m.DiscountAmount,
		&m.VatEnabled,
		&m.VatAmount,
		&m.TotalAmount,
		&m.PaymentMethod,
		&m.PaymentStatus,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindSalesTransactionByID retrieves an invoice header by its ID.
func (r *PgxLedgerRepository) FindSalesTransactionByID(ctx context.Context, transactionID string) (*domain.SalesTransaction, error) {
	query := `SELECT ` + salesTxnColumns + ` FROM sales_transactions WHERE transaction_id = $1;`

	m, err := scanSalesTxnRow(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sales transaction by ID "+transactionID, err)
	}

	d := mapping.ToDomainSalesTransaction(*m)
	return &d, nil
}

// FindSalesItemsByTransactionID retrieves all line items of an invoice.
func (r *PgxLedgerRepository) FindSalesItemsByTransactionID(ctx context.Context, transactionID string) ([]domain.SalesTransactionItem, error) {
	query := `
		SELECT line_id, transaction_id, item_id, item_name, quantity, unit_price,
		       discount_percent, discount_amount, total_price
		FROM sales_transaction_items
		WHERE transaction_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query line items for sales transaction "+transactionID, err)
	}
	defer rows.Close()

	items := []models.SalesTransactionItem{}
	for rows.Next() {
		var m models.SalesTransactionItem
		err := rows.Scan(
			&m.LineID,
			&m.TransactionID,
			&m.ItemID,
			&m.ItemName,
			&m.Quantity,
			&m.UnitPrice,
			&m.DiscountPercent,
			&m.DiscountAmount,
			&m.TotalPrice,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item row for sales transaction "+transactionID, err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line item rows for sales transaction "+transactionID, err)
	}

	return mapping.ToDomainSalesTransactionItemSlice(items), nil
}

// ListSalesTransactions retrieves a paginated list of invoice headers using
// token-based pagination, ordered by (sale_date DESC, created_at DESC).
func (r *PgxLedgerRepository) ListSalesTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.SalesTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + salesTxnColumns + ` FROM sales_transactions`
	orderByClause := `ORDER BY sale_date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastSaleDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastSaleDate, lastCreatedAt)
		query := baseQuery + ` WHERE (sale_date, created_at) < ($1, $2) ` + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)+1) + `;`
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + ` ` + orderByClause + ` LIMIT $1;`
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query sales transactions", err)
	}
	defer rows.Close()

	results := make([]models.SalesTransaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanSalesTxnRow(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan sales transaction row", err)
		}
		results = append(results, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating sales transaction rows", err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		last := results[limit-1]
		token := pagination.EncodeToken(last.SaleDate, last.CreatedAt)
		nextTokenVal = &token
		results = results[:limit]
	}

	return mapping.ToDomainSalesTransactionSlice(results), nextTokenVal, nil
}

const purchaseTxnColumns = `transaction_id, bill_number, vendor_id, vendor_name, purchase_date, subtotal, discount_percent, discount_amount, excise_amount, vat_enabled, vat_amount, total_amount, payment_terms, payment_status, include_excise_in_accounting, created_at, created_by, last_updated_at, last_updated_by`

func scanPurchaseTxnRow(row pgx.Row) (*models.PurchaseTransaction, error) {
	var m models.PurchaseTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.BillNumber,
		&m.VendorID,
		&m.VendorName,
		&m.PurchaseDate,
		&m.Subtotal,
		&m.DiscountPercent,
		&m.DiscountAmount,
		&m.ExciseAmount,
		&m.VatEnabled,
		&m.VatAmount,
		&m.TotalAmount,
		&m.PaymentTerms,
		&m.PaymentStatus,
		&m.IncludeExciseInAccounting,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindPurchaseTransactionByID retrieves a bill header by its ID.
func (r *PgxLedgerRepository) FindPurchaseTransactionByID(ctx context.Context, transactionID string) (*domain.PurchaseTransaction, error) {
	query := `SELECT ` + purchaseTxnColumns + ` FROM purchase_transactions WHERE transaction_id = $1;`

	m, err := scanPurchaseTxnRow(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find purchase transaction by ID "+transactionID, err)
	}

	d := mapping.ToDomainPurchaseTransaction(*m)
	return &d, nil
}

// FindPurchaseItemsByTransactionID retrieves all line items of a bill.
func (r *PgxLedgerRepository) FindPurchaseItemsByTransactionID(ctx context.Context, transactionID string) ([]domain.PurchaseTransactionItem, error) {
	query := `
		SELECT line_id, transaction_id, item_id, item_name, quantity, unit_price,
		       discount_percent, discount_amount, excise_amount, total_price
		FROM purchase_transaction_items
		WHERE transaction_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query line items for purchase transaction "+transactionID, err)
	}
	defer rows.Close()

	items := []models.PurchaseTransactionItem{}
	for rows.Next() {
		var m models.PurchaseTransactionItem
		err := rows.Scan(
			&m.LineID,
			&m.TransactionID,
			&m.ItemID,
			&m.ItemName,
			&m.Quantity,
			&m.UnitPrice,
			&m.DiscountPercent,
			&m.DiscountAmount,
			&m.ExciseAmount,
			&m.TotalPrice,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item row for purchase transaction "+transactionID, err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line item rows for purchase transaction "+transactionID, err)
	}

	return mapping.ToDomainPurchaseTransactionItemSlice(items), nil
}

// ListPurchaseTransactions retrieves a paginated list of bill headers using
// token-based pagination, ordered by (purchase_date DESC, created_at DESC).
func (r *PgxLedgerRepository) ListPurchaseTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.PurchaseTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + purchaseTxnColumns + ` FROM purchase_transactions`
	orderByClause := `ORDER BY purchase_date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastPurchaseDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastPurchaseDate, lastCreatedAt)
		query := baseQuery + ` WHERE (purchase_date, created_at) < ($1, $2) ` + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)+1) + `;`
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + ` ` + orderByClause + ` LIMIT $1;`
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query purchase transactions", err)
	}
	defer rows.Close()

	results := make([]models.PurchaseTransaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanPurchaseTxnRow(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan purchase transaction row", err)
		}
		results = append(results, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating purchase transaction rows", err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		last := results[limit-1]
		token := pagination.EncodeToken(last.PurchaseDate, last.CreatedAt)
		nextTokenVal = &token
		results = results[:limit]
	}

	return mapping.ToDomainPurchaseTransactionSlice(results), nextTokenVal, nil
}
