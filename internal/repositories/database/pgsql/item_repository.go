package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/apperrors"
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	"github.com/PasalPOS/pasal_pos_app/internal/models"
	"github.com/PasalPOS/pasal_pos_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxItemRepository struct {
	BaseRepository
}

// newPgxItemRepository creates a new repository for catalog item data.
func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryWithTx {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxItemRepository implements portsrepo.ItemRepositoryWithTx
var _ portsrepo.ItemRepositoryWithTx = (*PgxItemRepository)(nil)

const itemColumns = `item_id, name, category, brand, cost_price, selling_price, wholesale_price, stock_quantity, opening_quantity, min_stock_level, unit, created_at, created_by, last_updated_at, last_updated_by`

func scanItemRow(row pgx.Row) (*models.Item, error) {
	var modelItem models.Item
	err := row.Scan(
		&modelItem.ItemID,
		&modelItem.Name,
		&modelItem.Category,
		&modelItem.Brand,
		&modelItem.CostPrice,
		&modelItem.SellingPrice,
		&modelItem.WholesalePrice,
		&modelItem.StockQuantity,
		&modelItem.OpeningQuantity,
		&modelItem.MinStockLevel,
		&modelItem.Unit,
		&modelItem.CreatedAt,
		&modelItem.CreatedBy,
		&modelItem.LastUpdatedAt,
		&modelItem.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &modelItem, nil
}

// SaveItem inserts a new catalog item.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	modelItem := mapping.ToModelItem(item)

	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelItem.ItemID,
		modelItem.Name,
		modelItem.Category,
		modelItem.Brand,
		modelItem.CostPrice,
		modelItem.SellingPrice,
		modelItem.WholesalePrice,
		modelItem.StockQuantity,
		modelItem.OpeningQuantity,
		modelItem.MinStockLevel,
		modelItem.Unit,
		modelItem.CreatedAt,
		modelItem.CreatedBy,
		modelItem.LastUpdatedAt,
		modelItem.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: item with ID %s already exists", apperrors.ErrDuplicate, modelItem.ItemID)
		}
		return fmt.Errorf("failed to save item %s: %w", modelItem.ItemID, err)
	}
	return nil
}

// FindItemByID retrieves an item by its ID.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1;`

	modelItem, err := scanItemRow(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item by ID %s: %w", itemID, err)
	}

	domainItem := mapping.ToDomainItem(*modelItem)
	return &domainItem, nil
}

// FindItemsByIDs retrieves multiple items by their IDs. Missing IDs are
// simply absent from the returned map; the caller decides whether that is
// an error.
func (r *PgxItemRepository) FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.Item, error) {
	if len(itemIDs) == 0 {
		return map[string]domain.Item{}, nil
	}

	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query items by IDs: %w", err)
	}
	defer rows.Close()

	itemsMap := make(map[string]domain.Item)
	for rows.Next() {
		modelItem, err := scanItemRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item row during batch fetch: %w", err)
		}
		itemsMap[modelItem.ItemID] = mapping.ToDomainItem(*modelItem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows during batch fetch: %w", err)
	}

	return itemsMap, nil
}

// ListItems retrieves a paginated list of catalog items ordered by name.
func (r *PgxItemRepository) ListItems(ctx context.Context, limit int, offset int) ([]domain.Item, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		modelItem, err := scanItemRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, mapping.ToDomainItem(*modelItem))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", rows.Err())
	}

	return items, nil
}

// UpdateItem updates an existing item's catalog fields. Stock columns are
// deliberately not part of this statement.
func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	modelItem := mapping.ToModelItem(item)

	query := `
		UPDATE items
		SET name = $2, category = $3, brand = $4, cost_price = $5, selling_price = $6,
			wholesale_price = $7, min_stock_level = $8, unit = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE item_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelItem.ItemID,
		modelItem.Name,
		modelItem.Category,
		modelItem.Brand,
		modelItem.CostPrice,
		modelItem.SellingPrice,
		modelItem.WholesalePrice,
		modelItem.MinStockLevel,
		modelItem.Unit,
		modelItem.LastUpdatedAt,
		modelItem.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update item %s: %w", modelItem.ItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustStock applies a relative stock correction and returns the updated item.
func (r *PgxItemRepository) AdjustStock(ctx context.Context, itemID string, delta int64, userID string, now time.Time) (*domain.Item, error) {
	query := `
		UPDATE items
		SET stock_quantity = COALESCE(stock_quantity, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE item_id = $1
		RETURNING ` + itemColumns + `;
	`

	modelItem, err := scanItemRow(r.Pool.QueryRow(ctx, query, itemID, delta, now, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to adjust stock for item %s: %w", itemID, err)
	}

	domainItem := mapping.ToDomainItem(*modelItem)
	return &domainItem, nil
}

// FindItemsByIDsForUpdate retrieves multiple items by IDs and locks the rows for update.
// Must be called within a transaction.
func (r *PgxItemRepository) FindItemsByIDsForUpdate(ctx context.Context, tx pgx.Tx, itemIDs []string) (map[string]domain.Item, error) {
	if len(itemIDs) == 0 {
		return map[string]domain.Item{}, nil
	}

	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = ANY($1) FOR UPDATE;`

	rows, err := tx.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query items by IDs for update: %w", err)
	}
	defer rows.Close()

	itemsMap := make(map[string]domain.Item)
	for rows.Next() {
		modelItem, err := scanItemRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked item row: %w", err)
		}
		itemsMap[modelItem.ItemID] = mapping.ToDomainItem(*modelItem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked item rows: %w", err)
	}

	if len(itemsMap) != len(itemIDs) {
		missing := []string{}
		requested := make(map[string]bool)
		for _, id := range itemIDs {
			requested[id] = true
		}
		for id := range requested {
			if _, found := itemsMap[id]; !found {
				missing = append(missing, id)
			}
		}
		slog.WarnContext(ctx, "Some items requested for update lock were not found", "missing_items", missing)
		return nil, fmt.Errorf("%w: could not find or lock all requested items, missing: %v", apperrors.ErrNotFound, missing)
	}

	return itemsMap, nil
}

// UpdateStockQuantitiesInTx applies relative stock deltas for multiple items within a transaction.
func (r *PgxItemRepository) UpdateStockQuantitiesInTx(ctx context.Context, tx pgx.Tx, stockDeltas map[string]int64, userID string, now time.Time) error {
	if len(stockDeltas) == 0 {
		return nil
	}

	query := `
		UPDATE items
		SET stock_quantity = COALESCE(stock_quantity, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE item_id = $1;
	`

	batch := &pgx.Batch{}
	for itemID, delta := range stockDeltas {
		if delta != 0 {
			batch.Queue(query, itemID, delta, now, userID)
		}
	}
	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to update stock quantity in batch: %w", err)
		}
		if err == nil && ct.RowsAffected() == 0 && batchErr == nil {
			batchErr = fmt.Errorf("%w: stock update matched no item row", apperrors.ErrNotFound)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close stock update batch: %w", err)
	}
	return batchErr
}

// DeleteItem removes a catalog item. The foreign keys from sales and purchase
// line items block deleting an item with recorded transaction history.
func (r *PgxItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	query := `DELETE FROM items WHERE item_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, itemID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: item %s is referenced by recorded transactions", apperrors.ErrConflict, itemID)
		}
		return fmt.Errorf("failed to delete item %s: %w", itemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
