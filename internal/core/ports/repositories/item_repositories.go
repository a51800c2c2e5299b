package repositories

import (
	"context"
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ItemReader defines read operations for catalog item data
type ItemReader interface {
	// FindItemByID retrieves a specific item by its unique identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// FindItemsByIDs retrieves multiple items by their IDs.
	FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.Item, error)

	// ListItems retrieves a paginated list of catalog items.
	ListItems(ctx context.Context, limit int, offset int) ([]domain.Item, error)
}

// ItemWriter defines write operations for catalog item data
type ItemWriter interface {
	// SaveItem persists a new item.
	SaveItem(ctx context.Context, item domain.Item) error

	// UpdateItem updates an existing item's details. Stock is never written
	// through this path.
	UpdateItem(ctx context.Context, item domain.Item) error

	// AdjustStock applies a relative stock correction outside any sale or
	// purchase, e.g. for breakage or a physical count.
	AdjustStock(ctx context.Context, itemID string, delta int64, userID string, now time.Time) (*domain.Item, error)

	// DeleteItem removes an item. Items referenced by recorded transaction
	// lines cannot be deleted; the attempt returns ErrConflict.
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemTransactionSupport defines operations used by the ledger engine while
// it holds an open database transaction.
type ItemTransactionSupport interface {
	// FindItemsByIDsForUpdate selects items and locks their rows for update
	// within a transaction. Returns ErrNotFound if any ID is missing.
	FindItemsByIDsForUpdate(ctx context.Context, tx pgx.Tx, itemIDs []string) (map[string]domain.Item, error)

	// UpdateStockQuantitiesInTx applies relative stock deltas for multiple
	// items within a given transaction.
	UpdateStockQuantitiesInTx(ctx context.Context, tx pgx.Tx, stockDeltas map[string]int64, userID string, now time.Time) error
}

// ItemRepositoryFacade combines all item-related repository interfaces
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
	ItemTransactionSupport
}

// ItemRepositoryWithTx extends ItemRepositoryFacade with transaction capabilities
type ItemRepositoryWithTx interface {
	ItemRepositoryFacade
	TransactionManager
}
