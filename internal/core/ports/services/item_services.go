package services

import (
	"context"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
)

// ItemReaderSvc defines read operations for catalog items
type ItemReaderSvc interface {
	// GetItemByID retrieves a specific item by its ID.
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItems retrieves a paginated list of catalog items.
	ListItems(ctx context.Context, limit int, offset int) ([]domain.Item, error)
}

// ItemWriterSvc defines write operations for catalog items
type ItemWriterSvc interface {
	// CreateItem persists a new catalog item.
	CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.Item, error)

	// UpdateItem updates item details. Stock cannot be changed here.
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, requestingUserID string) (*domain.Item, error)

	// AdjustStock applies a manual relative stock correction.
	AdjustStock(ctx context.Context, itemID string, req dto.AdjustStockRequest, requestingUserID string) (*domain.Item, error)

	// DeleteItem removes an item that no recorded transaction references.
	DeleteItem(ctx context.Context, itemID string, requestingUserID string) error
}

// ItemSvcFacade combines all item-related service interfaces
type ItemSvcFacade interface {
	ItemReaderSvc
	ItemWriterSvc
}
