package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PasalPOS/pasal_pos_app/internal/apperrors"
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	portsrepo "github.com/PasalPOS/pasal_pos_app/internal/core/ports/repositories"
	portssvc "github.com/PasalPOS/pasal_pos_app/internal/core/ports/services"
	"github.com/PasalPOS/pasal_pos_app/internal/dto"
	"github.com/PasalPOS/pasal_pos_app/internal/middleware"
	"github.com/PasalPOS/pasal_pos_app/internal/utils/taxation"
)

// itemService provides catalog item operations.
type itemService struct {
	itemRepo portsrepo.ItemRepositoryFacade
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade) portssvc.ItemSvcFacade {
	return &itemService{itemRepo: itemRepo}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

// CreateItem creates a new catalog item. Opening quantity becomes the
// starting stock level.
func (s *itemService) CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.Item, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.WholesalePrice != nil && req.WholesalePrice.IsNegative() {
		return nil, fmt.Errorf("%w: wholesale price must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	item := domain.Item{
		ItemID:          uuid.NewString(),
		Name:            req.Name,
		Category:        req.Category,
		Brand:           req.Brand,
		CostPrice:       taxation.RoundMoney(req.CostPrice),
		SellingPrice:    taxation.RoundMoney(req.SellingPrice),
		WholesalePrice:  req.WholesalePrice,
		StockQuantity:   req.OpeningQuantity,
		OpeningQuantity: req.OpeningQuantity,
		MinStockLevel:   req.MinStockLevel,
		Unit:            req.Unit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		logger.Error("Failed to save item", slog.String("error", err.Error()), slog.String("item_id", item.ItemID))
		return nil, err
	}

	logger.Info("Item created", slog.String("item_id", item.ItemID), slog.String("name", item.Name))
	return &item, nil
}

// GetItemByID retrieves an item by its ID.
func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	return s.itemRepo.FindItemByID(ctx, itemID)
}

// ListItems retrieves a paginated list of catalog items.
func (s *itemService) ListItems(ctx context.Context, limit int, offset int) ([]domain.Item, error) {
	return s.itemRepo.ListItems(ctx, limit, offset)
}

// UpdateItem applies the provided field updates to an item. Stock quantity
// is untouchable through this path.
func (s *itemService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, requestingUserID string) (*domain.Item, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Brand != nil {
		item.Brand = *req.Brand
	}
	if req.CostPrice != nil {
		if !req.CostPrice.IsPositive() {
			return nil, fmt.Errorf("%w: cost price must be positive", apperrors.ErrValidation)
		}
		item.CostPrice = taxation.RoundMoney(*req.CostPrice)
	}
	if req.SellingPrice != nil {
		if !req.SellingPrice.IsPositive() {
			return nil, fmt.Errorf("%w: selling price must be positive", apperrors.ErrValidation)
		}
		item.SellingPrice = taxation.RoundMoney(*req.SellingPrice)
	}
	if req.WholesalePrice != nil {
		if req.WholesalePrice.IsNegative() {
			return nil, fmt.Errorf("%w: wholesale price must not be negative", apperrors.ErrValidation)
		}
		item.WholesalePrice = req.WholesalePrice
	}
	if req.MinStockLevel != nil {
		if *req.MinStockLevel < 0 {
			return nil, fmt.Errorf("%w: minimum stock level must not be negative", apperrors.ErrValidation)
		}
		item.MinStockLevel = *req.MinStockLevel
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}

	item.LastUpdatedAt = time.Now().UTC()
	item.LastUpdatedBy = requestingUserID

	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		logger.Error("Failed to update item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		return nil, err
	}

	return item, nil
}

// AdjustStock applies a signed manual correction to an item's stock.
func (s *itemService) AdjustStock(ctx context.Context, itemID string, req dto.AdjustStockRequest, requestingUserID string) (*domain.Item, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Delta == 0 {
		return nil, fmt.Errorf("%w: stock adjustment delta must be non-zero", apperrors.ErrValidation)
	}

	item, err := s.itemRepo.AdjustStock(ctx, itemID, req.Delta, requestingUserID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to adjust stock", slog.String("error", err.Error()), slog.String("item_id", itemID))
		return nil, err
	}

	logger.Info("Stock adjusted",
		slog.String("item_id", itemID),
		slog.Int64("delta", req.Delta),
		slog.Int64("new_stock", item.StockQuantity),
		slog.String("reason", req.Reason))
	return item, nil
}

// DeleteItem removes an item from the catalog. Items on recorded
// transactions stay; the repository surfaces the conflict.
func (s *itemService) DeleteItem(ctx context.Context, itemID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		logger.Error("Failed to delete item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		return err
	}

	logger.Info("Item deleted", slog.String("item_id", itemID), slog.String("deleted_by", requestingUserID))
	return nil
}
