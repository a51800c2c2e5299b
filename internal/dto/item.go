package dto

import (
	"time"

	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateItemRequest defines the data needed to create a new catalog item.
type CreateItemRequest struct {
	Name            string           `json:"name" binding:"required"`
	Category        string           `json:"category"`
	Brand           string           `json:"brand"`
	CostPrice       decimal.Decimal  `json:"costPrice" binding:"dgt0"`
	SellingPrice    decimal.Decimal  `json:"sellingPrice" binding:"dgt0"`
	WholesalePrice  *decimal.Decimal `json:"wholesalePrice"` // Optional
	OpeningQuantity int64            `json:"openingQuantity" binding:"gte=0"`
	MinStockLevel   int64            `json:"minStockLevel" binding:"gte=0"`
	Unit            string           `json:"unit"`
}

// UpdateItemRequest defines the data allowed for updating an item.
// Pointers distinguish zero-value updates from fields not provided.
// Stock quantity is deliberately absent; it changes only through the ledger
// engine or the explicit adjustment endpoint.
type UpdateItemRequest struct {
	Name           *string          `json:"name"`
	Category       *string          `json:"category"`
	Brand          *string          `json:"brand"`
	CostPrice      *decimal.Decimal `json:"costPrice"`
	SellingPrice   *decimal.Decimal `json:"sellingPrice"`
	WholesalePrice *decimal.Decimal `json:"wholesalePrice"`
	MinStockLevel  *int64           `json:"minStockLevel"`
	Unit           *string          `json:"unit"`
}

// AdjustStockRequest defines an explicit stock correction (count adjustments,
// breakage, opening balance fixes). Delta is signed.
type AdjustStockRequest struct {
	Delta  int64  `json:"delta" binding:"required"`
	Reason string `json:"reason"`
}

// ItemResponse defines the data returned for a catalog item.
type ItemResponse struct {
	ItemID          string           `json:"itemID"`
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	Brand           string           `json:"brand"`
	CostPrice       decimal.Decimal  `json:"costPrice"`
	SellingPrice    decimal.Decimal  `json:"sellingPrice"`
	WholesalePrice  *decimal.Decimal `json:"wholesalePrice,omitempty"`
	StockQuantity   int64            `json:"stockQuantity"`
	OpeningQuantity int64            `json:"openingQuantity"`
	MinStockLevel   int64            `json:"minStockLevel"`
	Unit            string           `json:"unit"`
	CreatedAt       time.Time        `json:"createdAt"`
	LastUpdatedAt   time.Time        `json:"lastUpdatedAt"`
}

// ToItemResponse converts a domain.Item to ItemResponse DTO
func ToItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:          item.ItemID,
		Name:            item.Name,
		Category:        item.Category,
		Brand:           item.Brand,
		CostPrice:       item.CostPrice,
		SellingPrice:    item.SellingPrice,
		WholesalePrice:  item.WholesalePrice,
		StockQuantity:   item.StockQuantity,
		OpeningQuantity: item.OpeningQuantity,
		MinStockLevel:   item.MinStockLevel,
		Unit:            item.Unit,
		CreatedAt:       item.CreatedAt,
		LastUpdatedAt:   item.LastUpdatedAt,
	}
}

// ToItemResponses converts a slice of domain.Item to []ItemResponse.
func ToItemResponses(items []domain.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses
}
