package domain

import "github.com/shopspring/decimal"

// Item is one catalog product with its price points and current stock level.
// StockQuantity is mutated only by the ledger engine (sales decrement,
// purchases increment) or by an explicit stock adjustment; it may go negative
// when overselling is permitted.
type Item struct {
	ItemID          string           `json:"itemID"` // Primary key (UUID)
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	Brand           string           `json:"brand"`
	CostPrice       decimal.Decimal  `json:"costPrice"`
	SellingPrice    decimal.Decimal  `json:"sellingPrice"`
	WholesalePrice  *decimal.Decimal `json:"wholesalePrice,omitempty"` // Optional
	StockQuantity   int64            `json:"stockQuantity"`
	OpeningQuantity int64            `json:"openingQuantity"`
	MinStockLevel   int64            `json:"minStockLevel"`
	Unit            string           `json:"unit"` // e.g. "pcs", "kg"
	AuditFields
}
