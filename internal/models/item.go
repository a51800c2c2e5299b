package models

import "github.com/shopspring/decimal"

// Item maps one row of the items table. Monetary columns are NUMERIC(14,2);
// never float.
type Item struct {
	ItemID          string           `json:"itemID" db:"item_id"`
	Name            string           `json:"name" db:"name"`
	Category        string           `json:"category" db:"category"`
	Brand           string           `json:"brand" db:"brand"`
	CostPrice       decimal.Decimal  `json:"costPrice" db:"cost_price"`
	SellingPrice    decimal.Decimal  `json:"sellingPrice" db:"selling_price"`
	WholesalePrice  *decimal.Decimal `json:"wholesalePrice,omitempty" db:"wholesale_price"`
	StockQuantity   int64            `json:"stockQuantity" db:"stock_quantity"`
	OpeningQuantity int64            `json:"openingQuantity" db:"opening_quantity"`
	MinStockLevel   int64            `json:"minStockLevel" db:"min_stock_level"`
	Unit            string           `json:"unit" db:"unit"`
	AuditFields
}
