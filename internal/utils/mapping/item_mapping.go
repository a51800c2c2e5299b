package mapping

import (
	"github.com/PasalPOS/pasal_pos_app/internal/core/domain"
	"github.com/PasalPOS/pasal_pos_app/internal/models"
)

// ToModelItem converts a domain Item to a model Item
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:          d.ItemID,
		Name:            d.Name,
		Category:        d.Category,
		Brand:           d.Brand,
		CostPrice:       d.CostPrice,
		SellingPrice:    d.SellingPrice,
		WholesalePrice:  d.WholesalePrice,
		StockQuantity:   d.StockQuantity,
		OpeningQuantity: d.OpeningQuantity,
		MinStockLevel:   d.MinStockLevel,
		Unit:            d.Unit,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts a model Item to a domain Item
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:          m.ItemID,
		Name:            m.Name,
		Category:        m.Category,
		Brand:           m.Brand,
		CostPrice:       m.CostPrice,
		SellingPrice:    m.SellingPrice,
		WholesalePrice:  m.WholesalePrice,
		StockQuantity:   m.StockQuantity,
		OpeningQuantity: m.OpeningQuantity,
		MinStockLevel:   m.MinStockLevel,
		Unit:            m.Unit,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainItemSlice converts a slice of model Items to a slice of domain Items
func ToDomainItemSlice(ms []models.Item) []domain.Item {
	ds := make([]domain.Item, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainItem(m)
	}
	return ds
}
