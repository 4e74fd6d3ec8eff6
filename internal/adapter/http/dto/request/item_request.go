package request

import "procurehub/internal/domain/entities"

// ItemRequest is the payload for item creation and update. ReorderLevel is
// a pointer so an explicit 0 can be told apart from an absent field, which
// defaults to 10.
type ItemRequest struct {
	Name         string  `json:"name" binding:"required"`
	SKU          string  `json:"sku" binding:"required"`
	Description  string  `json:"description"`
	Category     string  `json:"category" binding:"required"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	ReorderLevel *int    `json:"reorder_level"`
	SupplierID   string  `json:"supplier_id"`
}

func (r ItemRequest) ToItem() entities.Item {
	reorder := entities.DefaultItemReorderLevel
	if r.ReorderLevel != nil {
		reorder = *r.ReorderLevel
	}
	unit := r.Unit
	if unit == "" {
		unit = entities.DefaultItemUnit
	}
	return entities.Item{
		Name:         r.Name,
		SKU:          r.SKU,
		Description:  r.Description,
		Category:     r.Category,
		Unit:         unit,
		UnitPrice:    r.UnitPrice,
		Quantity:     r.Quantity,
		ReorderLevel: reorder,
		SupplierID:   r.SupplierID,
	}
}
