package response

import (
	"time"

	"procurehub/internal/domain/entities"
)

type ItemResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	Unit         string    `json:"unit"`
	UnitPrice    float64   `json:"unit_price"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorder_level"`
	SupplierID   string    `json:"supplier_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromItem(i entities.Item) ItemResponse {
	return ItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		SKU:          i.SKU,
		Description:  i.Description,
		Category:     i.Category,
		Unit:         i.Unit,
		UnitPrice:    i.UnitPrice,
		Quantity:     i.Quantity,
		ReorderLevel: i.ReorderLevel,
		SupplierID:   i.SupplierID,
		CreatedAt:    i.CreatedAt,
	}
}

func FromItems(items []entities.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = FromItem(it)
	}
	return out
}
