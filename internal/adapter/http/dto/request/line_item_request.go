package request

import "procurehub/internal/domain/entities"

// LineItemRequest is the embedded line item payload shared by requisition,
// order, receipt and invoice creation. A caller-supplied total is accepted
// for wire compatibility but discarded; totals are always recomputed
// server-side.
type LineItemRequest struct {
	ItemID    string  `json:"item_id" binding:"required"`
	ItemName  string  `json:"item_name" binding:"required"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

func ToLineItems(items []LineItemRequest) []entities.LineItem {
	out := make([]entities.LineItem, len(items))
	for i, it := range items {
		out[i] = entities.LineItem{
			ItemID:    it.ItemID,
			ItemName:  it.ItemName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return out
}
