package response

import "procurehub/internal/domain/entities"

type LineItemResponse struct {
	ItemID    string  `json:"item_id"`
	ItemName  string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(items))
	for i, it := range items {
		out[i] = LineItemResponse{
			ItemID:    it.ItemID,
			ItemName:  it.ItemName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		}
	}
	return out
}

// MessageResponse is the minimal acknowledgement body for workflow
// transitions that do not echo the full document.
type MessageResponse struct {
	Message string `json:"message"`
}

// ApprovalResponse acknowledges a recorded PO approval with the resulting
// status.
type ApprovalResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
