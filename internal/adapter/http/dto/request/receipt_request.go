package request

import "procurehub/internal/domain/entities"

type ReceiptRequest struct {
	POID       string            `json:"po_id" binding:"required"`
	Items      []LineItemRequest `json:"items" binding:"required,dive"`
	ReceivedBy string            `json:"received_by" binding:"required"`
	Notes      string            `json:"notes"`
}

func (r ReceiptRequest) ToReceipt() entities.GoodsReceipt {
	return entities.GoodsReceipt{
		POID:       r.POID,
		Items:      ToLineItems(r.Items),
		ReceivedBy: r.ReceivedBy,
		Notes:      r.Notes,
	}
}
