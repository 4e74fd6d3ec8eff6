package response

import (
	"time"

	"procurehub/internal/domain/entities"
)

type ReceiptResponse struct {
	ID           string             `json:"id"`
	GRNumber     string             `json:"gr_number"`
	POID         string             `json:"po_id"`
	PONumber     string             `json:"po_number"`
	Items        []LineItemResponse `json:"items"`
	ReceivedBy   string             `json:"received_by"`
	ReceivedDate time.Time          `json:"received_date"`
	Notes        string             `json:"notes,omitempty"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
}

func FromReceipt(gr entities.GoodsReceipt) ReceiptResponse {
	return ReceiptResponse{
		ID:           gr.ID,
		GRNumber:     gr.GRNumber,
		POID:         gr.POID,
		PONumber:     gr.PONumber,
		Items:        FromLineItems(gr.Items),
		ReceivedBy:   gr.ReceivedBy,
		ReceivedDate: gr.ReceivedDate,
		Notes:        gr.Notes,
		Status:       gr.Status,
		CreatedAt:    gr.CreatedAt,
	}
}

func FromReceipts(grs []entities.GoodsReceipt) []ReceiptResponse {
	out := make([]ReceiptResponse, len(grs))
	for i, gr := range grs {
		out[i] = FromReceipt(gr)
	}
	return out
}
