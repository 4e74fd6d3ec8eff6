package entities

import "time"

const GRStatusCompleted = "completed"

// GoodsReceipt records physically receiving items against a purchase order.
//
// Storage model (DynamoDB):
//   - PK: id
//
// PONumber is snapshotted from the referenced order at creation. Creating a
// receipt increments the on-hand quantity of every received item in the same
// store transaction as the receipt insert.
type GoodsReceipt struct {
	ID           string     `json:"id"`
	GRNumber     string     `json:"gr_number"`
	POID         string     `json:"po_id"`
	PONumber     string     `json:"po_number"`
	Items        []LineItem `json:"items"`
	ReceivedBy   string     `json:"received_by"`
	ReceivedDate time.Time  `json:"received_date"`
	Notes        string     `json:"notes,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}
