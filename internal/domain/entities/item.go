package entities

import "time"

const (
	DefaultItemUnit         = "pcs"
	DefaultItemReorderLevel = 10
)

// Item is an inventory catalog record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Quantity is the on-hand stock; goods receipts increment it atomically.
type Item struct {
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

// LowStock reports whether on-hand stock is at or below the reorder level.
// The boundary is inclusive: quantity == reorder_level is low stock.
func (i Item) LowStock() bool {
	return i.Quantity <= i.ReorderLevel
}
