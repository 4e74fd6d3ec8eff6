package entities

import "time"

const InvoiceStatusPending = "pending"

// Invoice is a supplier invoice against a purchase order.
//
// Storage model (DynamoDB):
//   - PK: id
//
// SupplierName is snapshotted from the referenced PO. TotalAmount is
// recomputed from the invoice's own line items and is deliberately not
// cross-checked against the PO total. PaidDate exists on the schema but no
// endpoint in this core marks invoices paid.
type Invoice struct {
	ID            string     `json:"id"`
	InvoiceNumber string     `json:"invoice_number"`
	POID          string     `json:"po_id"`
	GRID          string     `json:"gr_id,omitempty"`
	SupplierID    string     `json:"supplier_id"`
	SupplierName  string     `json:"supplier_name"`
	Items         []LineItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
	TaxAmount     float64    `json:"tax_amount"`
	Status        string     `json:"status"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
