package request

import (
	"time"

	"procurehub/internal/domain/entities"
)

type InvoiceRequest struct {
	POID       string            `json:"po_id" binding:"required"`
	GRID       string            `json:"gr_id"`
	SupplierID string            `json:"supplier_id" binding:"required"`
	Items      []LineItemRequest `json:"items" binding:"required,dive"`
	TaxAmount  float64           `json:"tax_amount"`
	DueDate    *time.Time        `json:"due_date"`
}

func (r InvoiceRequest) ToInvoice() entities.Invoice {
	return entities.Invoice{
		POID:       r.POID,
		GRID:       r.GRID,
		SupplierID: r.SupplierID,
		Items:      ToLineItems(r.Items),
		TaxAmount:  r.TaxAmount,
		DueDate:    r.DueDate,
	}
}
