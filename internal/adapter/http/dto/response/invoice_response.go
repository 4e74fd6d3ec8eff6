package response

import (
	"time"

	"procurehub/internal/domain/entities"
)

type InvoiceResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	POID          string             `json:"po_id"`
	GRID          string             `json:"gr_id,omitempty"`
	SupplierID    string             `json:"supplier_id"`
	SupplierName  string             `json:"supplier_name"`
	Items         []LineItemResponse `json:"items"`
	TotalAmount   float64            `json:"total_amount"`
	TaxAmount     float64            `json:"tax_amount"`
	Status        string             `json:"status"`
	DueDate       *time.Time         `json:"due_date,omitempty"`
	PaidDate      *time.Time         `json:"paid_date,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		POID:          inv.POID,
		GRID:          inv.GRID,
		SupplierID:    inv.SupplierID,
		SupplierName:  inv.SupplierName,
		Items:         FromLineItems(inv.Items),
		TotalAmount:   inv.TotalAmount,
		TaxAmount:     inv.TaxAmount,
		Status:        inv.Status,
		DueDate:       inv.DueDate,
		PaidDate:      inv.PaidDate,
		CreatedAt:     inv.CreatedAt,
	}
}

func FromInvoices(invs []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invs))
	for i, inv := range invs {
		out[i] = FromInvoice(inv)
	}
	return out
}
