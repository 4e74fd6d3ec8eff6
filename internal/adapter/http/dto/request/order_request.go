package request

import (
	"time"

	"procurehub/internal/domain/entities"
)

// OrderRequest is the purchase order creation payload. Status may be
// supplied to open the order somewhere other than draft; the approval
// counters always start at zero regardless.
type OrderRequest struct {
	PRID         string            `json:"pr_id"`
	SupplierID   string            `json:"supplier_id" binding:"required"`
	SupplierName string            `json:"supplier_name" binding:"required"`
	Items        []LineItemRequest `json:"items" binding:"required,dive"`
	Status       string            `json:"status" binding:"omitempty,oneof=draft pending approved rejected completed"`
	DeliveryDate *time.Time        `json:"delivery_date"`
	Notes        string            `json:"notes"`
	CreatedBy    string            `json:"created_by" binding:"required"`
}

func (r OrderRequest) ToOrder() entities.PurchaseOrder {
	return entities.PurchaseOrder{
		PRID:         r.PRID,
		SupplierID:   r.SupplierID,
		SupplierName: r.SupplierName,
		Items:        ToLineItems(r.Items),
		Status:       entities.ApprovalStatus(r.Status),
		DeliveryDate: r.DeliveryDate,
		Notes:        r.Notes,
		CreatedBy:    r.CreatedBy,
	}
}
