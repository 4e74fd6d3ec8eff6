package response

import (
	"time"

	"procurehub/internal/domain/entities"
)

type OrderResponse struct {
	ID            string             `json:"id"`
	PONumber      string             `json:"po_number"`
	PRID          string             `json:"pr_id,omitempty"`
	SupplierID    string             `json:"supplier_id"`
	SupplierName  string             `json:"supplier_name"`
	Items         []LineItemResponse `json:"items"`
	TotalAmount   float64            `json:"total_amount"`
	Status        string             `json:"status"`
	ApprovalLevel int                `json:"approval_level"`
	ApprovedBy    []string           `json:"approved_by"`
	DeliveryDate  *time.Time         `json:"delivery_date,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	CreatedBy     string             `json:"created_by"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func FromOrder(po entities.PurchaseOrder) OrderResponse {
	approvedBy := po.ApprovedBy
	if approvedBy == nil {
		approvedBy = []string{}
	}
	return OrderResponse{
		ID:            po.ID,
		PONumber:      po.PONumber,
		PRID:          po.PRID,
		SupplierID:    po.SupplierID,
		SupplierName:  po.SupplierName,
		Items:         FromLineItems(po.Items),
		TotalAmount:   po.TotalAmount,
		Status:        string(po.Status),
		ApprovalLevel: po.ApprovalLevel,
		ApprovedBy:    approvedBy,
		DeliveryDate:  po.DeliveryDate,
		Notes:         po.Notes,
		CreatedBy:     po.CreatedBy,
		CreatedAt:     po.CreatedAt,
		UpdatedAt:     po.UpdatedAt,
	}
}

func FromOrders(pos []entities.PurchaseOrder) []OrderResponse {
	out := make([]OrderResponse, len(pos))
	for i, po := range pos {
		out[i] = FromOrder(po)
	}
	return out
}
