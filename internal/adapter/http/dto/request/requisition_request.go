package request

import (
	"time"

	"procurehub/internal/domain/entities"
)

type RequisitionRequest struct {
	RequesterID   string            `json:"requester_id" binding:"required"`
	RequesterName string            `json:"requester_name" binding:"required"`
	Department    string            `json:"department" binding:"required"`
	Items         []LineItemRequest `json:"items" binding:"required,dive"`
	Justification string            `json:"justification"`
	RequiredBy    *time.Time        `json:"required_by"`
}

func (r RequisitionRequest) ToRequisition() entities.PurchaseRequisition {
	return entities.PurchaseRequisition{
		RequesterID:   r.RequesterID,
		RequesterName: r.RequesterName,
		Department:    r.Department,
		Items:         ToLineItems(r.Items),
		Justification: r.Justification,
		RequiredBy:    r.RequiredBy,
	}
}
