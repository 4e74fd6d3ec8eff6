package response

import (
	"time"

	"procurehub/internal/domain/entities"
)

type RequisitionResponse struct {
	ID            string             `json:"id"`
	PRNumber      string             `json:"pr_number"`
	RequesterID   string             `json:"requester_id"`
	RequesterName string             `json:"requester_name"`
	Department    string             `json:"department"`
	Items         []LineItemResponse `json:"items"`
	TotalAmount   float64            `json:"total_amount"`
	Status        string             `json:"status"`
	Justification string             `json:"justification,omitempty"`
	RequiredBy    *time.Time         `json:"required_by,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func FromRequisition(pr entities.PurchaseRequisition) RequisitionResponse {
	return RequisitionResponse{
		ID:            pr.ID,
		PRNumber:      pr.PRNumber,
		RequesterID:   pr.RequesterID,
		RequesterName: pr.RequesterName,
		Department:    pr.Department,
		Items:         FromLineItems(pr.Items),
		TotalAmount:   pr.TotalAmount,
		Status:        string(pr.Status),
		Justification: pr.Justification,
		RequiredBy:    pr.RequiredBy,
		CreatedAt:     pr.CreatedAt,
		UpdatedAt:     pr.UpdatedAt,
	}
}

func FromRequisitions(prs []entities.PurchaseRequisition) []RequisitionResponse {
	out := make([]RequisitionResponse, len(prs))
	for i, pr := range prs {
		out[i] = FromRequisition(pr)
	}
	return out
}
