package entities

import "time"

// PRStatus is the purchase requisition lifecycle.
//
// converted exists on the schema for PR->PO conversion, which no endpoint
// currently performs; the value is kept so stored documents round-trip.
type PRStatus string

const (
	PRStatusDraft     PRStatus = "draft"
	PRStatusSubmitted PRStatus = "submitted"
	PRStatusApproved  PRStatus = "approved"
	PRStatusRejected  PRStatus = "rejected"
	PRStatusConverted PRStatus = "converted"
)

// PurchaseRequisition is an internal request to buy, precursor to a PO.
//
// Storage model (DynamoDB):
//   - PK: id
//
// PRNumber is assigned once at creation from the PR sequence and never
// reassigned. TotalAmount is recomputed from the line items at creation.
type PurchaseRequisition struct {
	ID            string     `json:"id"`
	PRNumber      string     `json:"pr_number"`
	RequesterID   string     `json:"requester_id"`
	RequesterName string     `json:"requester_name"`
	Department    string     `json:"department"`
	Items         []LineItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
	Status        PRStatus   `json:"status"`
	Justification string     `json:"justification,omitempty"`
	RequiredBy    *time.Time `json:"required_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
