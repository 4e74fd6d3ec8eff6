package entities

import "time"

// ApprovalStatus is the purchase order lifecycle.
//
// completed exists on the schema but no endpoint in this core sets it;
// completion is externally triggered.
type ApprovalStatus string

const (
	ApprovalStatusDraft     ApprovalStatus = "draft"
	ApprovalStatusPending   ApprovalStatus = "pending"
	ApprovalStatusApproved  ApprovalStatus = "approved"
	ApprovalStatusRejected  ApprovalStatus = "rejected"
	ApprovalStatusCompleted ApprovalStatus = "completed"
)

// Orders above this amount need a second approval level.
const multiLevelApprovalThreshold = 10000

// PurchaseOrder is a commitment to a supplier to buy specific line items.
//
// Storage model (DynamoDB):
//   - PK: id
//
// SupplierName is a snapshot taken at creation. ApprovalLevel always equals
// len(ApprovedBy); it only ever grows, bounded by RequiredApprovalLevels.
type PurchaseOrder struct {
	ID            string         `json:"id"`
	PONumber      string         `json:"po_number"`
	PRID          string         `json:"pr_id,omitempty"`
	SupplierID    string         `json:"supplier_id"`
	SupplierName  string         `json:"supplier_name"`
	Items         []LineItem     `json:"items"`
	TotalAmount   float64        `json:"total_amount"`
	Status        ApprovalStatus `json:"status"`
	ApprovalLevel int            `json:"approval_level"`
	ApprovedBy    []string       `json:"approved_by"`
	DeliveryDate  *time.Time     `json:"delivery_date,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	CreatedBy     string         `json:"created_by"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// RequiredApprovalLevels is 2 for orders strictly above 10000, else 1.
// A total of exactly 10000.00 needs a single approval.
func (po PurchaseOrder) RequiredApprovalLevels() int {
	if po.TotalAmount > multiLevelApprovalThreshold {
		return 2
	}
	return 1
}

// RecordApproval appends the approver and advances the approval level,
// returning the resulting order. Status becomes approved once the level
// reaches the required threshold, otherwise pending. The same approver may
// be recorded more than once; each recording counts toward the threshold.
func (po PurchaseOrder) RecordApproval(approverID string, at time.Time) PurchaseOrder {
	po.ApprovedBy = append(append([]string{}, po.ApprovedBy...), approverID)
	po.ApprovalLevel++
	if po.ApprovalLevel >= po.RequiredApprovalLevels() {
		po.Status = ApprovalStatusApproved
	} else {
		po.Status = ApprovalStatusPending
	}
	po.UpdatedAt = at
	return po
}
