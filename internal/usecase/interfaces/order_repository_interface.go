package interfaces

import (
	"context"

	"procurehub/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for purchase orders.
//
// ApplyApproval persists an approval computed by the domain: it appends the
// approver, sets the new level and status, and guards the write with a
// condition on the expected pre-approval level so two concurrent approvals
// cannot silently overwrite each other. A zero-value return means the
// condition failed (document missing or concurrently modified).
type IOrderRepository interface {
	Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error)
	List(ctx context.Context) ([]entities.PurchaseOrder, error)
	ApplyApproval(ctx context.Context, po entities.PurchaseOrder, expectedLevel int, approverID string) (entities.PurchaseOrder, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status entities.ApprovalStatus) (int, error)
}
