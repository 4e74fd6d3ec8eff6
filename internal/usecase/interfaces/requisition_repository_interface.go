package interfaces

import (
	"context"
	"time"

	"procurehub/internal/domain/entities"
)

// IRequisitionRepository abstracts DynamoDB persistence for purchase
// requisitions. Approve is the only mutation after creation: an
// unconditional status flip to approved. Zero-value returns mean not found.
type IRequisitionRepository interface {
	Create(ctx context.Context, pr entities.PurchaseRequisition) (entities.PurchaseRequisition, error)
	List(ctx context.Context) ([]entities.PurchaseRequisition, error)
	Approve(ctx context.Context, id string, at time.Time) (entities.PurchaseRequisition, error)
}
