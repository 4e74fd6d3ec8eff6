package interfaces

import (
	"context"

	"procurehub/internal/domain/entities"
)

// IReceiptRepository abstracts DynamoDB persistence for goods receipts.
//
// CreateWithInventory writes the receipt document and the per-line item
// quantity increments in a single store transaction; either everything
// lands or nothing does. A zero-value return with a nil error means the
// transaction was cancelled because a referenced item does not exist.
type IReceiptRepository interface {
	CreateWithInventory(ctx context.Context, gr entities.GoodsReceipt) (entities.GoodsReceipt, error)
	List(ctx context.Context) ([]entities.GoodsReceipt, error)
}
