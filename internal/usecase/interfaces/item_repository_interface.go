package interfaces

import (
	"context"
	"procurehub/internal/domain/entities"
)

// IItemRepository abstracts DynamoDB persistence for inventory items.
//
// Update rewrites the catalog fields including quantity and reorder_level
// (full replace of the editable fields, matching the supplier update shape).
// Goods-receipt driven quantity increments happen inside the receipt
// repository's store transaction, not here.
type IItemRepository interface {
	Create(ctx context.Context, i entities.Item) (entities.Item, error)
	GetByID(ctx context.Context, id string) (entities.Item, error)
	List(ctx context.Context) ([]entities.Item, error)
	Update(ctx context.Context, id string, i entities.Item) (entities.Item, error)
	Count(ctx context.Context) (int, error)
}
