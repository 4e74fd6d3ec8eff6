package interfaces

import (
	"context"
	"procurehub/internal/domain/entities"
)

// ISupplierRepository abstracts DynamoDB persistence for Supplier.
//
// Update rewrites only the caller-editable contact fields; rating, status
// and created_at are left untouched. Zero-value returns mean not found.
type ISupplierRepository interface {
	Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	List(ctx context.Context) ([]entities.Supplier, error)
	Update(ctx context.Context, id string, s entities.Supplier) (entities.Supplier, error)
	Count(ctx context.Context) (int, error)
}
