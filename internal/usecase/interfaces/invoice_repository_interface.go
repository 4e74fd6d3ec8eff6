package interfaces

import (
	"context"

	"procurehub/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for supplier invoices.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
}
