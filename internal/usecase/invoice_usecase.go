package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"procurehub/internal/domain/entities"
	"procurehub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidInvoiceInput = errors.New("invalid invoice input")

// IInvoiceUseCase exposes supplier invoice operations.
type IInvoiceUseCase interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo   interfaces.IInvoiceRepository
	orders interfaces.IOrderRepository
	seq    interfaces.ISequenceRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	orders interfaces.IOrderRepository,
	seq interfaces.ISequenceRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, orders: orders, seq: seq}
}

// Create prices the invoice's own line items and snapshots the supplier
// name from the referenced PO. The invoice total is deliberately not
// cross-checked against the PO total; partial and re-priced invoices are
// accepted as-is.
func (u *InvoiceUseCase) Create(ctx context.Context, input entities.Invoice) (entities.Invoice, error) {
	input.POID = strings.TrimSpace(input.POID)
	input.SupplierID = strings.TrimSpace(input.SupplierID)
	if input.POID == "" || input.SupplierID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceInput
	}

	po, err := u.orders.GetByID(ctx, input.POID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if po.ID == "" {
		return entities.Invoice{}, ErrOrderNotFound
	}

	n, err := u.seq.Next(ctx, entities.PrefixInvoice)
	if err != nil {
		return entities.Invoice{}, err
	}

	input.ID = uuid.NewString()
	input.InvoiceNumber = entities.FormatDocNumber(entities.PrefixInvoice, n)
	input.SupplierName = po.SupplierName
	input.Items = entities.PriceLineItems(input.Items)
	input.TotalAmount = entities.DocumentTotal(input.Items)
	input.Status = entities.InvoiceStatusPending
	input.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, input)
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.List(ctx)
}
