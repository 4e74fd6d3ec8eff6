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

var (
	ErrOrderNotFound     = errors.New("purchase order not found")
	ErrInvalidOrderInput = errors.New("invalid purchase order input")
	ErrApprovalConflict  = errors.New("purchase order modified concurrently")
)

// IOrderUseCase exposes purchase order operations, including the
// multi-level approval escalation and PDF export.
type IOrderUseCase interface {
	Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error)
	List(ctx context.Context) ([]entities.PurchaseOrder, error)
	Approve(ctx context.Context, id, approverID string) (entities.PurchaseOrder, error)
	RenderPDF(ctx context.Context, id string) ([]byte, entities.PurchaseOrder, error)
}

type OrderUseCase struct {
	repo      interfaces.IOrderRepository
	suppliers interfaces.ISupplierRepository
	seq       interfaces.ISequenceRepository
	renderer  interfaces.IPORenderer
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	suppliers interfaces.ISupplierRepository,
	seq interfaces.ISequenceRepository,
	renderer interfaces.IPORenderer,
) *OrderUseCase {
	return &OrderUseCase{repo: repo, suppliers: suppliers, seq: seq, renderer: renderer}
}

// Create prices the line items, assigns the next PO number and stores the
// order. The caller may supply an initial status; it defaults to draft.
// Supplier id and name are taken as given (the name is a snapshot, not a
// live reference), matching the rest of the document model.
func (u *OrderUseCase) Create(ctx context.Context, input entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	input.SupplierID = strings.TrimSpace(input.SupplierID)
	input.CreatedBy = strings.TrimSpace(input.CreatedBy)
	if input.SupplierID == "" || input.CreatedBy == "" {
		return entities.PurchaseOrder{}, ErrInvalidOrderInput
	}
	if input.Status == "" {
		input.Status = entities.ApprovalStatusDraft
	}

	n, err := u.seq.Next(ctx, entities.PrefixOrder)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}

	now := time.Now().UTC()
	input.ID = uuid.NewString()
	input.PONumber = entities.FormatDocNumber(entities.PrefixOrder, n)
	input.Items = entities.PriceLineItems(input.Items)
	input.TotalAmount = entities.DocumentTotal(input.Items)
	input.ApprovalLevel = 0
	input.ApprovedBy = []string{}
	input.CreatedAt = now
	input.UpdatedAt = now
	return u.repo.Create(ctx, input)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PurchaseOrder{}, ErrOrderNotFound
	}

	po, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if po.ID == "" {
		return entities.PurchaseOrder{}, ErrOrderNotFound
	}
	return po, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.PurchaseOrder, error) {
	return u.repo.List(ctx)
}

// Approve records one approval level. The write is conditioned on the
// approval level read here, so two concurrent approvals cannot both count
// from the same base; the loser gets ErrApprovalConflict instead of
// silently overwriting.
func (u *OrderUseCase) Approve(ctx context.Context, id, approverID string) (entities.PurchaseOrder, error) {
	approverID = strings.TrimSpace(approverID)
	if approverID == "" {
		return entities.PurchaseOrder{}, ErrInvalidOrderInput
	}

	po, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}

	next := po.RecordApproval(approverID, time.Now().UTC())
	updated, err := u.repo.ApplyApproval(ctx, next, po.ApprovalLevel, approverID)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if updated.ID == "" {
		return entities.PurchaseOrder{}, ErrApprovalConflict
	}
	return updated, nil
}

// RenderPDF resolves the order and its supplier and hands both to the
// renderer. The supplier is looked up live; only its contact details are
// used, the order keeps its own name snapshot.
func (u *OrderUseCase) RenderPDF(ctx context.Context, id string) ([]byte, entities.PurchaseOrder, error) {
	po, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, entities.PurchaseOrder{}, err
	}

	supplier, err := u.suppliers.GetByID(ctx, po.SupplierID)
	if err != nil {
		return nil, entities.PurchaseOrder{}, err
	}
	if supplier.ID == "" {
		return nil, entities.PurchaseOrder{}, ErrSupplierNotFound
	}

	pdf, err := u.renderer.Render(po, supplier)
	if err != nil {
		return nil, entities.PurchaseOrder{}, err
	}
	return pdf, po, nil
}
