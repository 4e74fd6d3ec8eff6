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

var ErrInvalidReceiptInput = errors.New("invalid goods receipt input")

// IReceiptUseCase exposes goods receipt operations.
type IReceiptUseCase interface {
	Create(ctx context.Context, gr entities.GoodsReceipt) (entities.GoodsReceipt, error)
	List(ctx context.Context) ([]entities.GoodsReceipt, error)
}

type ReceiptUseCase struct {
	repo   interfaces.IReceiptRepository
	orders interfaces.IOrderRepository
	seq    interfaces.ISequenceRepository
}

var _ IReceiptUseCase = (*ReceiptUseCase)(nil)

func NewReceiptUseCase(
	repo interfaces.IReceiptRepository,
	orders interfaces.IOrderRepository,
	seq interfaces.ISequenceRepository,
) *ReceiptUseCase {
	return &ReceiptUseCase{repo: repo, orders: orders, seq: seq}
}

// Create records the receipt and increments on-hand quantities in one store
// transaction. The referenced PO must exist (its number is snapshotted onto
// the receipt); received quantities are not checked against what the PO
// ordered.
func (u *ReceiptUseCase) Create(ctx context.Context, input entities.GoodsReceipt) (entities.GoodsReceipt, error) {
	input.POID = strings.TrimSpace(input.POID)
	input.ReceivedBy = strings.TrimSpace(input.ReceivedBy)
	if input.POID == "" || input.ReceivedBy == "" {
		return entities.GoodsReceipt{}, ErrInvalidReceiptInput
	}

	po, err := u.orders.GetByID(ctx, input.POID)
	if err != nil {
		return entities.GoodsReceipt{}, err
	}
	if po.ID == "" {
		return entities.GoodsReceipt{}, ErrOrderNotFound
	}

	n, err := u.seq.Next(ctx, entities.PrefixReceipt)
	if err != nil {
		return entities.GoodsReceipt{}, err
	}

	now := time.Now().UTC()
	input.ID = uuid.NewString()
	input.GRNumber = entities.FormatDocNumber(entities.PrefixReceipt, n)
	input.PONumber = po.PONumber
	input.Items = entities.PriceLineItems(input.Items)
	input.ReceivedDate = now
	input.Status = entities.GRStatusCompleted
	input.CreatedAt = now

	created, err := u.repo.CreateWithInventory(ctx, input)
	if err != nil {
		return entities.GoodsReceipt{}, err
	}
	if created.ID == "" {
		// The store transaction was cancelled: a received line references
		// an item document that does not exist.
		return entities.GoodsReceipt{}, ErrItemNotFound
	}
	return created, nil
}

func (u *ReceiptUseCase) List(ctx context.Context) ([]entities.GoodsReceipt, error) {
	return u.repo.List(ctx)
}
