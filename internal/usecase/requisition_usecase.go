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
	ErrRequisitionNotFound     = errors.New("purchase requisition not found")
	ErrInvalidRequisitionInput = errors.New("invalid purchase requisition input")
)

// IRequisitionUseCase exposes purchase requisition operations.
type IRequisitionUseCase interface {
	Create(ctx context.Context, pr entities.PurchaseRequisition) (entities.PurchaseRequisition, error)
	List(ctx context.Context) ([]entities.PurchaseRequisition, error)
	Approve(ctx context.Context, id string) (entities.PurchaseRequisition, error)
}

type RequisitionUseCase struct {
	repo interfaces.IRequisitionRepository
	seq  interfaces.ISequenceRepository
}

var _ IRequisitionUseCase = (*RequisitionUseCase)(nil)

func NewRequisitionUseCase(repo interfaces.IRequisitionRepository, seq interfaces.ISequenceRepository) *RequisitionUseCase {
	return &RequisitionUseCase{repo: repo, seq: seq}
}

// Create prices the line items, assigns the next PR number and stores the
// requisition in draft.
func (u *RequisitionUseCase) Create(ctx context.Context, input entities.PurchaseRequisition) (entities.PurchaseRequisition, error) {
	input.RequesterID = strings.TrimSpace(input.RequesterID)
	input.Department = strings.TrimSpace(input.Department)
	if input.RequesterID == "" || input.Department == "" {
		return entities.PurchaseRequisition{}, ErrInvalidRequisitionInput
	}

	n, err := u.seq.Next(ctx, entities.PrefixRequisition)
	if err != nil {
		return entities.PurchaseRequisition{}, err
	}

	now := time.Now().UTC()
	input.ID = uuid.NewString()
	input.PRNumber = entities.FormatDocNumber(entities.PrefixRequisition, n)
	input.Items = entities.PriceLineItems(input.Items)
	input.TotalAmount = entities.DocumentTotal(input.Items)
	input.Status = entities.PRStatusDraft
	input.CreatedAt = now
	input.UpdatedAt = now
	return u.repo.Create(ctx, input)
}

func (u *RequisitionUseCase) List(ctx context.Context) ([]entities.PurchaseRequisition, error) {
	return u.repo.List(ctx)
}

// Approve is a single unconditional transition to approved; requisitions
// have no multi-level escalation.
func (u *RequisitionUseCase) Approve(ctx context.Context, id string) (entities.PurchaseRequisition, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PurchaseRequisition{}, ErrRequisitionNotFound
	}

	updated, err := u.repo.Approve(ctx, id, time.Now().UTC())
	if err != nil {
		return entities.PurchaseRequisition{}, err
	}
	if updated.ID == "" {
		return entities.PurchaseRequisition{}, ErrRequisitionNotFound
	}
	return updated, nil
}
