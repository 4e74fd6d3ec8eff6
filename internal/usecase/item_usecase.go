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
	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidItemInput = errors.New("invalid item input")
)

// IItemUseCase exposes inventory catalog operations plus the low-stock
// filter used by replenishment screens.
type IItemUseCase interface {
	Create(ctx context.Context, i entities.Item) (entities.Item, error)
	GetByID(ctx context.Context, id string) (entities.Item, error)
	List(ctx context.Context) ([]entities.Item, error)
	ListLowStock(ctx context.Context) ([]entities.Item, error)
	Update(ctx context.Context, id string, i entities.Item) (entities.Item, error)
}

type ItemUseCase struct {
	repo interfaces.IItemRepository
}

var _ IItemUseCase = (*ItemUseCase)(nil)

func NewItemUseCase(repo interfaces.IItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

func (u *ItemUseCase) Create(ctx context.Context, input entities.Item) (entities.Item, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.SKU = strings.TrimSpace(input.SKU)
	if input.Name == "" || input.SKU == "" {
		return entities.Item{}, ErrInvalidItemInput
	}
	if input.Unit == "" {
		input.Unit = entities.DefaultItemUnit
	}

	input.ID = uuid.NewString()
	input.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, input)
}

func (u *ItemUseCase) GetByID(ctx context.Context, id string) (entities.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Item{}, ErrItemNotFound
	}

	i, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Item{}, err
	}
	if i.ID == "" {
		return entities.Item{}, ErrItemNotFound
	}
	return i, nil
}

func (u *ItemUseCase) List(ctx context.Context) ([]entities.Item, error) {
	return u.repo.List(ctx)
}

// ListLowStock scans the whole catalog and filters client-side; the store
// has no secondary index over (quantity, reorder_level).
func (u *ItemUseCase) ListLowStock(ctx context.Context) ([]entities.Item, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	low := make([]entities.Item, 0, len(items))
	for _, i := range items {
		if i.LowStock() {
			low = append(low, i)
		}
	}
	return low, nil
}

func (u *ItemUseCase) Update(ctx context.Context, id string, input entities.Item) (entities.Item, error) {
	id = strings.TrimSpace(id)
	input.Name = strings.TrimSpace(input.Name)
	input.SKU = strings.TrimSpace(input.SKU)
	if id == "" || input.Name == "" || input.SKU == "" {
		return entities.Item{}, ErrInvalidItemInput
	}
	if input.Unit == "" {
		input.Unit = entities.DefaultItemUnit
	}

	updated, err := u.repo.Update(ctx, id, input)
	if err != nil {
		return entities.Item{}, err
	}
	if updated.ID == "" {
		return entities.Item{}, ErrItemNotFound
	}
	return updated, nil
}
