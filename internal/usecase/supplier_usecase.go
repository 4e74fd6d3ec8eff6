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
	ErrSupplierNotFound     = errors.New("supplier not found")
	ErrInvalidSupplierInput = errors.New("invalid supplier input")
)

// ISupplierUseCase exposes supplier master-data operations.
type ISupplierUseCase interface {
	Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	List(ctx context.Context) ([]entities.Supplier, error)
	Update(ctx context.Context, id string, s entities.Supplier) (entities.Supplier, error)
}

type SupplierUseCase struct {
	repo interfaces.ISupplierRepository
}

var _ ISupplierUseCase = (*SupplierUseCase)(nil)

func NewSupplierUseCase(repo interfaces.ISupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func (u *SupplierUseCase) Create(ctx context.Context, input entities.Supplier) (entities.Supplier, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return entities.Supplier{}, ErrInvalidSupplierInput
	}

	input.ID = uuid.NewString()
	input.Rating = entities.DefaultSupplierRating
	input.Status = entities.SupplierStatusActive
	input.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, input)
}

func (u *SupplierUseCase) GetByID(ctx context.Context, id string) (entities.Supplier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Supplier{}, ErrSupplierNotFound
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Supplier{}, err
	}
	if s.ID == "" {
		return entities.Supplier{}, ErrSupplierNotFound
	}
	return s, nil
}

func (u *SupplierUseCase) List(ctx context.Context) ([]entities.Supplier, error) {
	return u.repo.List(ctx)
}

func (u *SupplierUseCase) Update(ctx context.Context, id string, input entities.Supplier) (entities.Supplier, error) {
	id = strings.TrimSpace(id)
	input.Name = strings.TrimSpace(input.Name)
	if id == "" || input.Name == "" {
		return entities.Supplier{}, ErrInvalidSupplierInput
	}

	updated, err := u.repo.Update(ctx, id, input)
	if err != nil {
		return entities.Supplier{}, err
	}
	if updated.ID == "" {
		return entities.Supplier{}, ErrSupplierNotFound
	}
	return updated, nil
}
